package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/flightplan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Bash/zsh completion, a no-op outside of a completion request.
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"plans": predict.Dirs("*"),
		},
	}
	completion.Complete("fp")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
