package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite scenario files in canonical form" }
func (*fmtCmd) Usage() string {
	return `fp fmt [<scenario> ...]

  Rewrites scenario files in canonical form: profile first, then the
  milestones in chronological order. Without arguments every scenario
  is formatted.

`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{""}
	}
	for _, name := range names {
		scenarios, err := DecodeScenarios(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		for _, s := range scenarios {
			formatted, err := s.Fmt()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", s.Name(), err)
				return subcommands.ExitFailure
			}
			if err := SaveScenario(formatted); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("✅ Successfully formatted %q\n", formatted.Name())
		}
	}
	return subcommands.ExitSuccess
}
