package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/etnz/flightplan/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	scenario string
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "summarize a scenario at the 1, 5, 10, 20 and 30 year marks"
}
func (*summaryCmd) Usage() string {
	return `fp summary [-scenario <name>]

  Projects the scenario over standard horizons and prints the net
  worth, lowest point, total taxes and savings rate of each.

Usage Examples:
$ fp summary
$ fp summary -scenario buy-later

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to summarize. Defaults to the only scenario.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario(c.scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	var results []*flightplan.Result
	for _, years := range []int{1, 5, 10, 20, 30} {
		r, err := s.Project(12 * years)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		results = append(results, r)
	}
	printMarkdown(renderer.SummaryMarkdown(results...))
	return subcommands.ExitSuccess
}
