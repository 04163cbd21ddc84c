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

type compareCmd struct {
	years int
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare scenarios side by side over the same horizon" }
func (*compareCmd) Usage() string {
	return `fp compare [-years <n>] [<scenario> ...]

  Projects the named scenarios over the same horizon and prints them
  side by side, flagging the best final net worth and the safest
  trajectory. Without arguments every scenario is compared.

Usage Examples:
$ fp compare -years 15 baseline buy-later

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 10, "Projection horizon in years.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var scenarios []*flightplan.Scenario
	if f.NArg() == 0 {
		all, err := DecodeScenarios("")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		scenarios = all
	} else {
		for _, name := range f.Args() {
			s, err := DecodeScenario(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return subcommands.ExitFailure
			}
			scenarios = append(scenarios, s)
		}
	}
	if len(scenarios) < 2 {
		fmt.Fprintln(os.Stderr, "Error: need at least two scenarios to compare")
		return subcommands.ExitUsageError
	}

	comparison, err := flightplan.NewComparison(12*c.years, scenarios...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ComparisonMarkdown(comparison))
	return subcommands.ExitSuccess
}
