package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	scenario string
	years    int
	months   int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the net worth of a scenario month by month" }
func (*projectCmd) Usage() string {
	return `fp project [-years <n>] [-scenario <name>]

  Runs the projection over the horizon and prints the month by month
  income, taxes, expenses, cash flow and net worth.

Usage Examples:
$ fp project -years 10
$ fp project -years 30 -scenario buy-later

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to project. Defaults to the only scenario.")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years.")
	f.IntVar(&c.months, "months", 0, "Projection horizon in months. Overrides -years when set.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario(c.scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	months := 12 * c.years
	if c.months > 0 {
		months = c.months
	}
	r, err := s.Project(months)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(r))
	return subcommands.ExitSuccess
}
