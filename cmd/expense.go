package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	scenario string
	on       string
	memo     string
	category string
	monthly  float64
	months   int
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a recurring cash-flow milestone" }
func (*expenseCmd) Usage() string {
	return `fp expense -on <month> -monthly <amount> [-months <n>] [options]

  Records a recurring monthly cash-flow delta over a bounded window.
  A negative amount models extra income, e.g. renting out a room.

Usage Examples:
$ fp expense -on 2026-09 -monthly 200 -months 12 -memo "Gym membership"
$ fp expense -on 2028-01 -monthly -900 -memo "Room rental income"

`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "First month of the window, e.g. 2026-09. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.StringVar(&c.category, "category", "", "Reporting category. Defaults to the memo.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly amount. Negative means extra income.")
	f.IntVar(&c.months, "months", 0, "Duration of the window. 0 means until the end of the horizon.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewRecurring(on, c.memo, flightplan.M(c.monthly, ""), c.months)
	m.Category = c.category
	return AppendMilestone(c.scenario, m)
}
