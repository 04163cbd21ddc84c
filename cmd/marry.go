package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type marryCmd struct {
	scenario     string
	on           string
	memo         string
	cost         float64
	income       float64
	theirSavings float64
	lifestyle    float64
}

func (*marryCmd) Name() string     { return "marry" }
func (*marryCmd) Synopsis() string { return "record a marriage milestone" }
func (*marryCmd) Usage() string {
	return `fp marry -on <month> [-cost <amount>] [-income <amount>] [options]

  Records a marriage: a one-time wedding cost, the spouse income and
  savings joining the household, and a recurring lifestyle adjustment.
  From that month onward the household files taxes jointly.

Usage Examples:
$ fp marry -on 2027-06 -cost 25000 -income 70000 -their-savings 15000 -lifestyle 300

`
}

func (c *marryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "Month of the wedding, e.g. 2027-06. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.Float64Var(&c.cost, "cost", 0, "One-time wedding cost.")
	f.Float64Var(&c.income, "income", 0, "Spouse gross annual income.")
	f.Float64Var(&c.theirSavings, "their-savings", 0, "Spouse savings merged into net worth.")
	f.Float64Var(&c.lifestyle, "lifestyle", 0, "Recurring monthly household adjustment.")
}

func (c *marryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewMarriage(on, c.memo,
		flightplan.M(c.cost, ""),
		flightplan.M(c.income, ""),
		flightplan.M(c.theirSavings, ""),
		flightplan.M(c.lifestyle, ""),
	)
	return AppendMilestone(c.scenario, m)
}
