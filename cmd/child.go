package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type childCmd struct {
	scenario  string
	on        string
	memo      string
	monthly   float64
	education float64
	years     int
}

func (*childCmd) Name() string     { return "child" }
func (*childCmd) Synopsis() string { return "record a new child milestone" }
func (*childCmd) Usage() string {
	return `fp child -on <month> -monthly <amount> [options]

  Records a new child: recurring child costs and an optional monthly
  education savings contribution over the years of support.

Usage Examples:
$ fp child -on 2029-04 -monthly 800 -education 250 -years 18

`
}

func (c *childCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "Month of the birth, e.g. 2029-04. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly cost of raising the child.")
	f.Float64Var(&c.education, "education", 0, "Monthly education savings contribution.")
	f.IntVar(&c.years, "years", 0, "Years of support. 0 defaults to 18.")
}

func (c *childCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewChild(on, c.memo,
		flightplan.M(c.monthly, ""),
		flightplan.M(c.education, ""),
	)
	m.Years = c.years
	return AppendMilestone(c.scenario, m)
}
