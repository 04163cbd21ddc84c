package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type onetimeCmd struct {
	scenario string
	on       string
	memo     string
	cost     float64
}

func (*onetimeCmd) Name() string     { return "onetime" }
func (*onetimeCmd) Synopsis() string { return "record a one-time cost milestone" }
func (*onetimeCmd) Usage() string {
	return `fp onetime -on <month> -cost <amount> [-memo <text>]

  Records a single dated cost with no recurring effect.

Usage Examples:
$ fp onetime -on 2026-06 -cost 4000 -memo "Trip to Japan"

`
}

func (c *onetimeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "Month of the cost, e.g. 2026-06. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.Float64Var(&c.cost, "cost", 0, "One-time cost.")
}

func (c *onetimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewOneTime(on, c.memo, flightplan.M(c.cost, ""))
	return AppendMilestone(c.scenario, m)
}
