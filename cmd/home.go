package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type homeCmd struct {
	scenario     string
	on           string
	memo         string
	price        float64
	down         float64
	rate         float64
	term         int
	appreciation float64
	utilities    float64
	hoa          float64
	renovation   float64
}

func (*homeCmd) Name() string     { return "home" }
func (*homeCmd) Synopsis() string { return "record a home purchase milestone" }
func (*homeCmd) Usage() string {
	return `fp home -on <month> -price <amount> [options]

  Records a home purchase: the down payment leaves savings, a mortgage
  amortizes over the term, the home appreciates every year, and
  ownership costs recur every month.

Usage Examples:
$ fp home -on 2028-03 -price 450000 -down 20 -rate 6.5 -term 30 \
    -appreciation 3 -utilities 250 -hoa 150 -renovation 3000

`
}

func (c *homeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "Month of the purchase, e.g. 2028-03. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.Float64Var(&c.price, "price", 0, "Purchase price of the home.")
	f.Float64Var(&c.down, "down", 20, "Down payment as a percentage of the price.")
	f.Float64Var(&c.rate, "rate", 0, "Annual mortgage interest rate in percent.")
	f.IntVar(&c.term, "term", 30, "Mortgage term in years.")
	f.Float64Var(&c.appreciation, "appreciation", 0, "Annual home appreciation rate in percent.")
	f.Float64Var(&c.utilities, "utilities", 0, "Monthly utilities.")
	f.Float64Var(&c.hoa, "hoa", 0, "Monthly homeowner association dues.")
	f.Float64Var(&c.renovation, "renovation", 0, "Annual renovation budget, spread over the year.")
}

func (c *homeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewHomePurchase(on, c.memo,
		flightplan.M(c.price, ""),
		flightplan.Percent(c.down),
		flightplan.Percent(c.rate),
		c.term,
	)
	m.Appreciation = flightplan.Percent(c.appreciation)
	m.MonthlyUtilities = flightplan.M(c.utilities, "")
	m.MonthlyHOA = flightplan.M(c.hoa, "")
	m.AnnualRenovation = flightplan.M(c.renovation, "")
	return AppendMilestone(c.scenario, m)
}
