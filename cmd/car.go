package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type carCmd struct {
	scenario     string
	on           string
	memo         string
	price        float64
	down         float64
	rate         float64
	term         int
	depreciation float64
	insurance    float64
}

func (*carCmd) Name() string     { return "car" }
func (*carCmd) Synopsis() string { return "record a vehicle purchase milestone" }
func (*carCmd) Usage() string {
	return `fp car -on <month> -price <amount> [options]

  Records a vehicle purchase: the down payment leaves savings, an auto
  loan amortizes over the term, the vehicle depreciates every year, and
  insurance recurs every month.

Usage Examples:
$ fp car -on 2027-01 -price 35000 -down 15 -rate 7 -term 5 -depreciation 15 -insurance 120

`
}

func (c *carCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "Month of the purchase, e.g. 2027-01. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.Float64Var(&c.price, "price", 0, "Purchase price of the vehicle.")
	f.Float64Var(&c.down, "down", 15, "Down payment as a percentage of the price.")
	f.Float64Var(&c.rate, "rate", 0, "Annual loan interest rate in percent.")
	f.IntVar(&c.term, "term", 5, "Loan term in years.")
	f.Float64Var(&c.depreciation, "depreciation", 0, "Annual depreciation rate in percent.")
	f.Float64Var(&c.insurance, "insurance", 0, "Monthly insurance.")
}

func (c *carCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewVehiclePurchase(on, c.memo,
		flightplan.M(c.price, ""),
		flightplan.Percent(c.down),
		flightplan.Percent(c.rate),
		c.term,
	)
	m.Depreciation = flightplan.Percent(c.depreciation)
	m.MonthlyInsurance = flightplan.M(c.insurance, "")
	return AppendMilestone(c.scenario, m)
}
