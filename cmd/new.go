package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type newCmd struct {
	scenario   string
	start      string
	currency   string
	occupation string
	location   string
	salary     float64
	growth     float64
	col        float64
	filing     string
	savings    float64
	invReturn  float64
	inflation  float64
	expenses   expenseList
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new scenario with its financial profile" }
func (*newCmd) Usage() string {
	return `fp new -salary <amount> [-start <month>] [-scenario <name>] [options]

  Creates a new scenario file with the financial profile the projection
  departs from: salary, location, filing status, savings and recurring
  expense categories.

Usage Examples:
# A developer starting in January 2026, with rent and groceries.
$ fp new -start 2026-01 -salary 95000 -occupation "Software Developer" \
    -savings 20000 -filing single -expense "Rent:1800" -expense "Groceries:600"

`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "baseline", "Name of the scenario to create.")
	f.StringVar(&c.start, "start", "", "First month of the projection. Defaults to the current month.")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency.")
	f.StringVar(&c.occupation, "occupation", "", "Occupation label.")
	f.StringVar(&c.location, "location", "", "City and state, e.g. \"Austin, TX\". The state sets the income tax.")
	f.Float64Var(&c.salary, "salary", 0, "Gross annual salary.")
	f.Float64Var(&c.growth, "growth", 0, "Annual salary growth rate in percent.")
	f.Float64Var(&c.col, "col", 0, "Cost of living multiplier applied to the salary. 0 means 1.0.")
	f.StringVar(&c.filing, "filing", "", "Tax filing status (single or married). Empty disables taxes.")
	f.Float64Var(&c.savings, "savings", 0, "Savings at the start of the projection.")
	f.Float64Var(&c.invReturn, "return", 0, "Annual return on accumulated savings in percent.")
	f.Float64Var(&c.inflation, "inflation", 0, "Default annual inflation for expenses in percent.")
	f.Var(&c.expenses, "expense", "Recurring expense as Name:Monthly or Name:Monthly:Inflation. Repeatable.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseMonth(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start month: %v\n", err)
		return subcommands.ExitUsageError
	}
	filing, err := flightplan.ParseFilingStatus(c.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	p := &flightplan.Profile{
		Currency:         c.currency,
		Start:            start,
		Occupation:       c.occupation,
		Location:         c.location,
		AnnualSalary:     flightplan.M(c.salary, c.currency),
		SalaryGrowth:     flightplan.Percent(c.growth),
		CostOfLiving:     c.col,
		Filing:           filing,
		StartingSavings:  flightplan.M(c.savings, c.currency),
		InvestmentReturn: flightplan.Percent(c.invReturn),
		Inflation:        flightplan.Percent(c.inflation),
	}
	for _, e := range c.expenses {
		e.Monthly = e.Monthly.Add(flightplan.M(0, c.currency))
		p.Expenses = append(p.Expenses, e)
	}

	s := flightplan.NewScenario(c.scenario)
	if err := s.SetProfile(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := SaveScenario(s); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully created scenario %q\n", c.scenario)
	return subcommands.ExitSuccess
}
