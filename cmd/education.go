package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

type educationCmd struct {
	scenario    string
	on          string
	memo        string
	institution string
	cost        float64
	years       int
	raise       float64
	loanRate    float64
	loanTerm    int
}

func (*educationCmd) Name() string     { return "education" }
func (*educationCmd) Synopsis() string { return "record a return-to-school milestone" }
func (*educationCmd) Usage() string {
	return `fp education -on <month> -cost <amount> -years <n> [options]

  Records going back to school: tuition is spread over the program, or
  financed by a student loan, and the salary increases upon graduation.

Usage Examples:
$ fp education -on 2027-09 -cost 60000 -years 2 -raise 20 -loan-rate 5.5 -loan-term 10

`
}

func (c *educationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to append to. Defaults to the only scenario.")
	f.StringVar(&c.on, "on", "", "First month of the program, e.g. 2027-09. Defaults to the current month.")
	f.StringVar(&c.memo, "memo", "", "Optional rationale for the milestone.")
	f.StringVar(&c.institution, "institution", "", "Optional institution name.")
	f.Float64Var(&c.cost, "cost", 0, "Total cost of the program.")
	f.IntVar(&c.years, "years", 2, "Duration of the program in years.")
	f.Float64Var(&c.raise, "raise", 0, "Salary increase at graduation in percent.")
	f.Float64Var(&c.loanRate, "loan-rate", 0, "Annual student loan rate in percent.")
	f.IntVar(&c.loanTerm, "loan-term", 0, "Student loan term in years. 0 pays tuition out of cash flow.")
}

func (c *educationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := flightplan.NewEducation(on, c.memo,
		flightplan.M(c.cost, ""),
		c.years,
		flightplan.Percent(c.raise),
	)
	m.Institution = c.institution
	m.LoanRate = flightplan.Percent(c.loanRate)
	m.LoanTermYears = c.loanTerm
	return AppendMilestone(c.scenario, m)
}
