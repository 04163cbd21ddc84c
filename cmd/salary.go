package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/etnz/flightplan/bls"
	"github.com/google/subcommands"
)

type salaryCmd struct {
	scenario   string
	amount     float64
	growth     float64
	occupation string
	bls        bool
	area       string
	key        string
}

func (*salaryCmd) Name() string { return "salary" }
func (*salaryCmd) Synopsis() string {
	return "update the profile salary, looking it up on BLS if asked"
}
func (*salaryCmd) Usage() string {
	return `fp salary [-amount <amount>] [-growth <rate>] [-occupation <name>] [-bls]

  Updates the salary of the scenario profile. With -bls and no -amount,
  the annual mean wage for the profile occupation is fetched from the
  Bureau of Labor Statistics occupational employment statistics.

Usage Examples:
$ fp salary -amount 105000 -growth 3
$ fp salary -occupation "Software Developers" -bls

`
}

func (c *salaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario to update. Defaults to the only scenario.")
	f.Float64Var(&c.amount, "amount", 0, "New gross annual salary. 0 with -bls fetches the occupation mean wage.")
	f.Float64Var(&c.growth, "growth", -1, "New annual salary growth rate in percent. Negative keeps the current rate.")
	f.StringVar(&c.occupation, "occupation", "", "New occupation label. Empty keeps the current one.")
	f.BoolVar(&c.bls, "bls", false, "Fetch the salary from the BLS occupational statistics.")
	f.StringVar(&c.area, "area", bls.NationalArea, "BLS area code for the wage lookup.")
	f.StringVar(&c.key, "key", os.Getenv("BLS_API_KEY"), "BLS API registration key.")
}

func (c *salaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeScenario(c.scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	p := s.Profile()
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: scenario %q has no profile yet, run 'fp new' first\n", s.Name())
		return subcommands.ExitFailure
	}

	if c.occupation != "" {
		p.Occupation = c.occupation
	}
	if c.growth >= 0 {
		p.SalaryGrowth = flightplan.Percent(c.growth)
	}

	switch {
	case c.amount > 0:
		p.AnnualSalary = flightplan.M(c.amount, p.Currency)
	case c.bls:
		occupations := bls.SearchOccupations(p.Occupation)
		if len(occupations) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no BLS occupation matches %q\n", p.Occupation)
			return subcommands.ExitUsageError
		}
		occ := occupations[0]
		wage, err := bls.NewClient(c.key).WageByArea(occ.Code, c.area)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error fetching BLS wage:", err)
			return subcommands.ExitFailure
		}
		p.AnnualSalary = flightplan.M(wage, p.Currency)
		fmt.Printf("BLS annual mean wage for %s: %s\n", occ.Title, p.AnnualSalary)
	}

	if err := s.SetProfile(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := SaveScenario(s); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully updated salary of scenario %q to %s\n", s.Name(), p.AnnualSalary)
	return subcommands.ExitSuccess
}
