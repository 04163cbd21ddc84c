// Package cmd implements the CLI application to manage financial flight plans.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&newCmd{},
	&salaryCmd{},
	&marryCmd{},
	&homeCmd{},
	&carCmd{},
	&childCmd{},
	&educationCmd{},
	&onetimeCmd{},
	&expenseCmd{},
	&projectCmd{},
	&summaryCmd{},
	&compareCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var plansPath = flag.String("plans", ".", "Path to the plans directory containing scenario files (JSONL format)")

// PlansPath returns the plans directory.
func PlansPath() string { return *plansPath }

// DecodeScenario loads a single scenario by name. An empty name loads the
// default scenario.
func DecodeScenario(name string) (*flightplan.Scenario, error) {
	return flightplan.FindScenario(*plansPath, name)
}

// DecodeScenarios loads the scenarios matching the name, all of them when
// the name is empty.
func DecodeScenarios(name string) ([]*flightplan.Scenario, error) {
	return flightplan.FindScenarios(*plansPath, name)
}

// SaveScenario writes the scenario back to its file in the plans directory.
func SaveScenario(s *flightplan.Scenario) error {
	return flightplan.SaveScenario(*plansPath, s)
}

// AppendMilestone validates a milestone and appends it to the scenario file.
func AppendMilestone(name string, m flightplan.Milestone) subcommands.ExitStatus {
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid %s milestone: %v\n", m.What(), err)
		return subcommands.ExitUsageError
	}

	s, err := DecodeScenario(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if s.Profile() == nil {
		fmt.Fprintf(os.Stderr, "Error: scenario %q has no profile yet, run 'fp new' first\n", s.Name())
		return subcommands.ExitFailure
	}
	if err := s.Append(m); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveScenario(s); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully added %s milestone to scenario %q\n", m.What(), s.Name())
	return subcommands.ExitSuccess
}
