package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/flightplan"
	"github.com/etnz/flightplan/timeline"
)

// parseMonth parses the -on flag of a milestone. An empty value means the
// current month.
func parseMonth(s string) (timeline.Month, error) {
	if s == "" {
		return timeline.This(), nil
	}
	return timeline.Parse(s)
}

// expenseList collects repeated -expense flags of the form
// "Name:Monthly[:Inflation]".
type expenseList []flightplan.ExpenseCategory

func (e *expenseList) String() string {
	var parts []string
	for _, c := range *e {
		parts = append(parts, fmt.Sprintf("%s:%s", c.Name, c.Monthly))
	}
	return strings.Join(parts, ",")
}

func (e *expenseList) Set(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("want Name:Monthly or Name:Monthly:Inflation, got %q", value)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("expense name is empty in %q", value)
	}
	monthly, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid monthly amount in %q: %w", value, err)
	}
	c := flightplan.ExpenseCategory{Name: name, Monthly: flightplan.M(monthly, "")}
	if len(parts) == 3 {
		inflation, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return fmt.Errorf("invalid inflation rate in %q: %w", value, err)
		}
		c.Inflation = flightplan.Percent(inflation)
	}
	*e = append(*e, c)
	return nil
}
