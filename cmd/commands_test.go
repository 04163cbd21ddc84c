package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/etnz/flightplan"
	"github.com/google/subcommands"
)

// run parses args into the command flags and executes it against a plans
// directory, restoring the global afterwards.
func run(t *testing.T, plans string, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	old := plansPath
	plansPath = &plans
	defer func() { plansPath = old }()

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestNewThenMarry(t *testing.T) {
	plans := t.TempDir()

	status := run(t, plans, &newCmd{},
		"-scenario", "baseline",
		"-start", "2026-01",
		"-salary", "95000",
		"-savings", "20000",
		"-filing", "single",
		"-expense", "Rent:1800",
		"-expense", "Groceries:600:2",
	)
	if status != subcommands.ExitSuccess {
		t.Fatalf("new: expected ExitSuccess, got %v", status)
	}

	status = run(t, plans, &marryCmd{},
		"-on", "2027-06",
		"-cost", "25000",
		"-income", "70000",
		"-their-savings", "15000",
		"-lifestyle", "300",
	)
	if status != subcommands.ExitSuccess {
		t.Fatalf("marry: expected ExitSuccess, got %v", status)
	}

	s, err := flightplan.FindScenario(plans, "baseline")
	if err != nil {
		t.Fatalf("reloading scenario: %v", err)
	}
	p := s.Profile()
	if p == nil {
		t.Fatal("reloaded scenario has no profile")
	}
	if got := p.AnnualSalary.AsFloat(); got != 95000 {
		t.Errorf("salary: got %g, want 95000", got)
	}
	if p.Filing != flightplan.Single {
		t.Errorf("filing: got %q, want %q", p.Filing, flightplan.Single)
	}
	if len(p.Expenses) != 2 {
		t.Fatalf("expenses: got %d, want 2", len(p.Expenses))
	}
	if p.Expenses[1].Inflation != flightplan.Percent(2) {
		t.Errorf("groceries inflation: got %s, want 2%%", p.Expenses[1].Inflation)
	}
	if s.Len() != 1 {
		t.Fatalf("milestones: got %d, want 1", s.Len())
	}
}

func TestMilestoneWithoutProfileFails(t *testing.T) {
	plans := t.TempDir()

	status := run(t, plans, &onetimeCmd{}, "-on", "2026-06", "-cost", "4000")
	if status == subcommands.ExitSuccess {
		t.Error("expected a failure on a scenario without a profile")
	}
}

func TestFmtRewritesCanonically(t *testing.T) {
	plans := t.TempDir()

	if status := run(t, plans, &newCmd{}, "-start", "2026-01", "-salary", "60000"); status != subcommands.ExitSuccess {
		t.Fatalf("new: expected ExitSuccess, got %v", status)
	}
	// Append out of chronological order, fmt must keep them sorted on disk.
	if status := run(t, plans, &onetimeCmd{}, "-on", "2028-01", "-cost", "1000"); status != subcommands.ExitSuccess {
		t.Fatalf("onetime: expected ExitSuccess, got %v", status)
	}
	if status := run(t, plans, &onetimeCmd{}, "-on", "2026-06", "-cost", "2000"); status != subcommands.ExitSuccess {
		t.Fatalf("onetime: expected ExitSuccess, got %v", status)
	}
	if status := run(t, plans, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt: expected ExitSuccess, got %v", status)
	}

	s, err := flightplan.FindScenario(plans, "")
	if err != nil {
		t.Fatalf("reloading scenario: %v", err)
	}
	var months []string
	for m := range s.Milestones() {
		months = append(months, m.When().String())
	}
	if len(months) != 2 || months[0] != "2026-06" || months[1] != "2028-01" {
		t.Errorf("milestones out of order: %v", months)
	}
}

func TestExpenseListSet(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Rent:1800", false},
		{"Groceries:600:2.5", false},
		{"Rent", true},
		{"Rent:abc", true},
		{":600", true},
		{"Rent:600:x", true},
		{"Rent:600:2:9", true},
	}
	for _, test := range tests {
		var list expenseList
		err := list.Set(test.value)
		if (err != nil) != test.wantErr {
			t.Errorf("Set(%q): err=%v, wantErr=%v", test.value, err, test.wantErr)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := parseMonth("")
	if err != nil || m.IsZero() {
		t.Errorf("parseMonth(\"\"): got %v, %v, want the current month", m, err)
	}
	m, err = parseMonth("2026-03")
	if err != nil || m.String() != "2026-03" {
		t.Errorf("parseMonth(\"2026-03\"): got %v, %v", m, err)
	}
	if _, err := parseMonth("not-a-month"); err == nil {
		t.Error("parseMonth(\"not-a-month\"): expected an error")
	}
}
