package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/flightplan"
	md "github.com/nao1215/markdown"
)

// ScenarioMarkdown renders the plan itself: the profile it starts from and
// the chronological list of milestones.
func ScenarioMarkdown(s *flightplan.Scenario) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { return renderProfile(w, s) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMilestones(w, s) })
	return b.String()
}

func renderProfile(w io.Writer, s *flightplan.Scenario) bool {
	p := s.Profile()
	if p == nil {
		return false
	}
	doc := md.NewMarkdown(w)
	doc.H1(fmt.Sprintf("Scenario %q", s.Name()))

	rows := [][]string{
		{"Start", p.Start.String()},
		{"Annual salary", p.AnnualSalary.String()},
	}
	if p.Occupation != "" {
		rows = append(rows, []string{"Occupation", p.Occupation})
	}
	if p.Location != "" {
		rows = append(rows, []string{"Location", p.Location})
	}
	if p.SalaryGrowth != 0 {
		rows = append(rows, []string{"Salary growth", p.SalaryGrowth.String()})
	}
	if p.CostOfLiving != 0 {
		rows = append(rows, []string{"Cost of living", fmt.Sprintf("x%.2f", p.CostOfLiving)})
	}
	if p.Filing != flightplan.FilingNone {
		rows = append(rows, []string{"Filing status", string(p.Filing)})
	}
	if !p.StartingSavings.IsZero() {
		rows = append(rows, []string{"Savings", p.StartingSavings.String()})
	}
	if p.InvestmentReturn != 0 {
		rows = append(rows, []string{"Investment return", p.InvestmentReturn.String()})
	}
	for _, e := range p.Expenses {
		rows = append(rows, []string{e.Name, fmt.Sprintf("%s / month", e.Monthly)})
	}
	doc.Table(md.TableSet{Header: []string{"Profile", ""}, Rows: rows})
	return doc.Build() == nil
}

func renderMilestones(w io.Writer, s *flightplan.Scenario) bool {
	if s.Len() == 0 {
		return false
	}
	doc := md.NewMarkdown(w)
	doc.H2("Milestones")

	table := md.TableSet{
		Header: []string{"Month", "Milestone", "Memo"},
		Rows:   [][]string{},
	}
	for m := range s.Milestones() {
		table.Rows = append(table.Rows, []string{
			m.When().String(),
			string(m.What()),
			m.Rationale(),
		})
	}
	doc.Table(table)
	return doc.Build() == nil
}
