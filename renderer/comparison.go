package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/flightplan"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders a side-by-side comparison of several projected
// scenarios, one row per scenario.
func ComparisonMarkdown(c *flightplan.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(c.Results) == 0 {
		return ""
	}
	doc.H1(fmt.Sprintf("Comparing %d scenarios over %s", len(c.Results), c.Results[0].Span.Identifier()))

	best, safest := c.Best(), c.Safest()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Scenario", "Net Worth", "Lowest Point", "Total Taxes", "Savings Rate"},
		Rows:   [][]string{},
	}
	for _, r := range c.Results {
		name := r.Name
		if r == best {
			name += " (best)"
		}
		if r == safest {
			name += " (safest)"
		}
		lowest := r.Lowest()
		table.Rows = append(table.Rows, []string{
			name,
			r.Final().NetWorth.String(),
			fmt.Sprintf("%s on %s", lowest.NetWorth, lowest.Month),
			r.TotalTaxes().String(),
			r.SavingsRate().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
