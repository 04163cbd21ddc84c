package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/flightplan"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the headline numbers of one or several projections
// of the same scenario, one row per horizon.
func SummaryMarkdown(results ...*flightplan.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(results) == 0 {
		return ""
	}
	doc.H1(fmt.Sprintf("Summary for %q", results[0].Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Horizon", "Net Worth", "Lowest Point", "Total Taxes", "Savings Rate"},
		Rows:   [][]string{},
	}
	for _, r := range results {
		final, lowest := r.Final(), r.Lowest()
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d years", r.Span.Years()),
			final.NetWorth.String(),
			fmt.Sprintf("%s on %s", lowest.NetWorth, lowest.Month),
			r.TotalTaxes().String(),
			r.SavingsRate().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
