package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/flightplan"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the month-by-month projection to a markdown
// string. Horizons longer than two years are sampled at year boundaries to
// keep the table readable.
func ProjectionMarkdown(r *flightplan.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection %q over %s", r.Name, r.Span.Identifier()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Income", "Taxes", "Expenses", "Cash Flow", "Savings", "Net Worth"},
		Rows:   [][]string{},
	}

	step := 1
	if len(r.Points) > 24 {
		step = 12
	}
	for k, p := range r.Points {
		if k%step != 0 && k != len(r.Points)-1 {
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Month.String(),
			p.Income.String(),
			p.Taxes.String(),
			p.Expenses.String(),
			p.CashFlow.SignedString(),
			p.Savings.String(),
			p.NetWorth.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
