// Package renderer turns gilt ladder results into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/giltladder"
	md "github.com/nao1215/markdown"
)

// LadderMarkdown renders a computed ladder as a markdown report.
func LadderMarkdown(r *giltladder.LadderResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Gilt Ladder")
	doc.PlainText(fmt.Sprintf("Total allocated: %s across %d rungs", r.TotalAllocated, len(r.Rungs)))

	rows := make([][]string, 0, len(r.Rungs))
	for _, rung := range r.Rungs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rung.MaturityYear),
			string(rung.Account),
			rung.Amount.String(),
			rung.Yield.String(),
			rung.Income.String(),
			rung.Weight.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Maturity", "Account", "Allocation", "Yield", "Annual Income", "Weight"},
		Rows:   rows,
	})

	doc.H2("Projection")
	doc.PlainText(fmt.Sprintf("Projected annual income: %s", r.ProjectedAnnualIncome))
	if r.Shortfall() {
		doc.PlainText(fmt.Sprintf("Shortfall against target: %s", r.Surplus.Neg()))
	} else {
		doc.PlainText(fmt.Sprintf("Surplus over target: %s", r.Surplus))
	}
	doc.PlainText(fmt.Sprintf("Estimated tax drag: %s", r.EstimatedTaxDrag))

	if !r.SIPPCashReserve.IsZero() || !r.ISACashReserve.IsZero() {
		doc.H2("Cash Reserves")
		doc.Table(md.TableSet{
			Header: []string{"Account", "Reserve"},
			Rows: [][]string{
				{"SIPP", r.SIPPCashReserve.String()},
				{"ISA", r.ISACashReserve.String()},
				{"Total", r.SIPPCashReserve.Add(r.ISACashReserve).String()},
			},
		})
	}

	return doc.String()
}
