package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/giltladder"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the income summary panel.
func SummaryMarkdown(s *giltladder.IncomeSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Income Summary")

	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Ladder income", s.LadderIncome.String()},
			{"Other pension income", s.OtherPensionIncome.String()},
			{"Gross total income", s.GrossIncome.String()},
			{"Tax liability", s.Liability.String()},
			{"Net income", s.NetIncome.String()},
			{"Effective tax rate", s.EffectiveRate.String()},
		},
	})

	doc.H2("Target")
	doc.PlainText(fmt.Sprintf("Target income: %s", s.TargetIncome))
	doc.PlainText(fmt.Sprintf("Net vs target: %s (%s)", s.NetVsTarget.SignedString(), s.NetVsTargetPct.SignedString()))

	return doc.String()
}

// TaxMarkdown renders a standalone tax assessment.
func TaxMarkdown(a giltladder.TaxAssessment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tax on %s", a.GrossIncome))
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Gross income", a.GrossIncome.String()},
			{"Tax liability", a.Liability.String()},
			{"Net income", a.NetIncome.String()},
			{"Effective rate", a.EffectiveRate.String()},
		},
	})

	return doc.String()
}
