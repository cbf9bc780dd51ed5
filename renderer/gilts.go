package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/giltladder"
	md "github.com/nao1215/markdown"
)

// GiltsMarkdown renders the per-rung gilt suggestions.
func GiltsMarkdown(gilts []giltladder.ReferenceGilt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recommended Gilt Selection")

	rows := make([][]string, 0, len(gilts))
	for _, g := range gilts {
		rows = append(rows, []string{fmt.Sprintf("%d", g.MaturityYear), g.Name, g.ISIN})
	}
	doc.Table(md.TableSet{
		Header: []string{"Maturity", "Gilt", "ISIN"},
		Rows:   rows,
	})
	doc.PlainText("Quotes are indicative; check current prices and yields before dealing.")

	return doc.String()
}
