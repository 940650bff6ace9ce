package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/coinledger"
	md "github.com/nao1215/markdown"
)

func DiffMarkdown(d *coinledger.Diff) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Collection Progress from %s to %s", d.From, d.To))
	if len(d.Countries) == 0 && d.Overall.To.IsZero() {
		doc.PlainText("No data to compare yet.")
		return doc.String()
	}

	delta := d.Overall.Delta()
	doc.PlainText(fmt.Sprintf("%s Overall: %s, from %s to %s",
		delta.DeltaMarker(), delta.Percent().SignedString(), d.Overall.From, d.Overall.To))
	sdelta := d.Specials.Delta()
	doc.PlainText(fmt.Sprintf("%s Specials: %s, from %s to %s",
		sdelta.DeltaMarker(), sdelta.Percent().SignedString(), d.Specials.From, d.Specials.To))

	diffTable(doc, "By Country", "Country", d.Countries)
	diffTable(doc, "By Year", "Year", d.Years)
	diffTable(doc, "By Value", "Value", d.Values)

	return doc.String()
}

func diffTable(doc *md.Markdown, title, label string, entries []coinledger.DiffEntry) {
	if len(entries) == 0 {
		return
	}
	doc.H2(title)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		delta := e.Delta()
		rows = append(rows, []string{
			delta.DeltaMarker(),
			e.Label,
			e.From.String(),
			e.To.String(),
			delta.Percent().SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"", label, "Before", "After", "Change"},
		Rows:   rows,
	})
}
