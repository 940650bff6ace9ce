package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/coinledger"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *coinledger.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s.On.IsZero() {
		doc.H1("Collection Summary")
	} else {
		doc.H1(fmt.Sprintf("Collection Summary on %s", s.On))
	}
	doc.PlainText(fmt.Sprintf("%s Overall completion: %s (%d of %d coins, %d staged)",
		s.Overall.Ratio().Marker(), s.Overall.Ratio(),
		s.Overall.Collected, s.Overall.Countable(), s.Overall.Staged))
	if s.Specials.Countable() > 0 {
		doc.PlainText(fmt.Sprintf("%s Commemorative coins: %s (%d of %d)",
			s.Specials.Ratio().Marker(), s.Specials.Ratio(),
			s.Specials.Collected, s.Specials.Countable()))
	}

	groupTable(doc, "By Country", "Country", s.Countries)
	groupTable(doc, "By Year", "Year", s.Years)
	groupTable(doc, "By Value", "Value", s.Values)

	return doc.String()
}

func groupTable(doc *md.Markdown, title, label string, groups []coinledger.GroupBucket) {
	if len(groups) == 0 {
		return
	}
	doc.H2(title)
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Ratio().Marker(),
			g.Label,
			fmt.Sprintf("%d", g.Collected),
			fmt.Sprintf("%d", g.Missing),
			fmt.Sprintf("%d", g.Staged),
			g.Ratio().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"", label, "Collected", "Missing", "Staged", "Completion"},
		Rows:   rows,
	})
}
