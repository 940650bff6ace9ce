package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/coinledger"
	md "github.com/nao1215/markdown"
)

func DeltaMarkdown(d *coinledger.Delta) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("New Coins from %s to %s", d.From, d.To))
	if d.Empty() {
		doc.PlainText("Nothing new over this period.")
		return doc.String()
	}

	if len(d.Collected) > 0 {
		doc.H2("Collected")
		rows := make([][]string, 0, len(d.Collected))
		for _, c := range d.Collected {
			s := c.State()
			rows = append(rows, []string{"✅", c.Label(), s.Collected.String(), s.Collector})
		}
		doc.Table(md.TableSet{
			Header: []string{"", "Coin", "On", "By"},
			Rows:   rows,
		})
	}

	if len(d.Staged) > 0 {
		doc.H2("Pending")
		rows := make([][]string, 0, len(d.Staged))
		for _, c := range d.Staged {
			rows = append(rows, []string{"⏳", c.Label(), c.State().Collector})
		}
		doc.Table(md.TableSet{
			Header: []string{"", "Coin", "By"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// GainText renders the completion impact of collecting one coin, before and
// after the one-unit increment for each group.
func GainText(g *coinledger.Gain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Collecting %s:\n", g.Coin.Label())
	for _, e := range []coinledger.DiffEntry{g.Overall, g.Country, g.Year, g.Value} {
		fmt.Fprintf(&b, "- %s: %s %s ➡️ %s %s (%s)\n", e.Label,
			e.From.Marker(), e.From,
			e.To.Marker(), e.To,
			e.Delta().Percent().SignedString())
	}
	return b.String()
}
