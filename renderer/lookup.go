package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/coinledger"
	md "github.com/nao1215/markdown"
)

func LookupMarkdown(coins []coinledger.Coin) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Coin Lookup")
	if len(coins) == 0 {
		doc.PlainText("No coin matches this request.")
		return doc.String()
	}

	rows := make([][]string, 0, len(coins))
	for _, c := range coins {
		s := c.State()
		label := c.Label()
		if sp, ok := c.(*coinledger.SpecialCoin); ok && sp.Link != "" {
			label = fmt.Sprintf("[%s](%s)", label, sp.Link)
		}
		rows = append(rows, []string{
			StatusIcon(c),
			label,
			s.Status.String(),
			ReadableMints(s.Amount) + " minted",
			s.Collector,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Coin", "Status", "Mints", "By"},
		Rows:   rows,
	})

	for _, c := range coins {
		if sp, ok := c.(*coinledger.SpecialCoin); ok && sp.Description != "" {
			doc.PlainText(fmt.Sprintf("%s: %s", sp.Name, sp.Description))
		}
	}
	return doc.String()
}
