package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/etnz/coinledger"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders the full denomination grid of one country, one row
// per value and one column per minting year. Countries with several mints
// per year show collected counts instead of a single icon.
func SeriesMarkdown(l *coinledger.Ledger, country string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Series for %s", country))

	grid := make(map[int]map[string][]coinledger.Coin)
	for c := range l.Coins(coinledger.ByCountry(country), coinledger.BySpecial(false)) {
		k := c.Key()
		if grid[k.Year] == nil {
			grid[k.Year] = make(map[string][]coinledger.Coin)
		}
		grid[k.Year][k.Value] = append(grid[k.Year][k.Value], c)
	}
	if len(grid) == 0 {
		doc.PlainText("No coins known for this country.")
		return doc.String()
	}

	years := make([]int, 0, len(grid))
	for y := range grid {
		years = append(years, y)
	}
	sort.Ints(years)

	header := []string{"Value"}
	for _, y := range years {
		header = append(header, strconv.Itoa(y))
	}
	var rows [][]string
	for _, d := range coinledger.Denominations() {
		row := []string{d.String()}
		for _, y := range years {
			row = append(row, cell(grid[y][d.String()]))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

func cell(coins []coinledger.Coin) string {
	switch len(coins) {
	case 0:
		return ""
	case 1:
		return StatusIcon(coins[0])
	}
	collected, countable := 0, 0
	for _, c := range coins {
		if c.State().Status.Counts() {
			countable++
		}
		if c.State().Status == coinledger.StatusCollected {
			collected++
		}
	}
	if countable == 0 {
		return "⛔"
	}
	if collected == countable {
		return "✅"
	}
	return fmt.Sprintf("%d/%d", collected, countable)
}
