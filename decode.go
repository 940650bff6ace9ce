package coinledger

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// UnparseableAmount is the sentinel stored when a mint count cell holds
// something that is neither a number nor a recognized placeholder.
const UnparseableAmount = -1

// DecodeWorkbook decodes the three fixed-layout sheets of the collection
// workbook into a fresh ledger. The rows carry decoder defaults only:
// provenance fields are filled by reconciliation.
//
// Any structural mismatch (missing sheet, missing markers, truncated blocks)
// is fatal: a ledger must never be built from a corrupt source.
func DecodeWorkbook(r io.Reader) (*Ledger, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	l := NewLedger()
	if err := decodeEU(f, l); err != nil {
		return nil, err
	}
	if err := decodeGermany(f, l); err != nil {
		return nil, err
	}
	if err := decodeSpecial(f, l); err != nil {
		return nil, err
	}
	return l, nil
}

// decodeEU decodes the EU sheet: per country, a marker cell, a year header
// row, and a fixed 8-row block of coin values. Block positions are computed
// from the running country index (11 rows per country).
func decodeEU(f *excelize.File, l *Ledger) error {
	rows, err := f.GetRows(sheetEU)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheetEU, err)
	}

	countries := 0
	for i, row := range rows {
		country := countryNames[strings.TrimSpace(cellAt(row, 1))]
		if country == "" {
			continue
		}
		if i != countries*11 {
			return fmt.Errorf("sheet %q: country marker %q at row %d, want row %d", sheetEU, cellAt(row, 1), i+1, countries*11+1)
		}
		if i+9 >= len(rows) {
			return fmt.Errorf("sheet %q: truncated block for %q", sheetEU, country)
		}
		years := headerYears(rows[i+1])
		if len(years) == 0 {
			return fmt.Errorf("sheet %q: no year header for %q", sheetEU, country)
		}
		for vi, value := range denominations {
			coinRow := rows[i+2+vi]
			for yi, year := range years {
				l.Append(&StandardCoin{
					Country: country,
					Year:    year,
					Value:   value,
					RowState: RowState{
						Amount: parseAmount(cellAt(coinRow, yi+1)),
						Status: cellStatus(f, sheetEU, yi+2, i+2+vi+1),
					},
				})
			}
		}
		countries++
	}
	if countries == 0 {
		return fmt.Errorf("sheet %q: no country markers found", sheetEU)
	}
	return nil
}

// decodeGermany decodes the Deutschland sheet: five fixed 5-year blocks,
// each with a mint mark header row and eight coin value rows, five mint
// columns per year.
func decodeGermany(f *excelize.File, l *Ledger) error {
	rows, err := f.GetRows(sheetGermany)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheetGermany, err)
	}

	for _, block := range germanBlocks {
		markRow := block.row + 1
		if markRow+8 >= len(rows) {
			return fmt.Errorf("sheet %q: truncated block starting %d", sheetGermany, block.startYear)
		}
		for yi := 0; yi < 5; yi++ {
			year := block.startYear + yi
			for si := 0; si < 5; si++ {
				col := yi*5 + 1 + si
				source := strings.ToLower(strings.TrimSpace(cellAt(rows[markRow], col)))
				if source == "" {
					return fmt.Errorf("sheet %q: missing mint mark for %d, column %d", sheetGermany, year, col+1)
				}
				for vi, value := range denominations {
					rowIdx := markRow + 1 + vi
					l.Append(&StandardCoin{
						Country: "germany",
						Year:    year,
						Value:   value,
						Source:  source,
						RowState: RowState{
							Amount: parseAmount(cellAt(rows[rowIdx], col)),
							Status: cellStatus(f, sheetGermany, col+1, rowIdx+1),
						},
					})
				}
			}
		}
	}
	return nil
}

// decodeSpecial decodes the free-form Sondermünzen sheet: two header rows,
// then one coin per row with explicit columns.
func decodeSpecial(f *excelize.File, l *Ledger) error {
	rows, err := f.GetRows(sheetSpecial)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheetSpecial, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet %q: missing header rows", sheetSpecial)
	}

	for i := 2; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellAt(row, 0))
		if name == "" {
			continue // trailing blank rows
		}
		year, err := strconv.Atoi(strings.TrimSpace(cellAt(row, 2)))
		if err != nil {
			return fmt.Errorf("sheet %q row %d: bad year %q", sheetSpecial, i+1, cellAt(row, 2))
		}
		l.Append(&SpecialCoin{
			Name:        name,
			Country:     strings.ToLower(strings.TrimSpace(cellAt(row, 1))),
			Year:        year,
			Source:      strings.ToLower(strings.TrimSpace(cellAt(row, 5))),
			Link:        strings.TrimSpace(cellAt(row, 7)),
			Description: strings.TrimSpace(cellAt(row, 8)),
			RowState: RowState{
				Amount: parseAmount(cellAt(row, 3)),
				Status: cellStatus(f, sheetSpecial, 1, i+1),
			},
		})
	}
	return nil
}

// cellStatus decodes the collection status from the fill color of a cell.
// col and row are 1-based sheet coordinates.
func cellStatus(f *excelize.File, sheet string, col, row int) Status {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		log.Printf("warning: bad coordinates %s!(%d,%d): %v", sheet, col, row, err)
		return StatusUnknown
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		log.Printf("warning: no style for %s!%s: %v", sheet, cell, err)
		return StatusUnknown
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		log.Printf("warning: unreadable style for %s!%s: %v", sheet, cell, err)
		return StatusUnknown
	}
	var color string
	if len(style.Fill.Color) > 0 {
		color = style.Fill.Color[0]
	}
	status, ok := fillColors[normalizeColor(color)]
	if !ok {
		log.Printf("warning: unknown cell color %q in %s!%s", color, sheet, cell)
		return StatusUnknown
	}
	return status
}

// headerYears reads the year header row of an EU country block: integers
// within the plausible minting range, stopping at the first gap.
func headerYears(row []string) []int {
	var years []int
	for i := 1; i < len(row); i++ {
		y, err := strconv.Atoi(strings.TrimSpace(row[i]))
		if err != nil || y < firstEuroYear || y > lastEuroYear {
			break
		}
		years = append(years, y)
	}
	return years
}

// parseAmount normalizes a mint count cell into thousand-units. Recognized
// placeholders decode to 0, anything else non-numeric to the sentinel.
func parseAmount(cell string) int64 {
	v := strings.TrimSpace(cell)
	switch v {
	case "", "---", "???":
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return UnparseableAmount
	}
	return int64(n / 1000)
}

// cellAt returns the cell at index i of a possibly ragged row.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
