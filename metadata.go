package coinledger

import "strings"

// Fixed decode tables for the workbook layouts. The sheet is maintained in
// German; the ledger stores English country names, lower-case.

// Sheet names inside the workbook.
const (
	sheetEU      = "EU"
	sheetGermany = "Deutschland"
	sheetSpecial = "Sondermünzen"
)

// countryNames maps the country marker cells of the EU sheet to canonical
// ledger country names.
var countryNames = map[string]string{
	"Belgien":      "belgium",
	"Estland":      "estonia",
	"Finnland":     "finland",
	"Frankreich":   "france",
	"Griechenland": "greece",
	"Irland":       "ireland",
	"Italien":      "italy",
	"Kroatien":     "croatia",
	"Lettland":     "latvia",
	"Litauen":      "lithuania",
	"Luxemburg":    "luxembourg",
	"Malta":        "malta",
	"Monaco":       "monaco",
	"Niederlande":  "netherlands",
	"Österreich":   "austria",
	"Portugal":     "portugal",
	"Slowakei":     "slovakia",
	"Slowenien":    "slovenia",
	"Spanien":      "spain",
	"Vatikan":      "vatican",
	"Zypern":       "cyprus",
}

// germanBlocks lists the five fixed 5-year blocks of the Deutschland sheet:
// the first year of the block and the sheet row (0-based) of the block's
// year header. The mint mark row and the eight value rows follow it.
var germanBlocks = []struct {
	startYear int
	row       int
}{
	{2002, 0},
	{2007, 12},
	{2012, 24},
	{2017, 36},
	{2022, 48},
}

// fillColors maps normalized cell fill colors to a status. Several encodings
// of the same color occur in the wild (indexed palette entries, legacy alpha
// forms), so the table carries known duplicates.
var fillColors = map[string]Status{
	"000000":   StatusUnavailable, // black
	"1":        StatusUnavailable, // indexed black
	"":         StatusMissing,     // no fill
	"FFFFFF":   StatusMissing,     // white
	"00000000": StatusMissing,     // legacy white encoding
	"0":        StatusMissing,     // indexed white
	"00B050":   StatusCollected,   // green
}

// normalizeColor strips the decoration excelize and older exports disagree
// on: a leading '#', casing, and a leading FF alpha channel.
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) == 8 && strings.HasPrefix(c, "FF") {
		c = c[2:]
	}
	return c
}

// yearRange brackets plausible minting years in the EU sheet year headers.
const (
	firstEuroYear = 1999
	lastEuroYear  = 2030
)
