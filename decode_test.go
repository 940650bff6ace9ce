package coinledger

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// workbook builds test fixtures in the layouts the decoder expects.
type workbook struct {
	t           *testing.T
	f           *excelize.File
	collected   int // style ids
	unavailable int
}

func newWorkbook(t *testing.T) *workbook {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetEU); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet(sheetGermany); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet(sheetSpecial); err != nil {
		t.Fatal(err)
	}
	collected, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00B050"}}})
	if err != nil {
		t.Fatal(err)
	}
	unavailable, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}}})
	if err != nil {
		t.Fatal(err)
	}
	return &workbook{t: t, f: f, collected: collected, unavailable: unavailable}
}

// set writes a cell value at 0-based coordinates.
func (w *workbook) set(sheet string, col, row int, value any) {
	w.t.Helper()
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		w.t.Fatal(err)
	}
	if err := w.f.SetCellValue(sheet, cell, value); err != nil {
		w.t.Fatal(err)
	}
}

// paint applies a fill style at 0-based coordinates.
func (w *workbook) paint(sheet string, col, row, style int) {
	w.t.Helper()
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		w.t.Fatal(err)
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
		w.t.Fatal(err)
	}
}

func (w *workbook) bytes() []byte {
	w.t.Helper()
	var buf bytes.Buffer
	if err := w.f.Write(&buf); err != nil {
		w.t.Fatal(err)
	}
	return buf.Bytes()
}

// fillEU writes one country block: marker, two year columns, eight value rows.
func (w *workbook) fillEU() {
	w.set(sheetEU, 1, 0, "Belgien")
	w.set(sheetEU, 1, 1, 2000)
	w.set(sheetEU, 2, 1, 2001)
	for vi := range denominations {
		w.set(sheetEU, 1, 2+vi, "1500000")
		w.set(sheetEU, 2, 2+vi, "---")
	}
	// 1 cent of 2000 is collected, 1 cent of 2001 was never minted.
	w.paint(sheetEU, 1, 2, w.collected)
	w.paint(sheetEU, 2, 2, w.unavailable)
}

// fillGermany writes the five fixed blocks with all mint marks.
func (w *workbook) fillGermany() {
	marks := []string{"A", "D", "F", "G", "J"}
	for _, block := range germanBlocks {
		w.set(sheetGermany, 0, block.row, block.startYear)
		markRow := block.row + 1
		for yi := 0; yi < 5; yi++ {
			for si, mark := range marks {
				col := yi*5 + 1 + si
				w.set(sheetGermany, col, markRow, mark)
				for vi := range denominations {
					w.set(sheetGermany, col, markRow+1+vi, "2500000")
				}
			}
		}
	}
	// 1 cent, 2002, mint A is collected.
	w.paint(sheetGermany, 1, 2, w.collected)
}

// fillSpecial writes the two header rows and two commemorative coins.
func (w *workbook) fillSpecial() {
	w.set(sheetSpecial, 0, 0, "Sondermünzen")
	w.set(sheetSpecial, 0, 1, "Name")
	w.set(sheetSpecial, 0, 2, "Olympics Athens")
	w.set(sheetSpecial, 1, 2, "Greece")
	w.set(sheetSpecial, 2, 2, 2004)
	w.set(sheetSpecial, 3, 2, "35000000")
	w.set(sheetSpecial, 5, 2, "Bank")
	w.set(sheetSpecial, 7, 2, "https://example.org/athens.jpg")
	w.set(sheetSpecial, 8, 2, "First commemorative coin ever issued.")
	w.paint(sheetSpecial, 0, 2, w.collected)

	w.set(sheetSpecial, 0, 3, "Treaty of Rome")
	w.set(sheetSpecial, 1, 3, "Italy")
	w.set(sheetSpecial, 2, 3, 2007)
	w.set(sheetSpecial, 3, 3, "???")
}

func testWorkbook(t *testing.T) []byte {
	w := newWorkbook(t)
	w.fillEU()
	w.fillGermany()
	w.fillSpecial()
	return w.bytes()
}

func TestDecodeWorkbook(t *testing.T) {
	l, err := DecodeWorkbook(bytes.NewReader(testWorkbook(t)))
	if err != nil {
		t.Fatal(err)
	}

	// 1 EU country x 2 years x 8 values, 5 german blocks x 5 years x 5
	// mints x 8 values, 2 specials.
	want := 16 + 1000 + 2
	if l.Len() != want {
		t.Fatalf("decoded %d coins, want %d", l.Len(), want)
	}

	t.Run("eu coin", func(t *testing.T) {
		key := (&StandardCoin{Country: "belgium", Year: 2000, Value: Denominations()[0]}).Key()
		found := l.Find(key)
		if len(found) != 1 {
			t.Fatalf("Find returned %d coins, want 1", len(found))
		}
		s := found[0].State()
		if s.Status != StatusCollected {
			t.Errorf("status = %v, want collected", s.Status)
		}
		if s.Amount != 1500 {
			t.Errorf("amount = %d, want 1500", s.Amount)
		}
	})

	t.Run("eu unavailable", func(t *testing.T) {
		key := (&StandardCoin{Country: "belgium", Year: 2001, Value: Denominations()[0]}).Key()
		found := l.Find(key)
		if len(found) != 1 {
			t.Fatalf("Find returned %d coins, want 1", len(found))
		}
		s := found[0].State()
		if s.Status != StatusUnavailable {
			t.Errorf("status = %v, want unavailable", s.Status)
		}
		if s.Amount != 0 {
			t.Errorf("amount = %d, want 0 for a placeholder", s.Amount)
		}
	})

	t.Run("german coin", func(t *testing.T) {
		key := (&StandardCoin{Country: "germany", Year: 2002, Value: Denominations()[0], Source: "a"}).Key()
		found := l.Find(key)
		if len(found) != 1 {
			t.Fatalf("Find returned %d coins, want 1", len(found))
		}
		if got := found[0].State().Status; got != StatusCollected {
			t.Errorf("status = %v, want collected", got)
		}
	})

	t.Run("german default missing", func(t *testing.T) {
		n := count(l, ByCountry("germany"), ByStatus(StatusMissing))
		if n != 999 {
			t.Errorf("got %d missing german coins, want 999", n)
		}
	})

	t.Run("special coins", func(t *testing.T) {
		var coins []Coin
		for c := range l.Coins(BySpecial(true)) {
			coins = append(coins, c)
		}
		if len(coins) != 2 {
			t.Fatalf("decoded %d special coins, want 2", len(coins))
		}
		athens := coins[0].(*SpecialCoin)
		if athens.Name != "Olympics Athens" || athens.Country != "greece" || athens.Year != 2004 {
			t.Errorf("unexpected first special coin %+v", athens)
		}
		if athens.Status != StatusCollected {
			t.Errorf("athens status = %v, want collected", athens.Status)
		}
		if athens.Amount != 35000 {
			t.Errorf("athens amount = %d, want 35000", athens.Amount)
		}
		rome := coins[1].(*SpecialCoin)
		if rome.Status != StatusMissing {
			t.Errorf("rome status = %v, want missing", rome.Status)
		}
		if rome.Amount != 0 {
			t.Errorf("rome amount = %d, want 0 for a placeholder", rome.Amount)
		}
	})
}

func TestDecodeWorkbookMissingSheet(t *testing.T) {
	w := newWorkbook(t)
	w.fillEU()
	w.fillSpecial()
	if err := w.f.DeleteSheet(sheetGermany); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeWorkbook(bytes.NewReader(w.bytes())); err == nil {
		t.Fatal("decoding a workbook without the Deutschland sheet should fail")
	}
}

func TestDecodeWorkbookNoCountries(t *testing.T) {
	w := newWorkbook(t)
	w.fillGermany()
	w.fillSpecial()
	w.set(sheetEU, 0, 0, "not a country marker")
	if _, err := DecodeWorkbook(bytes.NewReader(w.bytes())); err == nil {
		t.Fatal("decoding an EU sheet without country markers should fail")
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"---", 0},
		{"???", 0},
		{"1500000", 1500},
		{" 2500000 ", 2500},
		{"999", 0}, // below a thousand
		{"garbage", UnparseableAmount},
		{"12,5", UnparseableAmount},
	}
	for _, tc := range testCases {
		if got := parseAmount(tc.in); got != tc.want {
			t.Errorf("parseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"FF00B050", "00B050"},
		{"00B050", "00B050"},
		{"#00b050", "00B050"},
		{"00000000", "00000000"},
		{"", ""},
		{"1", "1"},
	}
	for _, tc := range testCases {
		if got := normalizeColor(tc.in); got != tc.want {
			t.Errorf("normalizeColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
