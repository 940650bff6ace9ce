package coinledger

import "testing"

func TestNewSummary(t *testing.T) {
	s := NewSummary(testLedger(), Date{})

	// 2 collected, 3 missing (one staged), 1 unavailable.
	if s.Overall.Collected != 2 || s.Overall.Missing != 3 || s.Overall.Unavailable != 1 {
		t.Fatalf("overall = %+v", s.Overall)
	}
	if s.Overall.Staged != 1 {
		t.Errorf("staged = %d, want 1", s.Overall.Staged)
	}
	if s.Overall.Countable() != 5 {
		t.Errorf("countable = %d, want 5", s.Overall.Countable())
	}
	if !s.Overall.Ratio().Equal(NewRatio(2, 5)) {
		t.Errorf("ratio = %v, want 2/5", s.Overall.Ratio())
	}
	if !s.Overall.ProgressRatio().Equal(NewRatio(3, 5)) {
		t.Errorf("progress ratio = %v, want 3/5", s.Overall.ProgressRatio())
	}

	if s.Specials.Missing != 1 || s.Specials.Collected != 0 {
		t.Errorf("specials = %+v", s.Specials)
	}

	wantCountries := []string{"france", "germany", "greece"}
	if len(s.Countries) != len(wantCountries) {
		t.Fatalf("got %d countries, want %d", len(s.Countries), len(wantCountries))
	}
	for i, want := range wantCountries {
		if s.Countries[i].Label != want {
			t.Errorf("country[%d] = %q, want %q", i, s.Countries[i].Label, want)
		}
	}

	// The unavailable greek coin must not enter any denominator.
	for _, g := range s.Countries {
		if g.Label == "greece" && g.Countable() != 1 {
			t.Errorf("greece countable = %d, want 1", g.Countable())
		}
	}
}

func TestNewSummaryAsOf(t *testing.T) {
	s := NewSummary(testLedger(), MustParse("2021-01-01"))
	// Nothing was collected yet and the special coin did not exist.
	if s.Overall.Collected != 0 {
		t.Errorf("collected = %d, want 0", s.Overall.Collected)
	}
	if s.Overall.Countable() != 4 {
		t.Errorf("countable = %d, want 4", s.Overall.Countable())
	}
}

func TestNewDiff(t *testing.T) {
	l := testLedger()
	diff := NewDiff(
		NewSummary(l, MustParse("2021-01-01")),
		NewSummary(l, MustParse("2023-01-01")),
	)

	if !diff.Overall.From.IsZero() {
		t.Errorf("overall from = %v, want zero", diff.Overall.From)
	}
	if !diff.Overall.To.Equal(NewRatio(2, 5)) {
		t.Errorf("overall to = %v, want 2/5", diff.Overall.To)
	}
	if diff.Overall.Delta().DeltaMarker() != "🟢" {
		t.Errorf("overall delta marker = %s, want 🟢", diff.Overall.Delta().DeltaMarker())
	}

	// Groups follow the recent summary: the special greek coin exists only
	// in the recent one, so greece appears with a zero From.
	found := false
	for _, e := range diff.Years {
		if e.Label == "2004" {
			found = true
			if !e.From.IsZero() {
				t.Errorf("2004 from = %v, want zero", e.From)
			}
		}
	}
	if !found {
		t.Error("year 2004 missing from the diff")
	}

	// The special subset has its own entry, the uncollected special coin
	// keeps both sides at zero.
	if diff.Specials.Label != "specials" {
		t.Errorf("specials label = %q, want specials", diff.Specials.Label)
	}
	if !diff.Specials.Delta().IsZero() {
		t.Errorf("specials delta = %v, want zero", diff.Specials.Delta())
	}

	// Every coin in the fixture is a 2 euro.
	if len(diff.Values) != 1 {
		t.Fatalf("got %d value entries, want 1", len(diff.Values))
	}
	if e := diff.Values[0]; e.Label != "2 euro" || !e.To.Equal(NewRatio(2, 5)) {
		t.Errorf("value entry = %+v, want 2 euro at 2/5", e)
	}
}

func TestNewGain(t *testing.T) {
	l := testLedger()
	key := (&StandardCoin{Country: "france", Year: 2001, Value: TwoEuro}).Key()
	g := NewGain(l, findOne(t, l, key))

	// 5 countable coins overall with 2 collected, 2 for france with 1
	// collected, year 2001 only has the one french coin.
	assert := func(name string, e DiffEntry, label string, from, to Ratio) {
		t.Helper()
		if e.Label != label {
			t.Errorf("%s label = %q, want %q", name, e.Label, label)
		}
		if !e.From.Equal(from) || !e.To.Equal(to) {
			t.Errorf("%s = %v to %v, want %v to %v", name, e.From, e.To, from, to)
		}
	}
	assert("overall", g.Overall, "overall", NewRatio(2, 5), NewRatio(3, 5))
	assert("country", g.Country, "france", NewRatio(1, 2), NewRatio(2, 2))
	assert("year", g.Year, "2001", NewRatio(0, 1), NewRatio(1, 1))
	assert("value", g.Value, "2 euro", NewRatio(2, 5), NewRatio(3, 5))

	if !g.Year.Delta().Equal(NewRatio(1, 1)) {
		t.Errorf("year delta = %v, want 1/1", g.Year.Delta())
	}
}

func TestNewDelta(t *testing.T) {
	l := testLedger()

	t.Run("full window", func(t *testing.T) {
		d := NewDelta(l, MustParse("2021-01-01"), MustParse("2023-01-01"))
		if len(d.Collected) != 2 {
			t.Fatalf("got %d collected coins, want 2", len(d.Collected))
		}
		if len(d.Staged) != 1 {
			t.Fatalf("got %d staged coins, want 1", len(d.Staged))
		}
		if d.Empty() {
			t.Error("delta should not be empty")
		}
	})

	t.Run("window bounds", func(t *testing.T) {
		// france 2000 was collected exactly on 2021-06-15: the start bound
		// is exclusive, the end bound inclusive.
		d := NewDelta(l, MustParse("2021-06-15"), MustParse("2022-01-01"))
		if len(d.Collected) != 0 {
			t.Errorf("got %d collected coins, want 0", len(d.Collected))
		}
		d = NewDelta(l, MustParse("2021-06-14"), MustParse("2021-06-15"))
		if len(d.Collected) != 1 {
			t.Errorf("got %d collected coins, want 1", len(d.Collected))
		}
	})

	t.Run("empty window", func(t *testing.T) {
		d := NewDelta(ledgerOf(standard("france", 2000, StatusMissing)), MustParse("2019-01-01"), MustParse("2020-01-01"))
		if !d.Empty() {
			t.Error("delta should be empty")
		}
	})
}
