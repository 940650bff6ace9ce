package coinledger

import (
	"testing"
)

// testLedger builds a small mixed ledger used by filter and report tests.
func testLedger() *Ledger {
	l := NewLedger()
	l.Append(&StandardCoin{Country: "france", Year: 2000, Value: TwoEuro,
		RowState: RowState{Status: StatusCollected, Created: MustParse("2020-01-01"), Collected: MustParse("2021-06-15")}})
	l.Append(&StandardCoin{Country: "france", Year: 2001, Value: TwoEuro,
		RowState: RowState{Status: StatusMissing, Created: MustParse("2020-01-01")}})
	l.Append(&StandardCoin{Country: "greece", Year: 2000, Value: TwoEuro,
		RowState: RowState{Status: StatusUnavailable, Created: MustParse("2020-01-01")}})
	l.Append(&StandardCoin{Country: "germany", Year: 2002, Value: TwoEuro, Source: "a",
		RowState: RowState{Status: StatusCollected, Created: MustParse("2020-01-01"), Collected: MustParse("2022-03-01")}})
	l.Append(&StandardCoin{Country: "germany", Year: 2002, Value: TwoEuro, Source: "j",
		RowState: RowState{Status: StatusMissing, Staged: true, Collector: "alice", Created: MustParse("2020-01-01")}})
	l.Append(&SpecialCoin{Name: "Olympics Athens", Country: "greece", Year: 2004,
		RowState: RowState{Status: StatusMissing, Created: MustParse("2022-01-01")}})
	return l
}

func count(l *Ledger, filters ...func(Coin) bool) int {
	n := 0
	for range l.Coins(filters...) {
		n++
	}
	return n
}

func TestLedgerCoins(t *testing.T) {
	l := testLedger()
	testCases := []struct {
		name    string
		filters []func(Coin) bool
		want    int
	}{
		{name: "all", want: 6},
		{name: "by country", filters: []func(Coin) bool{ByCountry("france")}, want: 2},
		{name: "country is normalized", filters: []func(Coin) bool{ByCountry(" France ")}, want: 2},
		{name: "by year", filters: []func(Coin) bool{ByYear(2000)}, want: 2},
		{name: "by source", filters: []func(Coin) bool{BySource("J")}, want: 1},
		{name: "by status", filters: []func(Coin) bool{ByStatus(StatusCollected)}, want: 2},
		{name: "by staged", filters: []func(Coin) bool{ByStaged(true)}, want: 1},
		{name: "by special", filters: []func(Coin) bool{BySpecial(true)}, want: 1},
		{name: "by name", filters: []func(Coin) bool{ByName("athens")}, want: 1},
		{name: "conjunction", filters: []func(Coin) bool{ByCountry("germany"), ByStatus(StatusMissing)}, want: 1},
		{name: "empty conjunction", filters: []func(Coin) bool{ByCountry("france"), ByYear(2002)}, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(l, tc.filters...); got != tc.want {
				t.Errorf("got %d coins, want %d", got, tc.want)
			}
		})
	}
}

func TestLedgerFind(t *testing.T) {
	l := testLedger()
	key := (&StandardCoin{Country: "germany", Year: 2002, Value: TwoEuro, Source: "a"}).Key()
	found := l.Find(key)
	if len(found) != 1 {
		t.Fatalf("Find returned %d coins, want 1", len(found))
	}
	if found[0].State().Status != StatusCollected {
		t.Errorf("found coin has status %v, want collected", found[0].State().Status)
	}

	missing := (&StandardCoin{Country: "spain", Year: 1999, Value: TwoEuro}).Key()
	if found := l.Find(missing); len(found) != 0 {
		t.Errorf("Find returned %d coins for an absent key, want 0", len(found))
	}
}

func TestLedgerAsOf(t *testing.T) {
	l := testLedger()

	t.Run("before everything", func(t *testing.T) {
		past := l.AsOf(MustParse("2019-12-31"))
		if past.Len() != 0 {
			t.Errorf("got %d coins, want 0", past.Len())
		}
	})

	t.Run("before a collection", func(t *testing.T) {
		on := MustParse("2021-01-01")
		past := l.AsOf(on)
		// The special coin appeared in 2022.
		if past.Len() != 5 {
			t.Fatalf("got %d coins, want 5", past.Len())
		}
		// france 2000 was collected mid 2021: still missing on that day.
		key := (&StandardCoin{Country: "france", Year: 2000, Value: TwoEuro}).Key()
		found := past.Find(key)
		if len(found) != 1 {
			t.Fatalf("Find returned %d coins, want 1", len(found))
		}
		s := found[0].State()
		if s.Status != StatusMissing {
			t.Errorf("status = %v, want missing", s.Status)
		}
		if !s.Collected.IsZero() {
			t.Errorf("collected date = %v, want zero", s.Collected)
		}
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		l.AsOf(MustParse("2021-01-01"))
		key := (&StandardCoin{Country: "france", Year: 2000, Value: TwoEuro}).Key()
		if got := l.Find(key)[0].State().Status; got != StatusCollected {
			t.Errorf("source ledger was mutated, status = %v", got)
		}
	})
}

func TestLedgerIntersect(t *testing.T) {
	l := testLedger()
	var candidates []Coin
	for c := range l.Coins(ByCountry("germany")) {
		candidates = append(candidates, c)
	}
	candidates = append(candidates, &StandardCoin{Country: "spain", Year: 1999, Value: TwoEuro})

	got := l.Intersect(candidates)
	if len(got) != 2 {
		t.Fatalf("Intersect returned %d coins, want 2", len(got))
	}
	for _, c := range got {
		if c.Key().Country != "germany" {
			t.Errorf("unexpected coin %s", c.Key())
		}
	}
}
