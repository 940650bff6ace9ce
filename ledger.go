package coinledger

import (
	"iter"
	"strings"
)

// Ledger is the unified table of all known coin identities and their
// current collection status.
//
// A Ledger holds no internal lock: reload and staging mutations must be
// serialized by the caller (see Keeper). Readers may hold a Ledger value
// across a reload because reloads swap in a whole new instance.
type Ledger struct {
	coins []Coin
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds rows to the ledger, keeping decode order.
func (l *Ledger) Append(coins ...Coin) {
	l.coins = append(l.coins, coins...)
}

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.coins) }

// Coins returns an iterator over rows matching every given predicate.
// With no predicate it yields all rows, in stable order.
func (l *Ledger) Coins(filters ...func(Coin) bool) iter.Seq[Coin] {
	return func(yield func(Coin) bool) {
	next:
		for _, c := range l.coins {
			for _, filter := range filters {
				if !filter(c) {
					continue next
				}
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Find returns the rows with exactly this identity key. Absent fields are
// empty in the key, so two absent sources compare equal.
func (l *Ledger) Find(key Key) []Coin {
	var matches []Coin
	for _, c := range l.coins {
		if c.Key() == key {
			matches = append(matches, c)
		}
	}
	return matches
}

// Intersect keeps the rows of this ledger that appear in candidates,
// preserving the candidate order. It is the merge point for externally
// ranked subsets (similarity search over coin descriptions).
func (l *Ledger) Intersect(candidates []Coin) []Coin {
	present := make(map[Key]Coin, len(l.coins))
	for _, c := range l.coins {
		present[c.Key()] = c
	}
	var out []Coin
	for _, cand := range candidates {
		if c, ok := present[cand.Key()]; ok {
			out = append(out, c)
		}
	}
	return out
}

// AsOf derives the ledger state at a past date: rows created after the date
// are dropped, and a row collected after the date is presented as missing
// again. Unavailable rows are left untouched. The returned ledger is an
// independent copy; the receiver is never modified.
func (l *Ledger) AsOf(on Date) *Ledger {
	view := NewLedger()
	for _, c := range l.coins {
		st := c.State()
		if st.Created.After(on) {
			continue
		}
		d := c.clone()
		ds := d.State()
		if ds.Status == StatusCollected && ds.Collected.After(on) {
			ds.Status = StatusMissing
			ds.Collected = Date{}
		}
		view.Append(d)
	}
	return view
}

// ByCountry filters rows by country, case-insensitively.
func ByCountry(country string) func(Coin) bool {
	country = strings.ToLower(strings.TrimSpace(country))
	return func(c Coin) bool { return c.Key().Country == country }
}

// ByYear filters rows by minting year.
func ByYear(year int) func(Coin) bool {
	return func(c Coin) bool { return c.Key().Year == year }
}

// ByValue filters rows by face value.
func ByValue(value Denomination) func(Coin) bool {
	return func(c Coin) bool { return c.Key().Value == value.String() }
}

// BySource filters rows by mint mark, case-insensitively. An empty source
// matches rows without one.
func BySource(source string) func(Coin) bool {
	source = strings.ToLower(strings.TrimSpace(source))
	return func(c Coin) bool { return c.Key().Source == source }
}

// BySpecial filters rows by kind.
func BySpecial(special bool) func(Coin) bool {
	return func(c Coin) bool { return c.IsSpecial() == special }
}

// ByName filters commemorative coins whose name contains the given text,
// case-insensitively.
func ByName(name string) func(Coin) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return func(c Coin) bool {
		return c.IsSpecial() && strings.Contains(strings.ToLower(c.Key().Name), name)
	}
}

// ByStatus filters rows by collection status.
func ByStatus(status Status) func(Coin) bool {
	return func(c Coin) bool { return c.State().Status == status }
}

// ByStaged filters rows by staging flag.
func ByStaged(staged bool) func(Coin) bool {
	return func(c Coin) bool { return c.State().Staged == staged }
}
