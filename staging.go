package coinledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch reports that a staging request matched no coin.
	ErrNoMatch = errors.New("no coin matches")
	// ErrAmbiguous reports that a staging request matched several coins.
	ErrAmbiguous = errors.New("ambiguous request")
)

// Stage marks the single coin matching all filters as pending collection by
// the given collector. It returns a new ledger, the receiver is unchanged.
//
// The request must identify exactly one coin. A collected or already staged
// coin cannot be staged again. Staging an unavailable coin promotes it to
// missing: the collector claims it exists regardless of the sheet.
func (l *Ledger) Stage(collector string, filters ...func(Coin) bool) (*Ledger, Coin, error) {
	var matches []Coin
	for c := range l.Coins(filters...) {
		matches = append(matches, c)
	}
	switch {
	case len(matches) == 0:
		return nil, nil, ErrNoMatch
	case len(matches) > 1:
		return nil, nil, fmt.Errorf("%w: %d coins, first two are %s and %s", ErrAmbiguous, len(matches), matches[0].Key(), matches[1].Key())
	}

	target := matches[0]
	s := target.State()
	switch {
	case s.Status == StatusCollected:
		return nil, nil, fmt.Errorf("%s is already collected", target.Key())
	case s.Staged:
		return nil, nil, fmt.Errorf("%s is already staged by %s", target.Key(), s.Collector)
	}

	key := target.Key()
	out := NewLedger()
	var staged Coin
	for c := range l.Coins() {
		c = c.clone()
		if c.Key() == key {
			ns := c.State()
			ns.Staged = true
			ns.Collector = collector
			ns.Status = StatusMissing
			staged = c
		}
		out.Append(c)
	}
	return out, staged, nil
}
