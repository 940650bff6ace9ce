package coinledger

import (
	"errors"
	"fmt"
	"log"
)

// ErrStatusRegression reports a backward status transition in the source
// sheet, a collected coin turning missing or a missing coin turning
// unavailable. A regression means the sheet was edited by hand in a way the
// ledger refuses to follow.
var ErrStatusRegression = errors.New("coin status regressed")

// Reconcile merges a freshly decoded ledger with its predecessor. The sheet
// is authoritative for status, the previous ledger for provenance: creation
// dates, collection dates, staging marks and collector names are carried
// forward by coin identity. New coins are stamped with the given date.
//
// A coin whose decoded status is unknown keeps its previous status with a
// warning. Any other divergence that is not a new collection is fatal,
// except an unavailable decode of a staged coin, which keeps the coin
// missing and staged.
func Reconcile(fresh, prev *Ledger, on Date) (*Ledger, error) {
	index := make(map[Key]Coin, prev.Len())
	dupes := make(map[Key]bool)
	for c := range prev.Coins() {
		k := c.Key()
		if _, ok := index[k]; ok {
			dupes[k] = true
		}
		index[k] = c
	}

	out := NewLedger()
	added := 0
	for c := range fresh.Coins() {
		c = c.clone()
		s := c.State()
		if dupes[c.Key()] {
			// Identity is broken for this key, nothing safe to carry.
			log.Printf("error: %s appears several times in the previous ledger, keeping the decoded state", c.Key())
			delete(index, c.Key())
			s.Created = on
			if s.Status == StatusCollected {
				s.Collected = on
			}
			out.Append(c)
			continue
		}
		old, ok := index[c.Key()]
		if !ok {
			added++
			s.Created = on
			if s.Status == StatusCollected {
				s.Collected = on
			}
			out.Append(c)
			continue
		}
		delete(index, c.Key())
		os := old.State()
		s.Created = os.Created

		switch {
		case s.Status == StatusUnknown:
			log.Printf("warning: %s decoded with unknown status, keeping %s", c.Key(), os.Status)
			s.Status = os.Status
			s.Collected = os.Collected
			s.Staged = os.Staged
			s.Collector = os.Collector

		case s.Status == os.Status:
			s.Collected = os.Collected
			s.Staged = os.Staged
			s.Collector = os.Collector

		case s.Status == StatusCollected:
			// Newly collected on the sheet. A pending staging is resolved.
			s.Collected = on
			s.Collector = os.Collector

		case os.Status == StatusCollected:
			return nil, fmt.Errorf("%w: %s collected on %s, sheet now says %s", ErrStatusRegression, c.Key(), os.Collected, s.Status)

		case os.Staged && os.Status == StatusMissing && s.Status == StatusUnavailable:
			// A staged coin was promoted to missing by hand even though the
			// sheet still lists it as unavailable. Keep the promotion.
			s.Status = StatusMissing
			s.Staged = true
			s.Collector = os.Collector

		default:
			return nil, fmt.Errorf("%w: %s was %s, sheet now says %s", ErrStatusRegression, c.Key(), os.Status, s.Status)
		}
		out.Append(c)
	}

	if added > 0 {
		log.Printf("warning: %d new coins appeared in the sheet", added)
	}
	if len(index) > 0 {
		log.Printf("warning: %d coins disappeared from the sheet", len(index))
	}
	return out, nil
}
