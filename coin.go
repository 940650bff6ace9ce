package coinledger

import (
	"fmt"
	"strings"
)

// Status is the collection status of a single coin.
type Status int

const (
	// StatusUnknown is decoded from an unrecognized cell color. It is
	// excluded from report denominators, like StatusUnavailable.
	StatusUnknown Status = iota
	// StatusUnavailable marks a coin that was never minted and should not exist.
	StatusUnavailable
	// StatusMissing marks a minted coin not yet in the collection.
	StatusMissing
	// StatusCollected marks a coin that is in the collection.
	StatusCollected
)

func (s Status) String() string {
	switch s {
	case StatusUnavailable:
		return "unavailable"
	case StatusMissing:
		return "missing"
	case StatusCollected:
		return "collected"
	default:
		return "unknown"
	}
}

// ParseStatus parses a status from its snapshot representation.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "unavailable":
		return StatusUnavailable, nil
	case "missing":
		return StatusMissing, nil
	case "collected":
		return StatusCollected, nil
	case "unknown":
		return StatusUnknown, nil
	default:
		return StatusUnknown, fmt.Errorf("unknown status %q", s)
	}
}

// Counts reports whether rows with this status take part in report
// denominators. Unavailable and unknown rows never do.
func (s Status) Counts() bool { return s == StatusMissing || s == StatusCollected }

// Key is the identity of one coin variant. It is unique within a ledger.
//
// Comparison fields are lower-cased; fields that do not apply to a kind are
// empty, so two absent sources compare equal.
type Key struct {
	Country string
	Year    int
	Value   string // canonical denomination, e.g. "20 cent"
	Source  string // mint mark, germany only
	Special bool
	Name    string // commemorative coin name, special only
}

// String renders the identity tuple the way chat replies quote a coin.
func (k Key) String() string {
	if k.Special {
		return fmt.Sprintf("(%s, %s, %d)", k.Name, k.Country, k.Year)
	}
	if k.Source != "" {
		return fmt.Sprintf("(%s, %d, %s, %s)", k.Country, k.Year, strings.ToUpper(k.Source), k.Value)
	}
	return fmt.Sprintf("(%s, %d, %s)", k.Country, k.Year, k.Value)
}

// RowState holds the fields shared by both coin kinds that change over the
// life of a row: what the sheet says about it, and what reconciliation and
// staging know about it.
type RowState struct {
	// Amount is the minted count in thousand-units. -1 means the source
	// cell was not parseable.
	Amount int64
	Status Status
	// Staged marks a coin claimed by a collector but not yet confirmed
	// collected. Staged implies Status != collected.
	Staged    bool
	Collector string
	// Created is the date the row first appeared in a decode.
	Created Date
	// Collected is the date Status first became collected, zero otherwise.
	Collected Date
}

// State returns the mutable row state. It exists so the method is promoted
// onto both coin kinds and reachable through the Coin interface.
func (s *RowState) State() *RowState { return s }

// Coin is one row of the ledger: either a regular coin or a commemorative
// special coin. The two kinds share identity semantics and row state.
type Coin interface {
	Key() Key
	State() *RowState
	IsSpecial() bool
	// Label renders the identity for log and chat messages.
	Label() string

	clone() Coin
}

// StandardCoin is a regular euro coin of one of the eight face values.
type StandardCoin struct {
	Country string // lower-case
	Year    int
	Value   Denomination
	Source  string // mint mark, set only for germany
	RowState
}

func (c *StandardCoin) Key() Key {
	return Key{
		Country: strings.ToLower(c.Country),
		Year:    c.Year,
		Value:   c.Value.String(),
		Source:  strings.ToLower(c.Source),
	}
}

func (c *StandardCoin) IsSpecial() bool { return false }

func (c *StandardCoin) Label() string { return c.Key().String() }

func (c *StandardCoin) clone() Coin {
	d := *c
	return &d
}

// SpecialCoin is a commemorative 2 euro coin, identified by name rather than
// face value.
type SpecialCoin struct {
	Name        string // original casing preserved
	Country     string // lower-case
	Year        int
	Source      string // mint mark when country-specific
	Description string
	Link        string // image link, original casing preserved
	RowState
}

func (c *SpecialCoin) Key() Key {
	return Key{
		Country: strings.ToLower(c.Country),
		Year:    c.Year,
		Value:   TwoEuro.String(),
		Source:  strings.ToLower(c.Source),
		Special: true,
		Name:    c.Name,
	}
}

func (c *SpecialCoin) IsSpecial() bool { return true }

func (c *SpecialCoin) Label() string { return c.Key().String() }

func (c *SpecialCoin) clone() Coin {
	d := *c
	return &d
}
