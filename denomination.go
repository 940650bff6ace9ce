package coinledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Denomination is the face value of a regular euro coin.
//
// Only the eight values actually minted exist; the zero value means
// "no denomination" and is used by special coins before their fixed
// face value is applied.
type Denomination struct {
	cents int64 // face value in euro cents
}

// The eight regular coin values, in ascending face value order.
var denominations = []Denomination{
	{1}, {2}, {5}, {10}, {20}, {50}, {100}, {200},
}

// Denominations returns the regular coin values in ascending order.
func Denominations() []Denomination {
	out := make([]Denomination, len(denominations))
	copy(out, denominations)
	return out
}

// TwoEuro is the face value of every commemorative coin.
var TwoEuro = Denomination{200}

// Cents returns the face value in euro cents.
func (d Denomination) Cents() int64 { return d.cents }

// IsZero returns true for the zero denomination.
func (d Denomination) IsZero() bool { return d.cents == 0 }

// String returns the canonical lower-case form, e.g. "20 cent" or "2 euro".
func (d Denomination) String() string {
	if d.cents >= 100 {
		return fmt.Sprintf("%d euro", d.cents/100)
	}
	return fmt.Sprintf("%d cent", d.cents)
}

// Money returns the face value as money, for display formatting.
func (d Denomination) Money() *money.Money { return money.New(d.cents, money.EUR) }

// Display returns the face value formatted as an amount, e.g. "€0.20".
func (d Denomination) Display() string { return d.Money().Display() }

// MarshalJSON encodes the denomination in its canonical string form.
func (d Denomination) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a denomination from any accepted string form.
func (d *Denomination) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDenomination(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDenomination parses a coin value like "20 cent", "2 euro" or "2€".
// Only the eight minted values are accepted.
func ParseDenomination(s string) (Denomination, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "€", " euro")
	v = strings.ReplaceAll(v, "cents", "cent")
	v = strings.ReplaceAll(v, "euros", "euro")
	v = strings.Join(strings.Fields(v), " ")

	var n int64
	var unit string
	if _, err := fmt.Sscanf(v, "%d %s", &n, &unit); err != nil {
		return Denomination{}, fmt.Errorf("invalid coin value %q", s)
	}
	cents := n
	if unit == "euro" {
		cents = n * 100
	} else if unit != "cent" {
		return Denomination{}, fmt.Errorf("invalid coin value %q", s)
	}
	for _, d := range denominations {
		if d.cents == cents {
			return d, nil
		}
	}
	return Denomination{}, fmt.Errorf("no such coin value %q", s)
}
