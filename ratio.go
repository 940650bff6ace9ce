package coinledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ratio is a completion ratio in [0,1], kept exact for bucket comparisons.
type Ratio struct {
	value decimal.Decimal
}

// NewRatio returns num/den. A zero denominator yields a zero ratio.
func NewRatio(num, den int) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Ratio{value: decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den)))}
}

func (r Ratio) IsZero() bool         { return r.value.IsZero() }
func (r Ratio) Equal(s Ratio) bool   { return r.value.Equal(s.value) }
func (r Ratio) Sub(s Ratio) Ratio    { return Ratio{value: r.value.Sub(s.value)} }
func (r Ratio) Percent() Percent     { return Percent(r.value.Mul(decimal.NewFromInt(100)).InexactFloat64()) }
func (r Ratio) String() string       { return r.Percent().String() }

var ratioBuckets = []struct {
	threshold decimal.Decimal
	marker    string
}{
	{decimal.NewFromInt(1), "✅"},
	{decimal.NewFromFloat(0.75), "🟢"},
	{decimal.NewFromFloat(0.60), "🟡"},
	{decimal.NewFromFloat(0.45), "🟠"},
	{decimal.NewFromFloat(0.30), "🔴"},
	{decimal.NewFromFloat(0.15), "🟤"},
}

// Marker buckets the ratio into a colored emoji, from complete down to empty.
// Values outside [0,1] get a question mark, they signal an accounting bug.
func (r Ratio) Marker() string {
	one := decimal.NewFromInt(1)
	if r.value.IsNegative() || r.value.GreaterThan(one) {
		return "❔"
	}
	for _, b := range ratioBuckets {
		if r.value.GreaterThanOrEqual(b.threshold) {
			return b.marker
		}
	}
	if r.value.IsPositive() {
		return "⚫"
	}
	return "✖️"
}

// DeltaMarker renders the sign of a ratio difference.
func (r Ratio) DeltaMarker() string {
	switch {
	case r.value.IsPositive():
		return "🟢"
	case r.value.IsNegative():
		return "🔴"
	default:
		return "🟡"
	}
}

// Percent is a human readable percentage value.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders the percent with an explicit sign, "-" when zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
