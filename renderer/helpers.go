package renderer

import (
	"fmt"

	"github.com/etnz/coinledger"
)

// StatusIcon renders the collection status of a single coin. A staged coin
// shows as pending, whatever its status.
func StatusIcon(c coinledger.Coin) string {
	s := c.State()
	if s.Staged {
		return "⏳"
	}
	switch s.Status {
	case coinledger.StatusCollected:
		return "✅"
	case coinledger.StatusMissing:
		return "❌"
	case coinledger.StatusUnavailable:
		return "⛔"
	default:
		return "❔"
	}
}

// ReadableMints renders a mint count (stored in thousands) for humans.
func ReadableMints(amount int64) string {
	if amount <= 0 {
		// Zero stands for placeholders, negative for unreadable cells.
		return "unknown"
	}
	coins := amount * 1000
	switch {
	case coins >= 1_000_000_000:
		return trimmed(float64(coins)/1_000_000_000) + " billion"
	case coins >= 1_000_000:
		return trimmed(float64(coins)/1_000_000) + " million"
	default:
		return trimmed(float64(coins)/1_000) + " thousand"
	}
}

func trimmed(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
