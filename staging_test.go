package coinledger

import (
	"errors"
	"testing"
)

func TestStage(t *testing.T) {
	l := testLedger()
	next, staged, err := l.Stage("bob", ByCountry("france"), ByYear(2001))
	if err != nil {
		t.Fatal(err)
	}

	s := staged.State()
	if !s.Staged || s.Collector != "bob" {
		t.Errorf("staged coin = %+v", s)
	}
	if s.Status != StatusMissing {
		t.Errorf("status = %v, want missing", s.Status)
	}

	// The receiver is unchanged, the new ledger carries the staging.
	key := staged.Key()
	if before := findOne(t, l, key).State(); before.Staged {
		t.Error("the source ledger was mutated")
	}
	if after := findOne(t, next, key).State(); !after.Staged {
		t.Error("the new ledger does not carry the staging")
	}
	if next.Len() != l.Len() {
		t.Errorf("new ledger has %d coins, want %d", next.Len(), l.Len())
	}
}

func TestStagePromotesUnavailable(t *testing.T) {
	l := testLedger()
	_, staged, err := l.Stage("bob", ByCountry("greece"), BySpecial(false))
	if err != nil {
		t.Fatal(err)
	}
	if staged.State().Status != StatusMissing {
		t.Errorf("status = %v, want the promotion to missing", staged.State().Status)
	}
}

func TestStageErrors(t *testing.T) {
	l := testLedger()

	t.Run("no match", func(t *testing.T) {
		_, _, err := l.Stage("bob", ByCountry("spain"))
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("err = %v, want ErrNoMatch", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, _, err := l.Stage("bob", ByCountry("france"))
		if !errors.Is(err, ErrAmbiguous) {
			t.Errorf("err = %v, want ErrAmbiguous", err)
		}
	})

	t.Run("already collected", func(t *testing.T) {
		_, _, err := l.Stage("bob", ByCountry("france"), ByYear(2000))
		if err == nil {
			t.Error("staging a collected coin should fail")
		}
	})

	t.Run("already staged", func(t *testing.T) {
		_, _, err := l.Stage("bob", ByCountry("germany"), BySource("j"))
		if err == nil {
			t.Error("staging a staged coin should fail")
		}
	})
}
