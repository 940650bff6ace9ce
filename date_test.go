package coinledger

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-08-01", want: NewDate(2024, time.August, 1)},
		{in: "2024-8-1", want: NewDate(2024, time.August, 1)},
		{in: "1.8.2024", want: NewDate(2024, time.August, 1)},
		{in: "01.08.2024", want: NewDate(2024, time.August, 1)},
		{in: "today", want: Today()},
		{in: " Today ", want: Today()},
		{in: "not a date", wantErr: true},
		{in: "2024/08/01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateAdd(t *testing.T) {
	d := MustParse("2024-12-30")
	if got := d.Add(3); got != MustParse("2025-01-02") {
		t.Errorf("Add(3) = %v, want 2025-01-02", got)
	}
	if got := d.Add(-30); got != MustParse("2024-11-30") {
		t.Errorf("Add(-30) = %v, want 2024-11-30", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParse("2024-01-01")
	b := MustParse("2024-01-02")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is wrong for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is wrong for %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a day is neither before nor after itself")
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParse("2024-08-01")
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2024-08-01"` {
		t.Errorf("MarshalJSON = %s, want \"2024-08-01\"", raw)
	}
	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	var zero Date
	raw, err = zero.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `""` {
		t.Errorf("zero MarshalJSON = %s, want \"\"", raw)
	}
}
