package coinledger

import (
	"sort"
	"strconv"
)

// Bucket accumulates coin counts for one slice of the collection. Staged
// coins stay in the missing count, the staged counter is a subset of it.
type Bucket struct {
	Collected   int
	Staged      int
	Missing     int
	Unavailable int
}

func (b *Bucket) add(c Coin) {
	switch c.State().Status {
	case StatusCollected:
		b.Collected++
	case StatusMissing:
		b.Missing++
		if c.State().Staged {
			b.Staged++
		}
	default:
		// Unknown counts as unavailable.
		b.Unavailable++
	}
}

// Countable is the denominator of completion: coins that can be collected.
func (b Bucket) Countable() int { return b.Collected + b.Missing }

// Ratio is the completion ratio of this slice.
func (b Bucket) Ratio() Ratio { return NewRatio(b.Collected, b.Countable()) }

// ProgressRatio counts staged coins as good as collected.
func (b Bucket) ProgressRatio() Ratio { return NewRatio(b.Collected+b.Staged, b.Countable()) }

// GroupBucket is a bucket with the label of its grouping key.
type GroupBucket struct {
	Label string
	Bucket
}

// Summary holds the completion state of the whole ledger, overall and
// grouped by country, year and denomination.
type Summary struct {
	On        Date
	Overall   Bucket
	Specials  Bucket
	Countries []GroupBucket
	Years     []GroupBucket
	Values    []GroupBucket
}

// NewSummary computes the summary of a ledger as of the given date. A zero
// date means now.
func NewSummary(l *Ledger, on Date) *Summary {
	if !on.IsZero() {
		l = l.AsOf(on)
	}
	s := &Summary{On: on}

	countries := make(map[string]*Bucket)
	years := make(map[int]*Bucket)
	values := make(map[string]*Bucket)
	for c := range l.Coins() {
		k := c.Key()
		s.Overall.add(c)
		if c.IsSpecial() {
			s.Specials.add(c)
		}
		bucketFor(countries, k.Country).add(c)
		bucketFor(years, k.Year).add(c)
		bucketFor(values, k.Value).add(c)
	}

	for _, name := range sortedKeys(countries) {
		s.Countries = append(s.Countries, GroupBucket{Label: name, Bucket: *countries[name]})
	}
	for _, year := range sortedKeys(years) {
		s.Years = append(s.Years, GroupBucket{Label: strconv.Itoa(year), Bucket: *years[year]})
	}
	// Denominations keep their minting order, not the alphabetical one.
	for _, d := range Denominations() {
		if b, ok := values[d.String()]; ok {
			s.Values = append(s.Values, GroupBucket{Label: d.String(), Bucket: *b})
		}
	}
	return s
}

func bucketFor[K comparable](m map[K]*Bucket, k K) *Bucket {
	b, ok := m[k]
	if !ok {
		b = &Bucket{}
		m[k] = b
	}
	return b
}

func sortedKeys[K int | string](m map[K]*Bucket) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DiffEntry is the completion change of one group between two summaries.
type DiffEntry struct {
	Label    string
	From, To Ratio
}

// Delta is the ratio change, positive when the collection grew.
func (e DiffEntry) Delta() Ratio { return e.To.Sub(e.From) }

// Diff compares two summaries group by group. Groups follow the recent
// summary: a group absent from the old one diffs against zero.
type Diff struct {
	From, To  Date
	Overall   DiffEntry
	Specials  DiffEntry
	Countries []DiffEntry
	Years     []DiffEntry
	Values    []DiffEntry
}

// NewDiff computes the completion change between two summaries.
func NewDiff(from, to *Summary) *Diff {
	d := &Diff{
		From:     from.On,
		To:       to.On,
		Overall:  DiffEntry{Label: "overall", From: from.Overall.Ratio(), To: to.Overall.Ratio()},
		Specials: DiffEntry{Label: "specials", From: from.Specials.Ratio(), To: to.Specials.Ratio()},
	}
	d.Countries = diffGroups(from.Countries, to.Countries)
	d.Years = diffGroups(from.Years, to.Years)
	d.Values = diffGroups(from.Values, to.Values)
	return d
}

func diffGroups(from, to []GroupBucket) []DiffEntry {
	old := make(map[string]Ratio, len(from))
	for _, g := range from {
		old[g.Label] = g.Ratio()
	}
	entries := make([]DiffEntry, 0, len(to))
	for _, g := range to {
		entries = append(entries, DiffEntry{Label: g.Label, From: old[g.Label], To: g.Ratio()})
	}
	return entries
}

// Gain is the completion impact of collecting one given coin: the ratio
// before and after a one-unit increment, overall and in the coin's country,
// year and value groups.
type Gain struct {
	Coin    Coin
	Overall DiffEntry
	Country DiffEntry
	Year    DiffEntry
	Value   DiffEntry
}

func gainEntry(label string, b Bucket) DiffEntry {
	return DiffEntry{
		Label: label,
		From:  b.Ratio(),
		To:    NewRatio(b.Collected+1, b.Countable()),
	}
}

// NewGain computes the completion impact of collecting the given coin.
func NewGain(l *Ledger, c Coin) *Gain {
	s := NewSummary(l, Date{})
	k := c.Key()
	g := &Gain{Coin: c, Overall: gainEntry("overall", s.Overall)}
	for _, grp := range s.Countries {
		if grp.Label == k.Country {
			g.Country = gainEntry(grp.Label, grp.Bucket)
		}
	}
	for _, grp := range s.Years {
		if grp.Label == strconv.Itoa(k.Year) {
			g.Year = gainEntry(grp.Label, grp.Bucket)
		}
	}
	for _, grp := range s.Values {
		if grp.Label == k.Value {
			g.Value = gainEntry(grp.Label, grp.Bucket)
		}
	}
	return g
}

// Delta lists the individual coins gained over a period: coins collected in
// the window, plus coins currently staged for collection.
type Delta struct {
	From, To  Date
	Collected []Coin
	Staged    []Coin
}

// NewDelta scans the ledger for coins collected after from and up to to,
// and for pending staged coins.
func NewDelta(l *Ledger, from, to Date) *Delta {
	d := &Delta{From: from, To: to}
	for c := range l.Coins(ByStatus(StatusCollected)) {
		if c.State().Collected.After(from) && !c.State().Collected.After(to) {
			d.Collected = append(d.Collected, c)
		}
	}
	for c := range l.Coins(ByStaged(true)) {
		d.Staged = append(d.Staged, c)
	}
	return d
}

// Empty reports whether the period brought nothing new.
func (d *Delta) Empty() bool { return len(d.Collected) == 0 && len(d.Staged) == 0 }
