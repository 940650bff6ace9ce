package coinledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var snapshotHeader = []string{
	"kind", "country", "year", "value", "source",
	"name", "description", "link",
	"amount", "status", "staged", "collector", "created", "collected",
}

// EncodeSnapshot writes the ledger as delimited text, one coin per record.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snapshotHeader); err != nil {
		return fmt.Errorf("could not write snapshot header: %w", err)
	}
	for c := range l.Coins() {
		s := c.State()
		rec := make([]string, 0, len(snapshotHeader))
		switch coin := c.(type) {
		case *StandardCoin:
			rec = append(rec, "standard", coin.Country, strconv.Itoa(coin.Year), coin.Value.String(), coin.Source, "", "", "")
		case *SpecialCoin:
			rec = append(rec, "special", coin.Country, strconv.Itoa(coin.Year), "", coin.Source, coin.Name, coin.Description, coin.Link)
		default:
			return fmt.Errorf("cannot encode coin %s", c.Key())
		}
		rec = append(rec,
			strconv.FormatInt(s.Amount, 10),
			s.Status.String(),
			strconv.FormatBool(s.Staged),
			s.Collector,
			encodeDate(s.Created),
			encodeDate(s.Collected),
		)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("could not write snapshot record for %s: %w", c.Key(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSnapshot reads a ledger back from its delimited text form.
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot header: %w", err)
	}
	if len(header) != len(snapshotHeader) || header[0] != snapshotHeader[0] {
		return nil, fmt.Errorf("unexpected snapshot header %q", header)
	}

	l := NewLedger()
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return l, nil
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot line %d: %w", line, err)
		}
		c, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("snapshot line %d: %w", line, err)
		}
		l.Append(c)
	}
}

func decodeRecord(rec []string) (Coin, error) {
	year, err := strconv.Atoi(rec[2])
	if err != nil {
		return nil, fmt.Errorf("bad year %q", rec[2])
	}
	amount, err := strconv.ParseInt(rec[8], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q", rec[8])
	}
	status, err := ParseStatus(rec[9])
	if err != nil {
		return nil, err
	}
	staged, err := strconv.ParseBool(rec[10])
	if err != nil {
		return nil, fmt.Errorf("bad staged flag %q", rec[10])
	}
	created, err := decodeDate(rec[12])
	if err != nil {
		return nil, err
	}
	collected, err := decodeDate(rec[13])
	if err != nil {
		return nil, err
	}
	state := RowState{
		Amount:    amount,
		Status:    status,
		Staged:    staged,
		Collector: rec[11],
		Created:   created,
		Collected: collected,
	}

	switch rec[0] {
	case "standard":
		value, err := ParseDenomination(rec[3])
		if err != nil {
			return nil, err
		}
		return &StandardCoin{
			Country:  rec[1],
			Year:     year,
			Value:    value,
			Source:   rec[4],
			RowState: state,
		}, nil
	case "special":
		return &SpecialCoin{
			Name:        rec[5],
			Country:     rec[1],
			Year:        year,
			Source:      rec[4],
			Description: rec[6],
			Link:        rec[7],
			RowState:    state,
		}, nil
	default:
		return nil, fmt.Errorf("unknown coin kind %q", rec[0])
	}
}

// SaveSnapshot atomically replaces the snapshot file: the ledger is written
// to a temporary file in the same directory, then renamed over the target.
func SaveSnapshot(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace snapshot %q: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads the snapshot file. A missing file is not an error: it
// yields an empty ledger, so a first run bootstraps from the sheet alone.
func LoadSnapshot(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %q: %w", path, err)
	}
	defer f.Close()
	l, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", path, err)
	}
	return l, nil
}

func encodeDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func decodeDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	return ParseDate(s)
}
