package coinledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotModified reports that the remote workbook has not changed since the
// last successful fetch.
var ErrNotModified = errors.New("workbook not modified")

// Fetcher downloads the collection workbook over HTTP. It remembers the
// entity tag of the last download and asks the server to skip unchanged
// content on the next one.
type Fetcher struct {
	URL    string
	Client *http.Client

	etag string
}

// Fetch downloads the workbook bytes. It returns ErrNotModified when the
// server confirms the content is unchanged.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %q: %w", f.URL, err)
	}
	if f.etag != "" {
		req.Header.Set("If-None-Match", f.etag)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %q: %w", f.URL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		return nil, ErrNotModified
	case http.StatusOK:
		// keep going
	default:
		return nil, fmt.Errorf("fetching %q: unexpected status %s", f.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", f.URL, err)
	}
	f.etag = resp.Header.Get("Etag")
	return body, nil
}
