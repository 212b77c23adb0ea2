package card

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// UserAgent identifies the tool to the snapshot host.
	UserAgent = "meetup-soon/1.0 (github.com/pfrederiksen/meetup-soon)"
	// Timeout bounds a single fetch attempt.
	Timeout = 30 * time.Second
	// maxFetchRetries bounds the backoff loop for transient failures.
	maxFetchRetries = 3
)

// Fetcher retrieves a pre-rendered snapshot page over HTTP.
//
// It does not render JavaScript; the URL must serve already-rendered markup
// (for example the debug.html artifact the rendering collaborator publishes).
type Fetcher struct {
	client *http.Client
	url    string
}

// NewFetcher creates a Fetcher for the given snapshot URL.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// Fetch downloads the snapshot page and extracts its cards, retrying
// transient failures with exponential backoff.
func (f *Fetcher) Fetch() (*Snapshot, error) {
	var snap *Snapshot

	operation := func() error {
		req, err := http.NewRequest("GET", f.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		snap, err = ExtractHTML(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return snap, nil
}
