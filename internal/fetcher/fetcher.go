// Package fetcher handles page retrieval. The crawl pipeline depends on
// the Fetcher interface so tests can substitute fakes.
package fetcher

import (
	"context"
	"time"
)

// Page is a fetched page.
type Page struct {
	URL        string
	HTML       string
	StatusCode int
	FetchedAt  time.Time
}

// Options controls a single fetch.
type Options struct {
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
}

// Fetcher retrieves pages. A non-2xx response or network failure is
// returned as an error; callers treat each failure in isolation.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts Options) (Page, error)
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "parkcrawl/1.0 (+https://github.com/parkcrawl/parkcrawl; ops@parkcrawl.dev)",
		Timeout:   30 * time.Second,
	}
}
