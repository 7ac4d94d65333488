package checklist

import "context"

// Fetcher retrieves the raw page for a checklist URL.
// Implementations own retry, backoff and timeout policy; the extraction
// engine never fetches.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles requests so that a single host is not hammered.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
