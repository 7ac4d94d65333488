// Package http provides an HTTP-based implementation of checklist.Fetcher
// for checklist pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/checklist"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultFetchTimeout is the default timeout for a single HTTP attempt.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Retry defaults. Card blogs sit behind shared hosting that returns the
// occasional 503, so a few spaced retries are worth the wait.
const (
	DefaultRetries      = 3
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 5 * time.Second
)

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (compatible; checklist/1.0)"

// Ensure Fetcher implements checklist.Fetcher at compile time.
var _ checklist.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests with retries
// and linear jittered backoff. Unlike rod.Fetcher, this does not execute
// JavaScript and is suitable for static pages only.
type Fetcher struct {
	client    *retryablehttp.Client
	limiter   checklist.DomainLimiter
	timeout   time.Duration
	retries   int
	waitMin   time.Duration
	waitMax   time.Duration
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP attempt.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets how many times a failed request is retried.
// Zero disables retries.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = n
	}
}

// WithRetryWait sets the backoff bounds between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(f *Fetcher) {
		f.waitMin = minWait
		f.waitMax = maxWait
	}
}

// WithRateLimit throttles requests per host using the given limiter.
func WithRateLimit(l checklist.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger receives retry attempts from the underlying client.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		retries:   DefaultRetries,
		waitMin:   DefaultRetryWaitMin,
		waitMax:   DefaultRetryWaitMax,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if f.logger != nil {
		client.Logger = f.logger
	}
	client.Backoff = retryablehttp.LinearJitterBackoff
	client.RetryMax = f.retries
	client.RetryWaitMin = f.waitMin
	client.RetryWaitMax = f.waitMax
	client.HTTPClient.Timeout = f.timeout
	f.client = client

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", checklist.Errorf(checklist.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.HTTPClient.CloseIdleConnections()
	return nil
}
