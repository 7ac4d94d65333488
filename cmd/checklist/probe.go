package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/checklist"
)

// Ensure ProbeFetcher implements checklist.Fetcher at compile time.
var _ checklist.Fetcher = (*ProbeFetcher)(nil)

// ProbeFetcher fetches a page over HTTP and again in a browser, keeping the
// rendered page only when scripts added meaningful content. Checklist sites
// often build their card tables client-side.
//
// Decision flow:
//   - HTTP fetch fails → use the browser page
//   - Browser fails to start or fetch → use the HTTP page
//   - Rendered text more than 50% longer → use the browser page
//   - Otherwise → use the HTTP page
type ProbeFetcher struct {
	HTTP       checklist.Fetcher
	NewBrowser func() (checklist.Fetcher, error)
	Converter  checklist.Converter
	Logger     *slog.Logger

	browser checklist.Fetcher
}

// Fetch retrieves the page at url with whichever fetcher yields more text.
func (f *ProbeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	httpHTML, httpErr := f.HTTP.Fetch(ctx, url)

	browser, err := f.browserFetcher()
	if err != nil {
		if httpErr != nil {
			return "", errors.Join(httpErr, err)
		}
		f.Logger.Warn("browser unavailable, using http page", "url", url, "err", err)
		return httpHTML, nil
	}

	rodHTML, rodErr := browser.Fetch(ctx, url)
	switch {
	case httpErr != nil:
		return rodHTML, rodErr
	case rodErr != nil:
		f.Logger.Warn("browser fetch failed, using http page", "url", url, "err", rodErr)
		return httpHTML, nil
	}

	if ContentDiffers(httpHTML, rodHTML, f.Converter) {
		f.Logger.Info("probe chose browser page", "url", url)
		return rodHTML, nil
	}
	f.Logger.Info("probe chose http page", "url", url)
	return httpHTML, nil
}

// Close releases both fetchers.
func (f *ProbeFetcher) Close() error {
	err := f.HTTP.Close()
	if f.browser != nil {
		err = errors.Join(err, f.browser.Close())
	}
	return err
}

// browserFetcher starts the browser on first use.
func (f *ProbeFetcher) browserFetcher() (checklist.Fetcher, error) {
	if f.browser != nil {
		return f.browser, nil
	}
	browser, err := f.NewBrowser()
	if err != nil {
		return nil, err
	}
	f.browser = browser
	return browser, nil
}

// ContentDiffers compares the text converted from HTTP-fetched HTML with
// the text converted from browser-rendered HTML. Returns true if the
// rendered text is more than 50% longer, or if either conversion fails.
func ContentDiffers(httpHTML, rodHTML string, converter checklist.Converter) bool {
	httpText, err := converter.Convert(httpHTML)
	if err != nil {
		return true
	}
	rodText, err := converter.Convert(rodHTML)
	if err != nil {
		return true
	}

	httpLen := len(httpText)
	rodLen := len(rodText)
	if httpLen == 0 && rodLen > 0 {
		return true
	}
	return float64(rodLen) > float64(httpLen)*1.5
}
