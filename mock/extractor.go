package mock

import "github.com/fwojciec/checklist"

var _ checklist.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of checklist.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*checklist.Content, error)
}

func (e *ContentExtractor) Extract(html string) (*checklist.Content, error) {
	return e.ExtractFn(html)
}
