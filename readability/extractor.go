package readability

import (
	"strings"

	"github.com/fwojciec/checklist"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements checklist.ContentExtractor at compile time.
var _ checklist.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to strip site chrome from checklist pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*checklist.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, checklist.Errorf(checklist.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &checklist.Content{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
