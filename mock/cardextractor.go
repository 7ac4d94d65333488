package mock

import "github.com/fwojciec/checklist"

var _ checklist.CardExtractor = (*CardExtractor)(nil)

// CardExtractor is a mock implementation of checklist.CardExtractor.
type CardExtractor struct {
	ExtractCardsFn func(text string, category checklist.Category, source string) (*checklist.Batch, error)
}

func (e *CardExtractor) ExtractCards(text string, category checklist.Category, source string) (*checklist.Batch, error) {
	return e.ExtractCardsFn(text, category, source)
}
