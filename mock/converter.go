package mock

import "github.com/fwojciec/checklist"

var _ checklist.Converter = (*Converter)(nil)

// Converter is a mock implementation of checklist.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
