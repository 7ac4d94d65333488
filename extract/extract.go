// Package extract implements the checklist extraction engine. It turns the
// text of a checklist page into sorted, validated card records for one
// category: lines are normalized, category sections located, the base
// number format detected, cards matched per category strategy, validated,
// deduplicated, sorted and finally accepted or rejected as a whole.
//
// The engine is synchronous and keeps no state between calls.
package extract

import (
	"io"
	"log/slog"
	"regexp"

	"github.com/fwojciec/checklist"
)

// Ensure Engine implements checklist.CardExtractor at compile time.
var _ checklist.CardExtractor = (*Engine)(nil)

// Engine extracts card records from checklist pages.
// Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	policy    checklist.Policy
	converter checklist.Converter
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the safeguard ceilings.
// Defaults to checklist.DefaultPolicy().
func WithPolicy(p checklist.Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithConverter sets the converter used when the input is HTML.
// Without one, HTML input is processed as plain text.
func WithConverter(c checklist.Converter) Option {
	return func(e *Engine) {
		e.converter = c
	}
}

// WithLogger sets the logger receiving stage events. Per-stage counts and
// rejection reasons are logged at debug level, batch rejections at warn.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy: checklist.DefaultPolicy(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var htmlRe = regexp.MustCompile(`(?i)<(?:!doctype|html|body|div|p|h[1-6]|table|ul|ol|section|article)[\s>]`)

// ExtractCards runs the pipeline for one category.
func (e *Engine) ExtractCards(text string, category checklist.Category, source string) (*checklist.Batch, error) {
	if !category.Valid() {
		return nil, checklist.Errorf(checklist.EINVALID, "unknown category %q", category)
	}

	batch := &checklist.Batch{
		Source:   source,
		Category: category,
		Cards:    []checklist.Card{},
	}

	lines := SplitLines(e.toText(text))
	if len(lines) == 0 {
		batch.Diagnostic = "page has no text"
		e.logger.Warn("batch rejected", "category", category, "diagnostic", batch.Diagnostic)
		return batch, nil
	}

	sections := LocateSections(lines)
	for _, s := range sections {
		e.logger.Debug("section located",
			"category", s.Category,
			"heading", s.Heading,
			"start", s.Start,
			"end", s.End,
		)
	}

	run := &run{engine: e, lines: lines, sections: sections, source: source}
	batch.Description = describe(lines, sections)

	switch category {
	case checklist.CategoryBase:
		run.base(batch)
	case checklist.CategoryInsert:
		run.insert(batch)
	case checklist.CategoryAutograph:
		run.autograph(batch)
	case checklist.CategoryParallel:
		run.parallel(batch)
	}

	if batch.Diagnostic != "" && len(batch.Cards) == 0 {
		e.logger.Warn("batch rejected", "category", category, "diagnostic", batch.Diagnostic)
	} else {
		e.logger.Debug("batch accepted", "category", category, "count", len(batch.Cards))
	}
	return batch, nil
}

// toText converts HTML input when a converter is configured. Conversion
// failures fall back to the raw input.
func (e *Engine) toText(text string) string {
	if e.converter == nil || !htmlRe.MatchString(text) {
		return text
	}
	converted, err := e.converter.Convert(text)
	if err != nil {
		e.logger.Warn("html conversion failed", "err", err)
		return text
	}
	return converted
}
