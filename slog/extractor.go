package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/checklist"
)

// Ensure LoggingCardExtractor implements checklist.CardExtractor.
var _ checklist.CardExtractor = (*LoggingCardExtractor)(nil)

// LoggingCardExtractor wraps a CardExtractor and logs one summary line per
// batch. Rejected batches are logged at warn level with their diagnostic.
type LoggingCardExtractor struct {
	next   checklist.CardExtractor
	logger *slog.Logger
}

// NewLoggingCardExtractor creates a new LoggingCardExtractor.
func NewLoggingCardExtractor(next checklist.CardExtractor, logger *slog.Logger) *LoggingCardExtractor {
	return &LoggingCardExtractor{next: next, logger: logger}
}

// ExtractCards delegates to the wrapped extractor and logs the outcome.
func (e *LoggingCardExtractor) ExtractCards(text string, category checklist.Category, source string) (*checklist.Batch, error) {
	begin := time.Now()
	batch, err := e.next.ExtractCards(text, category, source)
	duration := time.Since(begin)

	if err != nil {
		e.logger.Error("extract",
			"source", source,
			"category", category,
			"duration", duration,
			"err", err,
		)
		return nil, err
	}

	attrs := []any{
		"source", source,
		"category", category,
		"count", len(batch.Cards),
		"duration", duration,
	}
	if batch.Format != checklist.FormatUnknown {
		attrs = append(attrs, "format", batch.Format)
	}
	if batch.Rejected() {
		e.logger.Warn("extract", append(attrs, "diagnostic", batch.Diagnostic)...)
	} else {
		e.logger.Info("extract", attrs...)
	}
	return batch, nil
}
