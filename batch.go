package checklist

import (
	"context"
	"time"
)

// Batch is the result of extracting one category from one page.
//
// An empty Cards slice is a valid outcome. When Diagnostic is set the engine
// could not extract safely and the caller should retry or fall back; it does
// not mean the product has no cards of that category.
type Batch struct {
	ID          string     `json:"id,omitempty"`
	Source      string     `json:"source"`
	Category    Category   `json:"category"`
	Format      BaseFormat `json:"format,omitempty"`
	Cards       []Card     `json:"cards"`
	Diagnostic  string     `json:"diagnostic,omitempty"`
	Description string     `json:"description,omitempty"`

	// ParallelTypes lists the parallel variants named on the page, such as
	// "Green Refractor /99". Only set for the parallel category.
	ParallelTypes []string `json:"parallelTypes,omitempty"`

	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Rejected reports whether the engine refused to return cards.
func (b *Batch) Rejected() bool {
	return len(b.Cards) == 0 && b.Diagnostic != ""
}

// Validate returns an error if the batch contains invalid fields.
func (b *Batch) Validate() error {
	if b.Source == "" {
		return Errorf(EINVALID, "batch source required")
	}
	if !b.Category.Valid() {
		return Errorf(EINVALID, "batch category %q invalid", b.Category)
	}
	return nil
}

// CardExtractor extracts card records of one category from page text.
type CardExtractor interface {
	// ExtractCards runs the extraction pipeline over text, which may be plain
	// text or HTML. The source identifier is copied into every card's
	// SetName. Returns EINVALID only for an unknown category; an unusable
	// page yields an empty batch with a diagnostic.
	ExtractCards(text string, category Category, source string) (*Batch, error)
}

// BatchService represents a service for persisting extraction batches.
type BatchService interface {
	// CreateBatch stores a batch and its cards. The page text is hashed
	// into ContentHash so repeated extractions of an unchanged page can be
	// recognised.
	CreateBatch(ctx context.Context, batch *Batch, pageText string) error

	// FindBatchByID retrieves a batch with its cards.
	// Returns ENOTFOUND if the batch does not exist.
	FindBatchByID(ctx context.Context, id string) (*Batch, error)

	// FindBatches retrieves batches matching the filter with their cards,
	// newest first.
	FindBatches(ctx context.Context, filter BatchFilter) ([]*Batch, error)

	// DeleteBatch permanently removes a batch and its cards.
	// Returns ENOTFOUND if the batch does not exist.
	DeleteBatch(ctx context.Context, id string) error
}

// BatchFilter represents a filter for FindBatches.
type BatchFilter struct {
	Source   *string   `json:"source"`
	Category *Category `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
