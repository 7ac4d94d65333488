package mock

import (
	"context"

	"github.com/fwojciec/checklist"
)

var _ checklist.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of checklist.BatchService.
type BatchService struct {
	CreateBatchFn   func(ctx context.Context, batch *checklist.Batch, pageText string) error
	FindBatchByIDFn func(ctx context.Context, id string) (*checklist.Batch, error)
	FindBatchesFn   func(ctx context.Context, filter checklist.BatchFilter) ([]*checklist.Batch, error)
	DeleteBatchFn   func(ctx context.Context, id string) error
}

func (s *BatchService) CreateBatch(ctx context.Context, batch *checklist.Batch, pageText string) error {
	return s.CreateBatchFn(ctx, batch, pageText)
}

func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*checklist.Batch, error) {
	return s.FindBatchByIDFn(ctx, id)
}

func (s *BatchService) FindBatches(ctx context.Context, filter checklist.BatchFilter) ([]*checklist.Batch, error) {
	return s.FindBatchesFn(ctx, filter)
}

func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	return s.DeleteBatchFn(ctx, id)
}
