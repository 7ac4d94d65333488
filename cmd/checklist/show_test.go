package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/checklist"
	main "github.com/fwojciec/checklist/cmd/checklist"
	"github.com/fwojciec/checklist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	batch := &checklist.Batch{
		ID:            "batch-123",
		Source:        "2024 Bowman Chrome",
		Category:      checklist.CategoryParallel,
		ParallelTypes: []string{"Refractor", "Gold Refractor /50"},
		Cards: []checklist.Card{
			checklist.NewCard(checklist.CategoryParallel, "BCP-1", "Player One", "Team Name", "2024 Bowman Chrome"),
		},
	}
	batches := &mock.BatchService{
		FindBatchByIDFn: func(_ context.Context, id string) (*checklist.Batch, error) {
			if id == batch.ID {
				return batch, nil
			}
			return nil, checklist.Errorf(checklist.ENOTFOUND, "batch not found")
		},
	}

	t.Run("prints batch and cards", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Batches: batches}

		require.NoError(t, (&main.ShowCmd{ID: "batch-123"}).Run(deps))
		assert.Contains(t, stdout.String(), "Batch batch-123")
		assert.Contains(t, stdout.String(), "Parallels: Refractor, Gold Refractor /50")
		assert.Contains(t, stdout.String(), "BCP-1\tPlayer One\tTeam Name")
	})

	t.Run("prints batch as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Batches: batches}

		require.NoError(t, (&main.ShowCmd{ID: "batch-123", JSON: true}).Run(deps))

		var got checklist.Batch
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, batch.Cards, got.Cards)
		assert.Equal(t, batch.ParallelTypes, got.ParallelTypes)
	})

	t.Run("reports missing batch", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Batches: batches}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, checklist.ENOTFOUND, checklist.ErrorCode(err))
		assert.Contains(t, stderr.String(), "checklist batches")
	})
}
