package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/checklist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ checklist.BatchService = (*BatchService)(nil)

// BatchService implements checklist.BatchService using SQLite.
type BatchService struct {
	db *DB
}

// NewBatchService creates a new BatchService.
func NewBatchService(db *DB) *BatchService {
	return &BatchService{db: db}
}

// parallelTypesSep joins parallel type names in a single column. Type
// names come from single page lines so they never contain a newline.
const parallelTypesSep = "\n"

// CreateBatch stores the batch and its cards in one transaction.
func (s *BatchService) CreateBatch(ctx context.Context, batch *checklist.Batch, pageText string) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	batch.ID = uuid.New().String()
	batch.CreatedAt = time.Now().UTC()
	batch.ContentHash = hashContent(pageText)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batches (id, source, category, format, diagnostic, description, parallel_types, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, batch.ID, batch.Source, string(batch.Category), string(batch.Format), batch.Diagnostic,
		batch.Description, strings.Join(batch.ParallelTypes, parallelTypesSep), batch.ContentHash,
		formatTime(batch.CreatedAt))
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (batch_id, position, number, name, team, category, insert_name, rarity, set_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, card := range batch.Cards {
		if _, err := stmt.ExecContext(ctx, batch.ID, i, card.Number, card.Name, card.Team,
			string(card.Category), card.InsertName, card.Rarity, card.SetName); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindBatchByID retrieves a batch and its cards.
func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*checklist.Batch, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, category, format, diagnostic, description, parallel_types, content_hash, created_at
		FROM batches
		WHERE id = ?
	`, id)

	batch, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, checklist.Errorf(checklist.ENOTFOUND, "batch not found")
	}
	if err != nil {
		return nil, err
	}

	if batch.Cards, err = s.findCards(ctx, batch.ID); err != nil {
		return nil, err
	}
	return batch, nil
}

// FindBatches retrieves batches matching the filter, newest first.
func (s *BatchService) FindBatches(ctx context.Context, filter checklist.BatchFilter) ([]*checklist.Batch, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, category, format, diagnostic, description, parallel_types, content_hash, created_at FROM batches WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	var batches []*checklist.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The connection pool holds a single connection, so the batch rows
	// must be released before the card queries run.
	rows.Close()

	for _, batch := range batches {
		if batch.Cards, err = s.findCards(ctx, batch.ID); err != nil {
			return nil, err
		}
	}

	return batches, nil
}

// DeleteBatch removes a batch. Its cards go with it via ON DELETE CASCADE.
func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return checklist.Errorf(checklist.ENOTFOUND, "batch not found")
	}
	return nil
}

func (s *BatchService) findCards(ctx context.Context, batchID string) ([]checklist.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, name, team, category, insert_name, rarity, set_name
		FROM cards
		WHERE batch_id = ?
		ORDER BY position ASC
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []checklist.Card{}
	for rows.Next() {
		var card checklist.Card
		var category string
		if err := rows.Scan(&card.Number, &card.Name, &card.Team, &category,
			&card.InsertName, &card.Rarity, &card.SetName); err != nil {
			return nil, err
		}
		card.Category = checklist.Category(category)
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(row scanner) (*checklist.Batch, error) {
	var batch checklist.Batch
	var category, format, parallelTypes, createdAt string

	if err := row.Scan(&batch.ID, &batch.Source, &category, &format, &batch.Diagnostic,
		&batch.Description, &parallelTypes, &batch.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	batch.Category = checklist.Category(category)
	batch.Format = checklist.BaseFormat(format)
	if parallelTypes != "" {
		batch.ParallelTypes = strings.Split(parallelTypes, parallelTypesSep)
	}

	var err error
	if batch.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &batch, nil
}
