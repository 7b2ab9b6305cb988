package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/common"
	"github.com/posterscan/posterscan/internal/entity"
)

// ExtractionRepository stores and retrieves completed extractions.
type ExtractionRepository interface {
	Save(ctx context.Context, ex *entity.Extraction) error
	GetByID(ctx context.Context, id string) (*entity.Extraction, error)
	List(ctx context.Context, limit int) ([]entity.Extraction, error)
}

type extractionRepository struct {
	db *sql.DB
}

func NewExtractionRepository(db *sql.DB) ExtractionRepository {
	return &extractionRepository{db: db}
}

func (r *extractionRepository) Save(ctx context.Context, ex *entity.Extraction) error {
	recordJSON, err := json.Marshal(ex.Record)
	if err != nil {
		return fmt.Errorf("%w: marshal record for %s: %w", common.ErrInternal, ex.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source_path, text, record_json, confidence, status, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ex.ID, ex.SourcePath, ex.Text, string(recordJSON), ex.Confidence, string(ex.Status), ex.ErrorMessage, ex.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert extraction %s: %w", common.ErrDatabase, ex.ID, err)
	}
	return nil
}

func (r *extractionRepository) GetByID(ctx context.Context, id string) (*entity.Extraction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source_path, text, record_json, confidence, status, error_message, created_at
		FROM extractions WHERE id = ?`, id)

	ex, err := scanExtraction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: extraction %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get extraction %s: %w", common.ErrDatabase, id, err)
	}
	return ex, nil
}

func (r *extractionRepository) List(ctx context.Context, limit int) ([]entity.Extraction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_path, text, record_json, confidence, status, error_message, created_at
		FROM extractions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list extractions: %w", common.ErrDatabase, err)
	}
	defer rows.Close()

	var out []entity.Extraction
	for rows.Next() {
		ex, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scan extraction row: %w", common.ErrDatabase, err)
		}
		out = append(out, *ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate extractions: %w", common.ErrDatabase, err)
	}
	return out, nil
}

func scanExtraction(scan func(dest ...any) error) (*entity.Extraction, error) {
	var ex entity.Extraction
	var recordJSON, status string
	if err := scan(&ex.ID, &ex.SourcePath, &ex.Text, &recordJSON, &ex.Confidence, &status, &ex.ErrorMessage, &ex.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(recordJSON), &ex.Record); err != nil {
		return nil, fmt.Errorf("decode record json: %w", err)
	}
	ex.Status = constants.ExtractionStatus(status)
	return &ex, nil
}
