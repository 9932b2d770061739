package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// UploadBatchRepository stores upload submissions
type UploadBatchRepository interface {
	Create(ctx context.Context, batch *models.UploadBatch) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.UploadBatch, error)
}

type uploadBatchRepository struct {
	db db.DBTX
}

// NewUploadBatchRepository creates a new UploadBatchRepository
func NewUploadBatchRepository(database db.DBTX) UploadBatchRepository {
	return &uploadBatchRepository{db: database}
}

// Create inserts the batch and fills in its generated id and timestamp
func (r *uploadBatchRepository) Create(ctx context.Context, batch *models.UploadBatch) error {
	query := `
		INSERT INTO upload_batches (uploader_id, niche, region, description, raw_text,
		                            total_uploaded, total_valid, points_credited, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		batch.UploaderID,
		batch.Niche,
		batch.Region,
		batch.Description,
		batch.RawText,
		batch.TotalUploaded,
		batch.TotalValid,
		batch.PointsCredited,
		batch.Status,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create upload batch: %w", err)
	}
	return nil
}

// FindByID retrieves an upload batch by its UUID
func (r *uploadBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.UploadBatch, error) {
	query := `
		SELECT id, uploader_id, niche, region, description, raw_text,
		       total_uploaded, total_valid, points_credited, status, created_at
		FROM upload_batches
		WHERE id = $1
	`

	var b models.UploadBatch
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.UploaderID,
		&b.Niche,
		&b.Region,
		&b.Description,
		&b.RawText,
		&b.TotalUploaded,
		&b.TotalValid,
		&b.PointsCredited,
		&b.Status,
		&b.CreatedAt,
	)
	if nf := notFound("upload batch", err); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find upload batch: %w", err)
	}
	return &b, nil
}
