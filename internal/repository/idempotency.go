package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// IdempotencyRepository stores replayable responses of mutating requests
type IdempotencyRepository interface {
	Get(ctx context.Context, key, scope, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type idempotencyRepository struct {
	db db.DBTX
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(database db.DBTX) IdempotencyRepository {
	return &idempotencyRepository{db: database}
}

// Get returns the stored response, or nil when the key was never used
func (r *idempotencyRepository) Get(ctx context.Context, key, scope, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, scope, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND scope = $2 AND request_path = $3
	`

	var k models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, key, scope, requestPath).Scan(
		&k.Key,
		&k.Scope,
		&k.RequestPath,
		&k.ResponseStatus,
		&k.ResponseBody,
		&k.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}
	return &k, nil
}

// Store saves a response. The first stored response for a key wins.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	if idemKey.CreatedAt.IsZero() {
		idemKey.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO idempotency_keys (key, scope, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key, scope, request_path) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.Scope,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		idemKey.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

// DeleteOlderThan purges keys created before cutoff and returns how many were removed
func (r *idempotencyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM idempotency_keys WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete idempotency keys: %w", err)
	}
	return result.RowsAffected()
}
