package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// PurchaseRepository defines the interface for purchase record access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	Exists(ctx context.Context, leadID, buyerID uuid.UUID) (bool, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]models.PurchasedLead, int, error)
	DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error)
}

type purchaseRepository struct {
	db db.DBTX
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(database db.DBTX) PurchaseRepository {
	return &purchaseRepository{db: database}
}

// Create records a purchase. A second purchase of the same lead by the same
// buyer, or a reused purchase number, fails with models.ErrDuplicatePurchase.
func (r *purchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO lead_purchases (id, lead_id, buyer_id, price, purchase_num, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		purchase.ID,
		purchase.LeadID,
		purchase.BuyerID,
		purchase.Price,
		purchase.PurchaseNum,
		purchase.CreatedAt,
	)
	if isPgError(err, pgUniqueViolation) {
		return fmt.Errorf("lead %s buyer %s: %w", purchase.LeadID, purchase.BuyerID, models.ErrDuplicatePurchase)
	}
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// Exists reports whether buyerID already bought leadID
func (r *purchaseRepository) Exists(ctx context.Context, leadID, buyerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM lead_purchases WHERE lead_id = $1 AND buyer_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, leadID, buyerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return exists, nil
}

// ListByBuyer returns the buyer's purchases newest first, each joined with its lead
func (r *purchaseRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]models.PurchasedLead, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lead_purchases WHERE buyer_id = $1`, buyerID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	query := `
		SELECT p.id, p.lead_id, p.buyer_id, p.price, p.purchase_num, p.created_at,
		       ` + leadColumns + `
		FROM lead_purchases p
		JOIN leads l ON l.id = p.lead_id
		WHERE p.buyer_id = $1
		ORDER BY p.created_at DESC, p.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, buyerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var purchases []models.PurchasedLead
	for rows.Next() {
		var pl models.PurchasedLead
		var owner, batch uuid.NullUUID
		targets := append([]any{
			&pl.Purchase.ID,
			&pl.Purchase.LeadID,
			&pl.Purchase.BuyerID,
			&pl.Purchase.Price,
			&pl.Purchase.PurchaseNum,
			&pl.Purchase.CreatedAt,
		}, leadScanTargets(&pl.Lead, &owner, &batch)...)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase: %w", err)
		}
		finishLead(&pl.Lead, owner, batch)
		purchases = append(purchases, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	return purchases, total, nil
}

// DeleteByLead removes every purchase of a lead. Administrative purge only.
func (r *purchaseRepository) DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lead_purchases WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchases: %w", err)
	}
	return result.RowsAffected()
}
