package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
)

// MarketSort orders the marketplace listing.
type MarketSort string

const (
	MarketSortNewest    MarketSort = "newest"
	MarketSortOldest    MarketSort = "oldest"
	MarketSortPriceHigh MarketSort = "price_high"
	MarketSortPriceLow  MarketSort = "price_low"
)

// MarketFilter selects purchasable leads for one viewer. A nil PurchaseCounts
// admits every count still for sale; an empty non-nil slice admits none.
type MarketFilter struct {
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	Region         *string
	Niche          *string
	Sort           MarketSort
	PurchaseCounts []int
	Limit          int
	Offset         int
	ViewerID       uuid.UUID
}

// LeadSortField is a sortable column of the lead table.
type LeadSortField string

const (
	LeadSortCreatedAt     LeadSortField = "created_at"
	LeadSortPurchaseCount LeadSortField = "purchase_count"
	LeadSortOwnerReward   LeadSortField = "owner_reward"
	LeadSortPhone         LeadSortField = "phone"
)

// Valid reports whether f names a sortable column.
func (f LeadSortField) Valid() bool {
	switch f {
	case LeadSortCreatedAt, LeadSortPurchaseCount, LeadSortOwnerReward, LeadSortPhone:
		return true
	}
	return false
}

// LeadFilter selects leads regardless of market state, for owners and administrators.
type LeadFilter struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Status      *models.LeadStatus
	OwnerID     *uuid.UUID
	Region      *string
	Niche       *string
	Search      *string
	SortField   LeadSortField
	Descending  bool
	Limit       int
	Offset      int
}

// LeadRepository defines the interface for lead data access
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	FindByPhonesSince(ctx context.Context, phones []string, since time.Time) ([]models.ExistingPhone, error)
	LockPhones(ctx context.Context, phones []string) error
	ApplySale(ctx context.Context, lead *models.Lead) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LeadStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListMarket(ctx context.Context, filter MarketFilter) ([]models.MarketLead, int, error)
	List(ctx context.Context, filter LeadFilter) ([]models.Lead, int, error)
}

type leadRepository struct {
	db db.DBTX
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(database db.DBTX) LeadRepository {
	return &leadRepository{db: database}
}

const leadColumns = `l.id, l.phone, l.comment, l.region, l.niche, l.owner_id, l.batch_id,
	l.purchase_count, l.is_archived, l.status, l.owner_reward, l.created_at, l.updated_at`

func leadScanTargets(l *models.Lead, owner, batch *uuid.NullUUID) []any {
	return []any{
		&l.ID,
		&l.Phone,
		&l.Comment,
		&l.Region,
		&l.Niche,
		owner,
		batch,
		&l.PurchaseCount,
		&l.IsArchived,
		&l.Status,
		&l.OwnerReward,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}

func finishLead(l *models.Lead, owner, batch uuid.NullUUID) {
	if owner.Valid {
		l.OwnerID = &owner.UUID
	}
	if batch.Valid {
		l.BatchID = &batch.UUID
	}
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var l models.Lead
	var owner, batch uuid.NullUUID
	if err := row.Scan(leadScanTargets(&l, &owner, &batch)...); err != nil {
		return nil, err
	}
	finishLead(&l, owner, batch)
	return &l, nil
}

// Create inserts a new lead and fills in its generated id and timestamps
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (phone, comment, region, niche, owner_id, batch_id,
		                   purchase_count, is_archived, status, owner_reward)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		lead.Phone,
		lead.Comment,
		lead.Region,
		lead.Niche,
		lead.OwnerID,
		lead.BatchID,
		lead.PurchaseCount,
		lead.IsArchived,
		lead.Status,
		lead.OwnerReward,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// FindByID retrieves a lead by its UUID
func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	return r.findByID(ctx, id, false)
}

// FindByIDForUpdate retrieves a lead and locks its row until the transaction ends
func (r *leadRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	return r.findByID(ctx, id, true)
}

func (r *leadRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, id))
	if nf := notFound("lead", err); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find lead by id: %w", err)
	}
	return lead, nil
}

// FindByPhonesSince returns every lead for the given phones created at or after since
func (r *leadRepository) FindByPhonesSince(ctx context.Context, phones []string, since time.Time) ([]models.ExistingPhone, error) {
	if len(phones) == 0 {
		return nil, nil
	}

	query := `
		SELECT phone, purchase_count, is_archived, created_at
		FROM leads
		WHERE phone = ANY($1) AND created_at >= $2
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(phones), since)
	if err != nil {
		return nil, fmt.Errorf("failed to find leads by phone: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var existing []models.ExistingPhone
	for rows.Next() {
		var e models.ExistingPhone
		if err := rows.Scan(&e.Phone, &e.PurchaseCount, &e.IsArchived, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead phone: %w", err)
		}
		existing = append(existing, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lead phones: %w", err)
	}
	return existing, nil
}

// LockPhones takes a transaction-scoped advisory lock per phone, in sorted
// order, so concurrent uploads of the same phone run their freshness check one
// after another.
func (r *leadRepository) LockPhones(ctx context.Context, phones []string) error {
	sorted := slices.Clone(phones)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, p := range sorted {
		if _, err := r.db.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, p); err != nil {
			return fmt.Errorf("failed to lock phone: %w", err)
		}
	}
	return nil
}

// ApplySale persists the counters changed by models.Lead.RecordSale
func (r *leadRepository) ApplySale(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET purchase_count = $2,
		    is_archived = $3,
		    status = $4,
		    owner_reward = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		lead.ID, lead.PurchaseCount, lead.IsArchived, lead.Status, lead.OwnerReward,
	).Scan(&lead.UpdatedAt)
	if nf := notFound("lead", err); nf != nil {
		return nf
	}
	if err != nil {
		return fmt.Errorf("failed to apply sale to lead: %w", err)
	}
	return nil
}

// UpdateStatus overrides the status of a lead that is not archived
func (r *leadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LeadStatus) error {
	query := `
		UPDATE leads
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	return requireRowsAffected(result, "lead")
}

// Delete removes a lead. Purchases and lead ledger entries go with it.
func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return requireRowsAffected(result, "lead")
}

// ListMarket returns one page of leads the viewer can buy, with the seller
// joined in, plus the total number of matches.
func (r *leadRepository) ListMarket(ctx context.Context, filter MarketFilter) ([]models.MarketLead, int, error) {
	if filter.PurchaseCounts != nil && len(filter.PurchaseCounts) == 0 {
		return nil, 0, nil
	}

	var w whereBuilder
	w.add("l.status = ?", models.LeadStatusInMarket)
	w.add("NOT l.is_archived")
	w.add("l.purchase_count < ?", pricing.MaxPurchases)
	viewer := w.arg(filter.ViewerID)
	w.add("(l.owner_id IS NULL OR l.owner_id <> " + viewer + ")")
	w.add("NOT EXISTS (SELECT 1 FROM lead_purchases p WHERE p.lead_id = l.id AND p.buyer_id = " + viewer + ")")
	if filter.Region != nil {
		w.add("l.region = ?", *filter.Region)
	}
	if filter.Niche != nil {
		w.add("l.niche ILIKE ?", likePattern(*filter.Niche))
	}
	if filter.PurchaseCounts != nil {
		counts := make([]int64, len(filter.PurchaseCounts))
		for i, c := range filter.PurchaseCounts {
			counts[i] = int64(c)
		}
		w.add("l.purchase_count = ANY(?)", pq.Array(counts))
	}
	if filter.CreatedFrom != nil {
		w.add("l.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		w.add("l.created_at <= ?", *filter.CreatedTo)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM leads l ` + w.sql()
	if err := r.db.QueryRowContext(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count market leads: %w", err)
	}

	orderBy := "l.created_at DESC"
	switch filter.Sort {
	case MarketSortOldest:
		orderBy = "l.created_at ASC"
	case MarketSortPriceHigh:
		// price is non-increasing in purchase_count
		orderBy = "l.purchase_count ASC, l.created_at DESC"
	case MarketSortPriceLow:
		orderBy = "l.purchase_count DESC, l.created_at DESC"
	}

	limit := w.arg(filter.Limit)
	offset := w.arg(filter.Offset)
	query := `
		SELECT ` + leadColumns + `,
		       o.id, o.username, o.full_name, o.rating, o.total_sales
		FROM leads l
		LEFT JOIN accounts o ON o.id = l.owner_id
		` + w.sql() + `
		ORDER BY ` + orderBy + `, l.id
		LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list market leads: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var leads []models.MarketLead
	for rows.Next() {
		var ml models.MarketLead
		var owner, batch, sellerID uuid.NullUUID
		var sellerUsername, sellerFullName *string
		var sellerRating decimal.NullDecimal
		var sellerSales *int

		targets := append(leadScanTargets(&ml.Lead, &owner, &batch),
			&sellerID, &sellerUsername, &sellerFullName, &sellerRating, &sellerSales)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan market lead: %w", err)
		}
		finishLead(&ml.Lead, owner, batch)

		if sellerID.Valid {
			seller := &models.LeadSeller{
				ID:       sellerID.UUID,
				Username: sellerUsername,
				FullName: sellerFullName,
			}
			if sellerRating.Valid {
				seller.Rating = &sellerRating.Decimal
			}
			if sellerSales != nil {
				seller.TotalSales = *sellerSales
			}
			ml.Seller = seller
		}
		leads = append(leads, ml)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate market leads: %w", err)
	}
	return leads, total, nil
}

// List returns one page of leads matching filter plus the total number of matches
func (r *leadRepository) List(ctx context.Context, filter LeadFilter) ([]models.Lead, int, error) {
	var w whereBuilder
	if filter.Status != nil {
		w.add("l.status = ?", *filter.Status)
	}
	if filter.OwnerID != nil {
		w.add("l.owner_id = ?", *filter.OwnerID)
	}
	if filter.Region != nil {
		w.add("l.region = ?", *filter.Region)
	}
	if filter.Niche != nil {
		w.add("l.niche ILIKE ?", likePattern(*filter.Niche))
	}
	if filter.Search != nil {
		p := w.arg(likePattern(*filter.Search))
		w.add("(l.phone ILIKE " + p + " OR l.region ILIKE " + p + " OR l.niche ILIKE " + p + ")")
	}
	if filter.CreatedFrom != nil {
		w.add("l.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		w.add("l.created_at <= ?", *filter.CreatedTo)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM leads l ` + w.sql()
	if err := r.db.QueryRowContext(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	sortField := LeadSortCreatedAt
	if filter.SortField.Valid() {
		sortField = filter.SortField
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	limit := w.arg(filter.Limit)
	offset := w.arg(filter.Offset)
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		` + w.sql() + `
		ORDER BY l.` + string(sortField) + ` ` + direction + `, l.id
		LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var leads []models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, *lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leads: %w", err)
	}
	return leads, total, nil
}
