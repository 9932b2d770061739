package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// StatsRepository aggregates marketplace totals
type StatsRepository interface {
	Snapshot(ctx context.Context, now time.Time) (*models.MarketStats, error)
}

type statsRepository struct {
	db db.DBTX
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(database db.DBTX) StatsRepository {
	return &statsRepository{db: database}
}

// Snapshot counts entities overall and over the day and week before now
func (r *statsRepository) Snapshot(ctx context.Context, now time.Time) (*models.MarketStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM accounts),
			(SELECT COALESCE(SUM(balance), 0) FROM accounts),
			(SELECT COUNT(*) FROM accounts WHERE created_at >= $2),
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM leads WHERE status = 'in_market'),
			(SELECT COUNT(*) FROM leads WHERE is_archived),
			(SELECT COUNT(*) FROM leads WHERE created_at >= $1),
			(SELECT COUNT(*) FROM leads WHERE created_at >= $2),
			(SELECT COUNT(*) FROM lead_purchases),
			(SELECT COUNT(*) FROM lead_purchases WHERE created_at >= $1),
			(SELECT COUNT(*) FROM lead_purchases WHERE created_at >= $2),
			(SELECT COUNT(*) FROM transactions)
	`

	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var s models.MarketStats
	err := r.db.QueryRowContext(ctx, query, dayAgo, weekAgo).Scan(
		&s.Accounts,
		&s.BalanceTotal,
		&s.NewAccountsWeek,
		&s.Leads,
		&s.LeadsInMarket,
		&s.LeadsArchived,
		&s.LeadsLastDay,
		&s.LeadsLastWeek,
		&s.Purchases,
		&s.PurchasesDay,
		&s.PurchasesWeek,
		&s.LedgerEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return &s, nil
}
