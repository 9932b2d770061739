package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// TransactionRepository is the append-only balance ledger
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.Transaction, int, error)
	SumByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
	DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error)
	List(ctx context.Context, filter TransactionFilter) ([]models.LedgerEntry, int, error)
	TotalsByType(ctx context.Context, filter TransactionFilter) ([]models.LedgerTotal, error)
}

// TransactionSortField is a sortable column of the ledger.
type TransactionSortField string

const (
	TransactionSortCreatedAt TransactionSortField = "created_at"
	TransactionSortAmount    TransactionSortField = "amount"
	TransactionSortType      TransactionSortField = "type"
)

// Valid reports whether f names a sortable column.
func (f TransactionSortField) Valid() bool {
	switch f {
	case TransactionSortCreatedAt, TransactionSortAmount, TransactionSortType:
		return true
	}
	return false
}

// TransactionFilter selects ledger entries across all accounts. TotalsByType
// ignores the ordering and paging fields.
type TransactionFilter struct {
	Type       *models.TransactionType
	AccountID  *uuid.UUID
	SortField  TransactionSortField
	Descending bool
	Limit      int
	Offset     int
}

func (f TransactionFilter) where() *whereBuilder {
	w := &whereBuilder{}
	if f.Type != nil {
		w.add("t.type = ?", *f.Type)
	}
	if f.AccountID != nil {
		w.add("t.account_id = ?", *f.AccountID)
	}
	return w
}

type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

// Create appends a ledger entry, assigning an id and timestamp when unset
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO transactions (id, account_id, amount, type, lead_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.AccountID,
		txn.Amount,
		txn.Type,
		txn.LeadID,
		txn.Description,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// ListByAccount returns an account's ledger newest first
func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.Transaction, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	query := `
		SELECT id, account_id, amount, type, lead_id, description, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var entries []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var leadID uuid.NullUUID
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.Type, &leadID, &t.Description, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		if leadID.Valid {
			t.LeadID = &leadID.UUID
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, total, nil
}

// SumByAccount totals an account's ledger. With the seed balance added it equals the balance.
func (r *transactionRepository) SumByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger: %w", err)
	}
	return sum, nil
}

// DeleteByLead removes the ledger entries that reference a lead. Administrative purge only.
func (r *transactionRepository) DeleteByLead(ctx context.Context, leadID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	return result.RowsAffected()
}

// List returns one page of the ledger joined with account and lead details,
// plus the total number of matching entries.
func (r *transactionRepository) List(ctx context.Context, filter TransactionFilter) ([]models.LedgerEntry, int, error) {
	w := filter.where()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions t `+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	sortField := TransactionSortCreatedAt
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
		SELECT t.id, t.account_id, t.amount, t.type, t.lead_id, t.description, t.created_at,
		       a.external_id, a.username, l.phone
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		LEFT JOIN leads l ON l.id = t.lead_id
		` + w.sql() + `
		ORDER BY t.` + string(sortField) + ` ` + direction + `, t.id
		LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var leadID uuid.NullUUID
		if err := rows.Scan(
			&e.ID, &e.AccountID, &e.Amount, &e.Type, &leadID, &e.Description, &e.CreatedAt,
			&e.AccountExternalID, &e.AccountUsername, &e.LeadPhone,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		if leadID.Valid {
			e.LeadID = &leadID.UUID
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, total, nil
}

// TotalsByType sums and counts the matching entries per type, ordered by type.
func (r *transactionRepository) TotalsByType(ctx context.Context, filter TransactionFilter) ([]models.LedgerTotal, error) {
	w := filter.where()
	query := `
		SELECT t.type, COALESCE(SUM(t.amount), 0), COUNT(*)
		FROM transactions t
		` + w.sql() + `
		GROUP BY t.type
		ORDER BY t.type
	`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to total ledger entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var totals []models.LedgerTotal
	for rows.Next() {
		var total models.LedgerTotal
		if err := rows.Scan(&total.Type, &total.Sum, &total.Count); err != nil {
			return nil, fmt.Errorf("failed to scan ledger total: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger totals: %w", err)
	}
	return totals, nil
}
