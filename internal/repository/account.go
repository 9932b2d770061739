// Package repository provides data access for accounts, leads, purchases and the ledger.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	ResolveOrCreate(ctx context.Context, identity models.Identity, seedBalance decimal.Decimal) (*models.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByExternalID(ctx context.Context, externalID string) (*models.Account, error)
	LockForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	IncrementSales(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter AccountFilter) ([]models.AccountSummary, int, error)
}

// AccountSortField is a sortable column of the account table.
type AccountSortField string

const (
	AccountSortCreatedAt  AccountSortField = "created_at"
	AccountSortBalance    AccountSortField = "balance"
	AccountSortTotalSales AccountSortField = "total_sales"
	AccountSortUsername   AccountSortField = "username"
)

// Valid reports whether f names a sortable column.
func (f AccountSortField) Valid() bool {
	switch f {
	case AccountSortCreatedAt, AccountSortBalance, AccountSortTotalSales, AccountSortUsername:
		return true
	}
	return false
}

// AccountFilter selects and orders the administrative account list.
// Search matches username, full name or external id.
type AccountFilter struct {
	Search     *string
	SortField  AccountSortField
	Descending bool
	Limit      int
	Offset     int
}

type accountRepository struct {
	db db.DBTX
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database db.DBTX) AccountRepository {
	return &accountRepository{db: database}
}

const accountColumns = `id, external_id, username, full_name, balance, total_sales, rating, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// withExtra scans columns selected after accountColumns into extra.
type withExtra struct {
	row   rowScanner
	extra []any
}

func (s withExtra) Scan(dest ...any) error {
	return s.row.Scan(append(dest, s.extra...)...)
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var a models.Account
	var rating decimal.NullDecimal
	if err := row.Scan(
		&a.ID,
		&a.ExternalID,
		&a.Username,
		&a.FullName,
		&a.Balance,
		&a.TotalSales,
		&rating,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if rating.Valid {
		a.Rating = &rating.Decimal
	}
	return &a, nil
}

// ResolveOrCreate returns the account for identity.ExternalID, creating it with
// seedBalance on first sight. Non-empty display fields overwrite stored ones.
func (r *accountRepository) ResolveOrCreate(ctx context.Context, identity models.Identity, seedBalance decimal.Decimal) (*models.Account, error) {
	query := `
		INSERT INTO accounts (external_id, username, full_name, balance)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
		ON CONFLICT (external_id) DO UPDATE
		SET username = COALESCE(EXCLUDED.username, accounts.username),
		    full_name = COALESCE(EXCLUDED.full_name, accounts.full_name),
		    updated_at = CASE
		        WHEN EXCLUDED.username IS DISTINCT FROM accounts.username
		          OR EXCLUDED.full_name IS DISTINCT FROM accounts.full_name
		        THEN NOW() ELSE accounts.updated_at END
		RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRowContext(ctx, query,
		identity.ExternalID, identity.Username, identity.FullName, seedBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	return account, nil
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if nf := notFound("account", err); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}
	return account, nil
}

// FindByExternalID retrieves an account by the identity provider's id
func (r *accountRepository) FindByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE external_id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, externalID))
	if nf := notFound("account", err); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by external id: %w", err)
	}
	return account, nil
}

// LockForUpdate row-locks the given accounts in id order, so two transactions
// locking overlapping sets cannot deadlock. Missing ids are absent from the result.
func (r *accountRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	locked := make(map[uuid.UUID]*models.Account, len(ids))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		locked[account.ID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return locked, nil
}

// AdjustBalance adds delta (possibly negative) to the balance and returns the
// new balance. A result below zero fails with models.ErrNegativeBalance.
func (r *accountRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING balance
	`

	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&balance)
	if nf := notFound("account", err); nf != nil {
		return decimal.Zero, nf
	}
	if isPgError(err, pgCheckViolation) {
		return decimal.Zero, fmt.Errorf("adjust balance of %s by %s: %w", id, delta, models.ErrNegativeBalance)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to adjust account balance: %w", err)
	}
	return balance, nil
}

// IncrementSales bumps the seller's total sales counter
func (r *accountRepository) IncrementSales(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET total_sales = total_sales + 1,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment total sales: %w", err)
	}
	return requireRowsAffected(result, "account")
}

// List returns one page of accounts with their upload, purchase and ledger
// counts, plus the total number of matches.
func (r *accountRepository) List(ctx context.Context, filter AccountFilter) ([]models.AccountSummary, int, error) {
	var w whereBuilder
	if filter.Search != nil {
		p := w.arg(likePattern(*filter.Search))
		w.add("(a.username ILIKE " + p + " OR a.full_name ILIKE " + p + " OR a.external_id ILIKE " + p + ")")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts a `+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	sortField := AccountSortCreatedAt
	if filter.SortField.Valid() {
		sortField = filter.SortField
	}
	direction := "ASC NULLS FIRST"
	if filter.Descending {
		direction = "DESC NULLS LAST"
	}

	limit := w.arg(filter.Limit)
	offset := w.arg(filter.Offset)
	query := `
		SELECT ` + accountColumns + `,
		       (SELECT COUNT(*) FROM leads l WHERE l.owner_id = a.id),
		       (SELECT COUNT(*) FROM lead_purchases p WHERE p.buyer_id = a.id),
		       (SELECT COUNT(*) FROM transactions t WHERE t.account_id = a.id)
		FROM accounts a
		` + w.sql() + `
		ORDER BY a.` + string(sortField) + ` ` + direction + `, a.id
		LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var accounts []models.AccountSummary
	for rows.Next() {
		var summary models.AccountSummary
		account, err := scanAccount(withExtra{row: rows, extra: []any{
			&summary.Uploads, &summary.Purchases, &summary.LedgerEntries,
		}})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan account: %w", err)
		}
		summary.Account = *account
		accounts = append(accounts, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, total, nil
}
