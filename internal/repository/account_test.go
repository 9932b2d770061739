package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
)

func TestAccountRepository_ResolveOrCreate(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	ctx := context.Background()
	seed := decimal.NewFromInt(5)

	first, err := repo.ResolveOrCreate(ctx, models.Identity{ExternalID: "100500", Username: "ivan"}, seed)
	require.NoError(t, err)
	assert.True(t, seed.Equal(first.Balance), "seed balance mismatch")
	assert.Equal(t, "ivan", *first.Username)
	assert.Nil(t, first.FullName)

	second, err := repo.ResolveOrCreate(ctx, models.Identity{ExternalID: "100500", FullName: "Ivan Petrov"}, decimal.NewFromInt(99))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same identity must resolve to the same account")
	assert.True(t, seed.Equal(second.Balance), "existing account must not be re-seeded")
	assert.Equal(t, "ivan", *second.Username, "empty username must not overwrite")
	assert.Equal(t, "Ivan Petrov", *second.FullName)
}

func TestAccountRepository_FindByID(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	existing := newTestAccount(t, database, "5")

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr bool
	}{
		{
			name: "existing account by ID",
			id:   existing.ID,
		},
		{
			name:    "non-existent account",
			id:      uuid.New(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := repo.FindByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrNotFound)
				return
			}

			require.NoError(t, err, "unexpected error")
			assert.Equal(t, tt.id, account.ID, "account ID mismatch")
		})
	}
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	account := newTestAccount(t, database, "1.00")
	ctx := context.Background()

	balance, err := repo.AdjustBalance(ctx, account.ID, decimal.RequireFromString("-0.70"))
	require.NoError(t, err)
	assert.Equal(t, "0.3", balance.String())

	_, err = repo.AdjustBalance(ctx, account.ID, decimal.RequireFromString("-0.31"))
	assert.ErrorIs(t, err, models.ErrNegativeBalance)

	_, err = repo.AdjustBalance(ctx, uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAccountRepository_AdjustBalance_Concurrent(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	account := newTestAccount(t, database, "10")

	const numGoroutines = 10
	delta := decimal.RequireFromString("-0.5")

	errCh := make(chan error, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			_, err := repo.AdjustBalance(context.Background(), account.ID, delta)
			errCh <- err
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		assert.NoError(t, <-errCh, "concurrent adjustment failed")
	}

	final, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", final.Balance.String(), "concurrent updates lost update detected!")
}

func TestAccountRepository_LockForUpdate(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	a := newTestAccount(t, database, "1")
	b := newTestAccount(t, database, "2")
	ctx := context.Background()

	tx, err := database.BeginReadCommitted(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }() //nolint:errcheck // test cleanup

	locked, err := NewAccountRepository(tx).LockForUpdate(ctx, []uuid.UUID{b.ID, a.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, locked, 2)
	assert.Equal(t, "2", locked[b.ID].Balance.String())
}

func TestAccountRepository_IncrementSales(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	account := newTestAccount(t, database, "0")

	require.NoError(t, repo.IncrementSales(context.Background(), account.ID))
	got, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalSales)

	err = repo.IncrementSales(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestAccountRepository_List(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewAccountRepository(database)
	ctx := context.Background()

	ivan, err := repo.ResolveOrCreate(ctx, models.Identity{ExternalID: "100500", Username: "ivan_sales"}, decimal.NewFromInt(5))
	require.NoError(t, err)
	olga, err := repo.ResolveOrCreate(ctx, models.Identity{ExternalID: "200600", FullName: "Olga Ivanova"}, decimal.NewFromInt(9))
	require.NoError(t, err)
	_, err = repo.ResolveOrCreate(ctx, models.Identity{ExternalID: "300700", Username: "petr"}, decimal.NewFromInt(1))
	require.NoError(t, err)

	newTestLead(t, database, ivan, "+79000000001")
	newTestLead(t, database, ivan, "+79000000002")
	require.NoError(t, NewTransactionRepository(database).Create(ctx, &models.Transaction{
		AccountID: ivan.ID,
		Type:      models.TransactionTypeUploadReward,
		Amount:    decimal.Zero,
	}))

	t.Run("search matches username, full name and external id", func(t *testing.T) {
		items, total, err := repo.List(ctx, AccountFilter{Search: strPtr("IVAN"), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, items, 2)

		byID := map[uuid.UUID]models.AccountSummary{}
		for _, item := range items {
			byID[item.ID] = item
		}
		assert.Equal(t, 2, byID[ivan.ID].Uploads)
		assert.Equal(t, 1, byID[ivan.ID].LedgerEntries)
		assert.Equal(t, 0, byID[olga.ID].Uploads)

		items, total, err = repo.List(ctx, AccountFilter{Search: strPtr("0070"), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "300700", items[0].ExternalID)
	})

	t.Run("sorts and pages", func(t *testing.T) {
		items, total, err := repo.List(ctx, AccountFilter{SortField: AccountSortBalance, Descending: true, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, items, 2)
		assert.Equal(t, olga.ID, items[0].ID)
		assert.Equal(t, ivan.ID, items[1].ID)

		items, _, err = repo.List(ctx, AccountFilter{SortField: AccountSortBalance, Descending: true, Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "300700", items[0].ExternalID)
	})
}
