package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
)

func TestTransactionRepository_Create(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewTransactionRepository(database)
	account := newTestAccount(t, database, "5")
	lead := newTestLead(t, database, nil, "+79000000001")

	tests := []struct {
		tx   *models.Transaction
		name string
	}{
		{
			name: "purchase debit referencing a lead",
			tx: &models.Transaction{
				AccountID:   account.ID,
				Type:        models.TransactionTypePurchase,
				Amount:      decimal.RequireFromString("-1.0"),
				LeadID:      &lead.ID,
				Description: "Покупка лида ****0001",
			},
		},
		{
			name: "zero amount upload entry",
			tx: &models.Transaction{
				AccountID: account.ID,
				Type:      models.TransactionTypeUploadReward,
				Amount:    decimal.Zero,
			},
		},
		{
			name: "pre-set ID",
			tx: &models.Transaction{
				ID:        uuid.New(),
				AccountID: account.ID,
				Type:      models.TransactionTypeAdminAdjustment,
				Amount:    decimal.RequireFromString("2.5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalID := tt.tx.ID

			require.NoError(t, repo.Create(context.Background(), tt.tx))
			assert.NotEqual(t, uuid.Nil, tt.tx.ID, "transaction ID should not be nil UUID after create")
			if originalID != uuid.Nil {
				assert.Equal(t, originalID, tt.tx.ID, "transaction ID should be preserved")
			}
		})
	}

	entries, total, err := repo.ListByAccount(context.Background(), account.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, entries, 3)

	sum, err := repo.SumByAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.5", sum.String())
}

func TestTransactionRepository_RejectsUnknownType(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	account := newTestAccount(t, database, "5")
	err := NewTransactionRepository(database).Create(context.Background(), &models.Transaction{
		AccountID: account.ID,
		Type:      models.TransactionType("bonus"),
		Amount:    decimal.NewFromInt(1),
	})
	assert.Error(t, err)
}

func TestTransactionRepository_DeleteByLead(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	ctx := context.Background()
	repo := NewTransactionRepository(database)
	account := newTestAccount(t, database, "5")
	lead := newTestLead(t, database, nil, "+79000000001")

	require.NoError(t, repo.Create(ctx, &models.Transaction{
		AccountID: account.ID, Type: models.TransactionTypeSaleReward, Amount: decimal.NewFromInt(1), LeadID: &lead.ID,
	}))
	require.NoError(t, repo.Create(ctx, &models.Transaction{
		AccountID: account.ID, Type: models.TransactionTypeUploadReward, Amount: decimal.Zero,
	}))

	deleted, err := repo.DeleteByLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, total, err := repo.ListByAccount(ctx, account.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestTransactionRepository_ListAndTotals(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	ctx := context.Background()
	repo := NewTransactionRepository(database)
	buyer := newTestAccount(t, database, "5")
	seller := newTestAccount(t, database, "5")
	lead := newTestLead(t, database, seller, "+79000000001")

	entries := []*models.Transaction{
		{AccountID: buyer.ID, Type: models.TransactionTypePurchase, Amount: decimal.RequireFromString("-1.0"), LeadID: &lead.ID},
		{AccountID: seller.ID, Type: models.TransactionTypeSaleReward, Amount: decimal.RequireFromString("0.5"), LeadID: &lead.ID},
		{AccountID: buyer.ID, Type: models.TransactionTypeAdminAdjustment, Amount: decimal.RequireFromString("2.0")},
		{AccountID: buyer.ID, Type: models.TransactionTypePurchase, Amount: decimal.RequireFromString("-0.7")},
	}
	for _, tx := range entries {
		require.NoError(t, repo.Create(ctx, tx))
	}

	t.Run("joins account and lead", func(t *testing.T) {
		purchase := models.TransactionTypePurchase
		filter := TransactionFilter{Type: &purchase, SortField: TransactionSortAmount, Limit: 10}

		items, total, err := repo.List(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, items, 2)
		assert.True(t, decimal.RequireFromString("-1.0").Equal(items[0].Amount))
		assert.Equal(t, buyer.ExternalID, items[0].AccountExternalID)
		require.NotNil(t, items[0].LeadPhone)
		assert.Equal(t, "+79000000001", *items[0].LeadPhone)
		assert.Nil(t, items[1].LeadPhone)
	})

	t.Run("totals follow the filter", func(t *testing.T) {
		totals, err := repo.TotalsByType(ctx, TransactionFilter{AccountID: &buyer.ID})
		require.NoError(t, err)

		byType := map[models.TransactionType]models.LedgerTotal{}
		for _, total := range totals {
			byType[total.Type] = total
		}
		assert.Len(t, byType, 2)
		assert.Equal(t, 2, byType[models.TransactionTypePurchase].Count)
		assert.True(t, decimal.RequireFromString("-1.7").Equal(byType[models.TransactionTypePurchase].Sum))
		assert.True(t, decimal.RequireFromString("2").Equal(byType[models.TransactionTypeAdminAdjustment].Sum))
		_, hasReward := byType[models.TransactionTypeSaleReward]
		assert.False(t, hasReward)
	})
}
