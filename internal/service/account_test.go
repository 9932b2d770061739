package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/repository"
	"github.com/leadexchange/leadmarket/internal/repository/mocks"
)

type accountMocks struct {
	accounts     *mocks.MockAccountRepository
	leads        *mocks.MockLeadRepository
	purchases    *mocks.MockPurchaseRepository
	transactions *mocks.MockTransactionRepository
}

func newTestAccountService(t *testing.T) (*AccountService, accountMocks) {
	m := accountMocks{
		accounts:     mocks.NewMockAccountRepository(t),
		leads:        mocks.NewMockLeadRepository(t),
		purchases:    mocks.NewMockPurchaseRepository(t),
		transactions: mocks.NewMockTransactionRepository(t),
	}
	s := &AccountService{
		accounts:     m.accounts,
		leads:        m.leads,
		purchases:    m.purchases,
		transactions: m.transactions,
		schedule:     testSchedule(t),
		seedBalance:  dec("5"),
	}
	return s, m
}

func TestAccountService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with seed balance", func(t *testing.T) {
		service, m := newTestAccountService(t)
		identity := models.Identity{ExternalID: "42", Username: "ivan"}
		account := &models.Account{ID: uuid.New(), ExternalID: "42", Balance: dec("5")}

		m.accounts.On("ResolveOrCreate", ctx, identity, decimalEq("5")).Return(account, nil)

		got, err := service.Resolve(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("trims the external id", func(t *testing.T) {
		service, m := newTestAccountService(t)

		m.accounts.On("ResolveOrCreate", ctx, models.Identity{ExternalID: "42"}, mock.Anything).
			Return(&models.Account{ExternalID: "42"}, nil)

		_, err := service.Resolve(ctx, models.Identity{ExternalID: " 42 "})
		require.NoError(t, err)
	})

	t.Run("no identity", func(t *testing.T) {
		service, _ := newTestAccountService(t)

		_, err := service.Resolve(ctx, models.Identity{})
		assert.Equal(t, ErrCodeIdentityRequired, ErrorCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		service, m := newTestAccountService(t)
		m.accounts.On("ResolveOrCreate", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := service.Resolve(ctx, models.Identity{ExternalID: "42"})
		assert.Equal(t, ErrCodeInternalError, ErrorCode(err))
	})
}

func TestAccountService_Transactions(t *testing.T) {
	service, m := newTestAccountService(t)
	ctx := context.Background()
	identity := models.Identity{ExternalID: "42"}
	account := &models.Account{ID: uuid.New()}

	entries := []models.Transaction{
		{AccountID: account.ID, Type: models.TransactionTypeSaleReward, Amount: dec("1")},
		{AccountID: account.ID, Type: models.TransactionTypePurchase, Amount: dec("-2")},
	}

	m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(account, nil)
	m.transactions.On("ListByAccount", ctx, account.ID, 2, 2).Return(entries, 5, nil)

	page, err := service.Transactions(ctx, identity, Page{Number: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, entries, page.Items)
	assert.Same(t, account, page.Account)
}

func TestAccountService_UploadedLeads(t *testing.T) {
	service, m := newTestAccountService(t)
	ctx := context.Background()
	identity := models.Identity{ExternalID: "42"}
	account := &models.Account{ID: uuid.New()}

	m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(account, nil)
	m.leads.On("List", ctx, mock.MatchedBy(func(f repository.LeadFilter) bool {
		return *f.OwnerID == account.ID && f.Descending && f.Limit == 20 && f.Offset == 0
	})).Return([]models.Lead{
		{Phone: "+79991234567", PurchaseCount: 1, OwnerReward: dec("2")},
		{Phone: "+79035554433", PurchaseCount: 3, IsArchived: true, Status: models.LeadStatusArchived, OwnerReward: dec("3.5")},
	}, 2, nil)

	page, err := service.UploadedLeads(ctx, identity, Page{Number: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "+79991234567", page.Items[0].Phone)
	assert.True(t, page.Items[0].Price.Equal(dec("1")))
	assert.Equal(t, "1 of 3", page.Items[0].Status.Label)
	assert.Nil(t, page.Items[1].Price)
	assert.Zero(t, page.Items[1].Status.Remaining)
}

func TestAccountService_PurchasedLeads(t *testing.T) {
	service, m := newTestAccountService(t)
	ctx := context.Background()
	identity := models.Identity{ExternalID: "42"}
	account := &models.Account{ID: uuid.New()}

	bought := []models.PurchasedLead{{
		Lead:     models.Lead{Phone: "+79991234567"},
		Purchase: models.Purchase{BuyerID: account.ID, PurchaseNum: 2, Price: dec("1")},
	}}

	m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(account, nil)
	m.purchases.On("ListByBuyer", ctx, account.ID, 20, 0).Return(bought, 1, nil)

	page, err := service.PurchasedLeads(ctx, identity, Page{Number: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "+79991234567", page.Items[0].Lead.Phone)
}
