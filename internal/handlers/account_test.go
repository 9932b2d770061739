package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/service"
	"github.com/leadexchange/leadmarket/internal/service/mocks"
)

func TestGetMe(t *testing.T) {
	t.Run("resolves caller", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountReader(t)
		handler := NewHandler(nil, nil, nil, mockAccounts, nil, nil, testLogger())

		account := testAccount("10")
		mockAccounts.On("Resolve", mock.Anything, testIdentity).Return(account, nil)

		resp, err := handler.GetMe(identifiedContext(), api.GetMeRequestObject{})
		require.NoError(t, err)

		got, ok := resp.(api.GetMe200JSONResponse)
		require.True(t, ok)
		assert.Equal(t, formatAccountID(account.ID), got.AccountId)
		assert.Equal(t, "1001", got.ExternalId)
		assert.Equal(t, "10.00", got.Balance)
		assert.Nil(t, got.Rating)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountReader(t)
		handler := NewHandler(nil, nil, nil, mockAccounts, nil, nil, testLogger())

		mockAccounts.On("Resolve", mock.Anything, models.Identity{}).
			Return(nil, &service.ServiceError{Code: service.ErrCodeIdentityRequired, Message: "identity required"})

		resp, err := handler.GetMe(context.Background(), api.GetMeRequestObject{})
		require.NoError(t, err)

		errResp, ok := resp.(api.GetMedefaultJSONResponse)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
		assert.Equal(t, api.ErrorCodeIdentityRequired, errResp.Body.Error)
	})
}

func TestListMyTransactions(t *testing.T) {
	mockAccounts := mocks.NewMockAccountReader(t)
	handler := NewHandler(nil, nil, nil, mockAccounts, nil, nil, testLogger())

	account := testAccount("4")
	leadID := uuid.New()
	txnID := uuid.New()

	mockAccounts.On("Transactions", mock.Anything, testIdentity, service.Page{Number: 1, Limit: service.DefaultPageLimit}).
		Return(&service.TransactionPage{
			Account: account,
			Items: []models.Transaction{{
				ID:          txnID,
				AccountID:   account.ID,
				LeadID:      &leadID,
				Type:        models.TransactionTypePurchase,
				Amount:      dec("-2"),
				Description: "Lead purchase",
				CreatedAt:   time.Now(),
			}},
			Page:  service.Page{Number: 1, Limit: service.DefaultPageLimit},
			Total: 1,
		}, nil)

	resp, err := handler.ListMyTransactions(identifiedContext(), api.ListMyTransactionsRequestObject{})
	require.NoError(t, err)

	got, ok := resp.(api.ListMyTransactions200JSONResponse)
	require.True(t, ok)
	assert.Equal(t, "4.00", got.Account.Balance)
	require.Len(t, got.Items, 1)
	assert.Equal(t, formatTransactionID(txnID), got.Items[0].TransactionId)
	assert.Equal(t, api.TransactionType("purchase"), got.Items[0].Type)
	assert.Equal(t, "-2.00", got.Items[0].Amount)
	require.NotNil(t, got.Items[0].LeadId)
	assert.Equal(t, formatLeadID(leadID), *got.Items[0].LeadId)
	assert.Equal(t, 1, got.Pagination.TotalPages)
}

func TestListMyLeads_DefaultsToUploaded(t *testing.T) {
	mockAccounts := mocks.NewMockAccountReader(t)
	handler := NewHandler(nil, nil, nil, mockAccounts, nil, nil, testLogger())

	lead := testLead(1)
	mockAccounts.On("UploadedLeads", mock.Anything, testIdentity, mock.Anything).
		Return(&service.UploadedLeadPage{
			Account: testAccount("1"),
			Items: []service.LeadView{{
				Lead:     lead,
				Phone:    lead.Phone,
				Revealed: true,
				Status:   pricing.PurchaseStatus(1),
			}},
			Page:  service.Page{Number: 1, Limit: service.DefaultPageLimit},
			Total: 1,
		}, nil)

	resp, err := handler.ListMyLeads(identifiedContext(), api.ListMyLeadsRequestObject{})
	require.NoError(t, err)

	got, ok := resp.(api.ListMyLeads200JSONResponse)
	require.True(t, ok)
	assert.Equal(t, api.MyLeadsTypeUploaded, got.Type)
	assert.Nil(t, got.Purchased)
	require.NotNil(t, got.Uploaded)
	require.Len(t, *got.Uploaded, 1)
	assert.Equal(t, lead.Phone, (*got.Uploaded)[0].Phone)
}

func TestListMyLeads_Purchased(t *testing.T) {
	mockAccounts := mocks.NewMockAccountReader(t)
	handler := NewHandler(nil, nil, nil, mockAccounts, nil, nil, testLogger())

	lead := testLead(2)
	purchaseID := uuid.New()
	mockAccounts.On("PurchasedLeads", mock.Anything, testIdentity, mock.Anything).
		Return(&service.PurchasedLeadPage{
			Account: testAccount("1"),
			Items: []models.PurchasedLead{{
				Lead: lead,
				Purchase: models.Purchase{
					ID:          purchaseID,
					LeadID:      lead.ID,
					Price:       dec("1"),
					PurchaseNum: 2,
					CreatedAt:   time.Now(),
				},
			}},
			Page:  service.Page{Number: 1, Limit: service.DefaultPageLimit},
			Total: 1,
		}, nil)

	purchased := api.MyLeadsTypePurchased
	resp, err := handler.ListMyLeads(identifiedContext(), api.ListMyLeadsRequestObject{
		Params: api.ListMyLeadsParams{Type: &purchased},
	})
	require.NoError(t, err)

	got, ok := resp.(api.ListMyLeads200JSONResponse)
	require.True(t, ok)
	assert.Nil(t, got.Uploaded)
	require.NotNil(t, got.Purchased)
	require.Len(t, *got.Purchased, 1)
	item := (*got.Purchased)[0]
	assert.Equal(t, formatPurchaseID(purchaseID), item.PurchaseId)
	assert.Equal(t, "1.00", item.Price)
	assert.Equal(t, 2, item.PurchaseNum)
	assert.True(t, item.Lead.PhoneRevealed)
	assert.Equal(t, lead.Phone, item.Lead.Phone)
}

func TestListMyLeads_UnknownType(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil, nil, testLogger())

	other := api.MyLeadsType("sold")
	resp, err := handler.ListMyLeads(identifiedContext(), api.ListMyLeadsRequestObject{
		Params: api.ListMyLeadsParams{Type: &other},
	})
	require.NoError(t, err)

	errResp, ok := resp.(api.ListMyLeadsdefaultJSONResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)
}
