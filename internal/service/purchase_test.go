package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository/mocks"
)

type purchaseMocks struct {
	leads        *mocks.MockLeadRepository
	accounts     *mocks.MockAccountRepository
	purchases    *mocks.MockPurchaseRepository
	transactions *mocks.MockTransactionRepository
}

func newPurchaseMocks(t *testing.T) purchaseMocks {
	return purchaseMocks{
		leads:        mocks.NewMockLeadRepository(t),
		accounts:     mocks.NewMockAccountRepository(t),
		purchases:    mocks.NewMockPurchaseRepository(t),
		transactions: mocks.NewMockTransactionRepository(t),
	}
}

func (m purchaseMocks) run(ctx context.Context, s *PurchaseService, buyerID, leadID uuid.UUID) (*PurchaseResult, error) {
	return s.performPurchase(ctx, m.leads, m.accounts, m.purchases, m.transactions, buyerID, leadID)
}

func newTestPurchaseService(t *testing.T) *PurchaseService {
	return NewPurchaseService(nil, testSchedule(t), dec("5"), nil, testLogger())
}

func TestPurchaseService_PerformPurchase(t *testing.T) {
	t.Run("first purchase pays the owner the unique price", func(t *testing.T) {
		m := newPurchaseMocks(t)
		service := newTestPurchaseService(t)
		ctx := context.Background()

		buyerID, ownerID, leadID := uuid.New(), uuid.New(), uuid.New()
		lead := &models.Lead{
			ID:      leadID,
			Phone:   "+79123456789",
			Status:  models.LeadStatusInMarket,
			OwnerID: &ownerID,
		}
		locked := map[uuid.UUID]*models.Account{
			buyerID: {ID: buyerID, ExternalID: "100", Balance: dec("5")},
			ownerID: {ID: ownerID, ExternalID: "200", Balance: dec("1")},
		}

		m.leads.On("FindByIDForUpdate", ctx, leadID).Return(lead, nil)
		m.purchases.On("Exists", ctx, leadID, buyerID).Return(false, nil)
		m.accounts.On("LockForUpdate", ctx, []uuid.UUID{buyerID, ownerID}).Return(locked, nil)
		m.accounts.On("AdjustBalance", ctx, buyerID, decimalEq("-2.0")).Return(dec("3"), nil)
		m.transactions.On("Create", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypePurchase && txn.AccountID == buyerID &&
				txn.Amount.Equal(dec("-2")) && *txn.LeadID == leadID && strings.Contains(txn.Description, "6789")
		})).Return(nil)
		m.accounts.On("AdjustBalance", ctx, ownerID, decimalEq("2.0")).Return(dec("3"), nil)
		m.accounts.On("IncrementSales", ctx, ownerID).Return(nil)
		m.transactions.On("Create", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypeSaleReward && txn.AccountID == ownerID &&
				txn.Amount.Equal(dec("2")) && strings.Contains(txn.Description, "sale 1 of 3")
		})).Return(nil)
		m.leads.On("ApplySale", ctx, mock.MatchedBy(func(l *models.Lead) bool {
			return l.PurchaseCount == 1 && !l.IsArchived && l.Status == models.LeadStatusInMarket
		})).Return(nil)
		m.purchases.On("Create", ctx, mock.MatchedBy(func(p *models.Purchase) bool {
			return p.PurchaseNum == 1 && p.BuyerID == buyerID && p.Price.Equal(dec("2"))
		})).Return(nil)

		result, err := m.run(ctx, service, buyerID, leadID)

		require.NoError(t, err)
		assert.True(t, result.Price.Equal(dec("2")))
		assert.True(t, result.NewBalance.Equal(dec("3")))
		assert.Equal(t, 1, result.Lead.PurchaseCount)
		assert.True(t, result.Lead.OwnerReward.Equal(dec("2")))
		assert.Equal(t, "100", result.Buyer.ExternalID)
		assert.Equal(t, 1, result.Purchase.PurchaseNum)
	})

	t.Run("last purchase archives the lead", func(t *testing.T) {
		m := newPurchaseMocks(t)
		service := newTestPurchaseService(t)
		ctx := context.Background()

		buyerID, ownerID, leadID := uuid.New(), uuid.New(), uuid.New()
		lead := &models.Lead{
			ID:            leadID,
			Phone:         "+79123456789",
			Status:        models.LeadStatusInMarket,
			OwnerID:       &ownerID,
			PurchaseCount: 2,
			OwnerReward:   dec("3"),
		}
		locked := map[uuid.UUID]*models.Account{
			buyerID: {ID: buyerID, Balance: dec("0.5")},
			ownerID: {ID: ownerID, Balance: dec("0")},
		}

		m.leads.On("FindByIDForUpdate", ctx, leadID).Return(lead, nil)
		m.purchases.On("Exists", ctx, leadID, buyerID).Return(false, nil)
		m.accounts.On("LockForUpdate", ctx, mock.Anything).Return(locked, nil)
		m.accounts.On("AdjustBalance", ctx, buyerID, decimalEq("-0.5")).Return(dec("0"), nil)
		m.accounts.On("AdjustBalance", ctx, ownerID, decimalEq("0.5")).Return(dec("0.5"), nil)
		m.accounts.On("IncrementSales", ctx, ownerID).Return(nil)
		m.transactions.On("Create", ctx, mock.Anything).Return(nil).Twice()
		m.leads.On("ApplySale", ctx, mock.MatchedBy(func(l *models.Lead) bool {
			return l.PurchaseCount == 3 && l.IsArchived && l.Status == models.LeadStatusArchived
		})).Return(nil)
		m.purchases.On("Create", ctx, mock.MatchedBy(func(p *models.Purchase) bool {
			return p.PurchaseNum == 3
		})).Return(nil)

		result, err := m.run(ctx, service, buyerID, leadID)

		require.NoError(t, err)
		assert.True(t, result.NewBalance.IsZero())
		assert.True(t, result.Lead.IsArchived)
		assert.True(t, result.Lead.OwnerReward.Equal(dec("3.5")))
	})

	t.Run("orphaned lead only debits the buyer", func(t *testing.T) {
		m := newPurchaseMocks(t)
		service := newTestPurchaseService(t)
		ctx := context.Background()

		buyerID, leadID := uuid.New(), uuid.New()
		lead := &models.Lead{ID: leadID, Phone: "+79123456789", Status: models.LeadStatusInMarket, PurchaseCount: 1}

		m.leads.On("FindByIDForUpdate", ctx, leadID).Return(lead, nil)
		m.purchases.On("Exists", ctx, leadID, buyerID).Return(false, nil)
		m.accounts.On("LockForUpdate", ctx, []uuid.UUID{buyerID}).
			Return(map[uuid.UUID]*models.Account{buyerID: {ID: buyerID, Balance: dec("1")}}, nil)
		m.accounts.On("AdjustBalance", ctx, buyerID, decimalEq("-1")).Return(dec("0"), nil)
		m.transactions.On("Create", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypePurchase
		})).Return(nil).Once()
		m.leads.On("ApplySale", ctx, lead).Return(nil)
		m.purchases.On("Create", ctx, mock.Anything).Return(nil)

		result, err := m.run(ctx, service, buyerID, leadID)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Lead.PurchaseCount)
		m.accounts.AssertNotCalled(t, "IncrementSales", mock.Anything, mock.Anything)
	})
}

func TestPurchaseService_PerformPurchase_Rejections(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name     string
		lead     *models.Lead
		findErr  error
		setup    func(m purchaseMocks, buyerID uuid.UUID, lead *models.Lead)
		selfBuy  bool
		wantCode string
		wantMsg  string
	}{
		{
			name:     "lead not found",
			findErr:  models.ErrNotFound,
			wantCode: ErrCodeLeadNotFound,
		},
		{
			name:     "lead lookup fails",
			findErr:  errors.New("connection reset"),
			wantCode: ErrCodeInternalError,
		},
		{
			name:     "lead under moderation",
			lead:     &models.Lead{Status: models.LeadStatusOnModeration, OwnerID: &ownerID},
			wantCode: ErrCodeLeadUnavailable,
		},
		{
			name:     "rejected lead",
			lead:     &models.Lead{Status: models.LeadStatusRejected, OwnerID: &ownerID},
			wantCode: ErrCodeLeadUnavailable,
		},
		{
			name: "archived lead",
			lead: &models.Lead{
				Status: models.LeadStatusArchived, IsArchived: true, PurchaseCount: 3, OwnerID: &ownerID,
			},
			wantCode: ErrCodeLeadSoldOut,
		},
		{
			name:     "in market with full purchase count",
			lead:     &models.Lead{Status: models.LeadStatusInMarket, PurchaseCount: 3, OwnerID: &ownerID},
			wantCode: ErrCodeLeadSoldOut,
		},
		{
			name:     "owner buys own lead",
			lead:     &models.Lead{Status: models.LeadStatusInMarket, OwnerID: &ownerID},
			selfBuy:  true,
			wantCode: ErrCodeSelfPurchase,
		},
		{
			name: "already purchased",
			lead: &models.Lead{Status: models.LeadStatusInMarket, PurchaseCount: 1, OwnerID: &ownerID},
			setup: func(m purchaseMocks, buyerID uuid.UUID, lead *models.Lead) {
				m.purchases.On("Exists", mock.Anything, lead.ID, buyerID).Return(true, nil)
			},
			wantCode: ErrCodeAlreadyPurchased,
		},
		{
			name: "insufficient balance",
			lead: &models.Lead{Status: models.LeadStatusInMarket, PurchaseCount: 2, OwnerID: &ownerID},
			setup: func(m purchaseMocks, buyerID uuid.UUID, lead *models.Lead) {
				m.purchases.On("Exists", mock.Anything, lead.ID, buyerID).Return(false, nil)
				m.accounts.On("LockForUpdate", mock.Anything, []uuid.UUID{buyerID, ownerID}).
					Return(map[uuid.UUID]*models.Account{
						buyerID: {ID: buyerID, Balance: dec("0.4")},
						ownerID: {ID: ownerID},
					}, nil)
			},
			wantCode: ErrCodeInsufficientBalance,
			wantMsg:  "need 0.50, have 0.40",
		},
		{
			name: "buyer account missing",
			lead: &models.Lead{Status: models.LeadStatusInMarket, OwnerID: &ownerID},
			setup: func(m purchaseMocks, buyerID uuid.UUID, lead *models.Lead) {
				m.purchases.On("Exists", mock.Anything, lead.ID, buyerID).Return(false, nil)
				m.accounts.On("LockForUpdate", mock.Anything, mock.Anything).
					Return(map[uuid.UUID]*models.Account{ownerID: {ID: ownerID}}, nil)
			},
			wantCode: ErrCodeAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Strict mocks: any effect method called here fails the test.
			m := newPurchaseMocks(t)
			service := newTestPurchaseService(t)
			ctx := context.Background()

			buyerID, leadID := uuid.New(), uuid.New()
			if tt.selfBuy {
				buyerID = ownerID
			}

			if tt.lead != nil {
				tt.lead.ID = leadID
				tt.lead.Phone = "+79123456789"
				m.leads.On("FindByIDForUpdate", ctx, leadID).Return(tt.lead, nil)
			} else {
				m.leads.On("FindByIDForUpdate", ctx, leadID).Return(nil, tt.findErr)
			}
			if tt.setup != nil {
				tt.setup(m, buyerID, tt.lead)
			}

			result, err := m.run(ctx, service, buyerID, leadID)

			assert.Nil(t, result)
			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, svcErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestPurchaseService_PerformPurchase_ConstraintBackstops(t *testing.T) {
	t.Run("balance check constraint maps to insufficient balance", func(t *testing.T) {
		m := newPurchaseMocks(t)
		service := newTestPurchaseService(t)
		ctx := context.Background()

		buyerID, leadID := uuid.New(), uuid.New()
		m.leads.On("FindByIDForUpdate", ctx, leadID).
			Return(&models.Lead{ID: leadID, Status: models.LeadStatusInMarket}, nil)
		m.purchases.On("Exists", ctx, leadID, buyerID).Return(false, nil)
		m.accounts.On("LockForUpdate", ctx, mock.Anything).
			Return(map[uuid.UUID]*models.Account{buyerID: {ID: buyerID, Balance: dec("5")}}, nil)
		m.accounts.On("AdjustBalance", ctx, buyerID, mock.Anything).
			Return(decimal.Zero, models.ErrNegativeBalance)

		_, err := m.run(ctx, service, buyerID, leadID)
		assert.Equal(t, ErrCodeInsufficientBalance, ErrorCode(err))
	})

	t.Run("unique constraint on purchase maps to already purchased", func(t *testing.T) {
		m := newPurchaseMocks(t)
		service := newTestPurchaseService(t)
		ctx := context.Background()

		buyerID, leadID := uuid.New(), uuid.New()
		m.leads.On("FindByIDForUpdate", ctx, leadID).
			Return(&models.Lead{ID: leadID, Status: models.LeadStatusInMarket}, nil)
		m.purchases.On("Exists", ctx, leadID, buyerID).Return(false, nil)
		m.accounts.On("LockForUpdate", ctx, mock.Anything).
			Return(map[uuid.UUID]*models.Account{buyerID: {ID: buyerID, Balance: dec("5")}}, nil)
		m.accounts.On("AdjustBalance", ctx, buyerID, mock.Anything).Return(dec("3"), nil)
		m.transactions.On("Create", ctx, mock.Anything).Return(nil)
		m.leads.On("ApplySale", ctx, mock.Anything).Return(nil)
		m.purchases.On("Create", ctx, mock.Anything).Return(models.ErrDuplicatePurchase)

		_, err := m.run(ctx, service, buyerID, leadID)
		assert.Equal(t, ErrCodeAlreadyPurchased, ErrorCode(err))
	})
}

func purchaseIn(t *testing.T, store *memStore, service *PurchaseService, buyer *models.Account, lead *models.Lead) (*PurchaseResult, error) {
	t.Helper()
	return service.performPurchase(context.Background(),
		store.leadRepo(), store.accountRepo(), store.purchaseRepo(), store.transactionRepo(),
		buyer.ID, lead.ID)
}

func TestPurchaseFlow_DegressiveResale(t *testing.T) {
	store := newMemStore()
	service := newTestPurchaseService(t)

	owner := store.addAccount("0")
	lead := store.addLead(owner, "+79123456789")
	a, b, c, d := store.addAccount("5"), store.addAccount("5"), store.addAccount("5"), store.addAccount("5")

	wantPrices := []string{"2.0", "1.0", "0.5"}
	for i, buyer := range []*models.Account{a, b, c} {
		result, err := purchaseIn(t, store, service, buyer, lead)
		require.NoError(t, err)
		assert.True(t, result.Price.Equal(dec(wantPrices[i])), "sale %d", i+1)
		assert.Equal(t, i+1, result.Lead.PurchaseCount)
		assert.Equal(t, i == 2, result.Lead.IsArchived)
		if i < 2 {
			require.NotNil(t, result.NextPrice, "sale %d", i+1)
			assert.True(t, result.NextPrice.Equal(dec(wantPrices[i+1])), "sale %d", i+1)
		} else {
			assert.Nil(t, result.NextPrice, "archived lead has no next price")
		}
	}

	stored := store.leads[lead.ID]
	assert.Equal(t, models.LeadStatusArchived, stored.Status)
	assert.True(t, stored.IsArchived)
	assert.True(t, stored.OwnerReward.Equal(dec("3.5")))
	assert.True(t, store.accounts[owner.ID].Balance.Equal(dec("3.5")))
	assert.Equal(t, 3, store.accounts[owner.ID].TotalSales)

	_, err := purchaseIn(t, store, service, d, lead)
	assert.Equal(t, ErrCodeLeadSoldOut, ErrorCode(err))
	assert.True(t, store.accounts[d.ID].Balance.Equal(dec("5")))

	for _, acc := range []*models.Account{owner, a, b, c, d} {
		seed := map[uuid.UUID]string{owner.ID: "0"}[acc.ID]
		if seed == "" {
			seed = "5"
		}
		assert.True(t, store.ledgerSum(acc.ID).Equal(store.accounts[acc.ID].Balance.Sub(dec(seed))))
	}
}

func TestPurchaseFlow_RepeatPurchaseRejected(t *testing.T) {
	store := newMemStore()
	service := newTestPurchaseService(t)

	lead := store.addLead(store.addAccount("0"), "+79123456789")
	buyer := store.addAccount("5")

	_, err := purchaseIn(t, store, service, buyer, lead)
	require.NoError(t, err)

	_, err = purchaseIn(t, store, service, buyer, lead)
	assert.Equal(t, ErrCodeAlreadyPurchased, ErrorCode(err))
	assert.True(t, store.accounts[buyer.ID].Balance.Equal(dec("3")))
	assert.Len(t, store.purchases, 1)
}

func TestPurchaseFlow_InsufficientBalanceHasNoEffects(t *testing.T) {
	store := newMemStore()
	service := newTestPurchaseService(t)

	lead := store.addLead(store.addAccount("0"), "+79123456789")
	lead.PurchaseCount = 2
	poor := store.addAccount("0.4")

	_, err := purchaseIn(t, store, service, poor, lead)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInsufficientBalance, svcErr.Code)
	assert.Contains(t, svcErr.Message, "need 0.50, have 0.40")
	assert.Empty(t, store.ledger)
	assert.Empty(t, store.purchases)
	assert.Equal(t, 2, store.leads[lead.ID].PurchaseCount)
	assert.Equal(t, models.LeadStatusInMarket, store.leads[lead.ID].Status)
}

func TestPurchaseFlow_SelfPurchaseRejected(t *testing.T) {
	store := newMemStore()
	service := newTestPurchaseService(t)

	owner := store.addAccount("5")
	lead := store.addLead(owner, "+79123456789")

	_, err := purchaseIn(t, store, service, owner, lead)
	assert.Equal(t, ErrCodeSelfPurchase, ErrorCode(err))
	assert.Empty(t, store.ledger)
	assert.Zero(t, store.leads[lead.ID].PurchaseCount)
}

// Any sequence of purchase attempts keeps the ledger, counters and purchase
// records consistent with each other.
func TestPurchaseFlow_Invariants(t *testing.T) {
	schedule := testSchedule(t)
	properties := gopter.NewProperties(nil)

	properties.Property("purchases preserve marketplace invariants", prop.ForAll(
		func(ops []int) bool {
			store := newMemStore()
			service := NewPurchaseService(nil, schedule, dec("3"), nil, testLogger())

			accounts := make([]*models.Account, 4)
			for i := range accounts {
				accounts[i] = store.addAccount("3")
			}
			leads := []*models.Lead{
				store.addLead(accounts[0], "+79000000001"),
				store.addLead(accounts[1], "+79000000002"),
				store.addLead(nil, "+79000000003"),
			}

			for _, op := range ops {
				buyer := accounts[op%4]
				lead := leads[op/4]
				if _, err := purchaseIn(t, store, service, buyer, lead); err != nil && ErrorCode(err) == ErrCodeInternalError {
					return false
				}
			}

			for _, acc := range accounts {
				stored := store.accounts[acc.ID]
				if stored.Balance.IsNegative() || !store.ledgerSum(acc.ID).Equal(stored.Balance.Sub(dec("3"))) {
					return false
				}
			}

			for _, l := range leads {
				stored := store.leads[l.ID]
				if stored.PurchaseCount > pricing.MaxPurchases || stored.IsArchived != pricing.IsArchived(stored.PurchaseCount) {
					return false
				}
				if (stored.Status == models.LeadStatusArchived) != stored.IsArchived {
					return false
				}

				nums := map[int]bool{}
				buyers := map[uuid.UUID]bool{}
				paid := decimal.Zero
				for _, p := range store.purchases {
					if p.LeadID != l.ID {
						continue
					}
					if nums[p.PurchaseNum] || buyers[p.BuyerID] || stored.OwnedBy(p.BuyerID) {
						return false
					}
					nums[p.PurchaseNum] = true
					buyers[p.BuyerID] = true
					if want, _ := schedule.Price(p.PurchaseNum - 1); !p.Price.Equal(want) {
						return false
					}
					paid = paid.Add(p.Price)
				}
				for n := 1; n <= stored.PurchaseCount; n++ {
					if !nums[n] {
						return false
					}
				}
				if len(nums) != stored.PurchaseCount || !paid.Equal(stored.OwnerReward) {
					return false
				}
			}

			for _, e := range store.ledger {
				if e.Type == models.TransactionTypeSaleReward && !e.Amount.IsPositive() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 11)),
	))

	properties.TestingRun(t)
}
