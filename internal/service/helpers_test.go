package service

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSchedule(t *testing.T) pricing.Schedule {
	t.Helper()
	s, err := pricing.ParseSchedule("2.0,1.0,0.5")
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(s string) any {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func strPtr(s string) *string { return &s }

// memStore is an in-memory stand-in for the relational store, used to run
// whole purchase and upload flows and check invariants across them.
type memStore struct {
	accounts  map[uuid.UUID]*models.Account
	leads     map[uuid.UUID]*models.Lead
	batches   []models.UploadBatch
	purchases []models.Purchase
	ledger    []models.Transaction
	now       time.Time
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[uuid.UUID]*models.Account),
		leads:    make(map[uuid.UUID]*models.Lead),
		now:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) addAccount(balance string) *models.Account {
	a := &models.Account{ID: uuid.New(), ExternalID: uuid.NewString(), Balance: dec(balance)}
	s.accounts[a.ID] = a
	return a
}

func (s *memStore) addLead(owner *models.Account, phoneNumber string) *models.Lead {
	l := &models.Lead{
		ID:        uuid.New(),
		Phone:     phoneNumber,
		Status:    models.LeadStatusInMarket,
		CreatedAt: s.now,
	}
	if owner != nil {
		l.OwnerID = &owner.ID
	}
	s.leads[l.ID] = l
	return l
}

func (s *memStore) ledgerSum(accountID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.ledger {
		if e.AccountID == accountID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

func (s *memStore) leadRepo() repository.LeadRepository { return &memLeads{s: s} }
func (s *memStore) accountRepo() repository.AccountRepository { return &memAccounts{s: s} }
func (s *memStore) purchaseRepo() repository.PurchaseRepository { return &memPurchases{s: s} }
func (s *memStore) transactionRepo() repository.TransactionRepository { return &memLedger{s: s} }
func (s *memStore) batchRepo() repository.UploadBatchRepository { return &memBatches{s: s} }

// The embedded interfaces are nil; calling a method the flows never use panics.

type memAccounts struct {
	repository.AccountRepository
	s *memStore
}

func (r *memAccounts) LockForUpdate(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	out := make(map[uuid.UUID]*models.Account)
	for _, id := range ids {
		if a, ok := r.s.accounts[id]; ok {
			cp := *a
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *memAccounts) AdjustBalance(_ context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	a, ok := r.s.accounts[id]
	if !ok {
		return decimal.Zero, models.ErrNotFound
	}
	next := a.Balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, models.ErrNegativeBalance
	}
	a.Balance = next
	return next, nil
}

func (r *memAccounts) IncrementSales(_ context.Context, id uuid.UUID) error {
	a, ok := r.s.accounts[id]
	if !ok {
		return models.ErrNotFound
	}
	a.TotalSales++
	return nil
}

type memLeads struct {
	repository.LeadRepository
	s *memStore
}

func (r *memLeads) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*models.Lead, error) {
	l, ok := r.s.leads[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memLeads) ApplySale(_ context.Context, lead *models.Lead) error {
	stored, ok := r.s.leads[lead.ID]
	if !ok {
		return models.ErrNotFound
	}
	stored.PurchaseCount = lead.PurchaseCount
	stored.IsArchived = lead.IsArchived
	stored.Status = lead.Status
	stored.OwnerReward = lead.OwnerReward
	return nil
}

func (r *memLeads) LockPhones(context.Context, []string) error { return nil }

func (r *memLeads) FindByPhonesSince(_ context.Context, phones []string, since time.Time) ([]models.ExistingPhone, error) {
	var out []models.ExistingPhone
	for _, l := range r.s.leads {
		if slices.Contains(phones, l.Phone) && !l.CreatedAt.Before(since) {
			out = append(out, models.ExistingPhone{
				Phone:         l.Phone,
				PurchaseCount: l.PurchaseCount,
				IsArchived:    l.IsArchived,
				CreatedAt:     l.CreatedAt,
			})
		}
	}
	return out, nil
}

func (r *memLeads) Create(_ context.Context, lead *models.Lead) error {
	lead.ID = uuid.New()
	lead.CreatedAt = r.s.now
	cp := *lead
	r.s.leads[lead.ID] = &cp
	return nil
}

type memPurchases struct {
	repository.PurchaseRepository
	s *memStore
}

func (r *memPurchases) Exists(_ context.Context, leadID, buyerID uuid.UUID) (bool, error) {
	for _, p := range r.s.purchases {
		if p.LeadID == leadID && p.BuyerID == buyerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memPurchases) Create(_ context.Context, purchase *models.Purchase) error {
	for _, p := range r.s.purchases {
		if p.LeadID == purchase.LeadID && (p.BuyerID == purchase.BuyerID || p.PurchaseNum == purchase.PurchaseNum) {
			return models.ErrDuplicatePurchase
		}
	}
	purchase.ID = uuid.New()
	purchase.CreatedAt = r.s.now
	r.s.purchases = append(r.s.purchases, *purchase)
	return nil
}

type memLedger struct {
	repository.TransactionRepository
	s *memStore
}

func (r *memLedger) Create(_ context.Context, txn *models.Transaction) error {
	txn.ID = uuid.New()
	txn.CreatedAt = r.s.now
	r.s.ledger = append(r.s.ledger, *txn)
	return nil
}

type memBatches struct {
	repository.UploadBatchRepository
	s *memStore
}

func (r *memBatches) Create(_ context.Context, batch *models.UploadBatch) error {
	batch.ID = uuid.New()
	batch.CreatedAt = r.s.now
	r.s.batches = append(r.s.batches, *batch)
	return nil
}
