package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// TransactionPage is one page of an account's ledger
type TransactionPage struct {
	Account *models.Account
	Items   []models.Transaction
	Page    Page
	Total   int
}

// UploadedLeadPage is one page of the leads an account uploaded
type UploadedLeadPage struct {
	Account *models.Account
	Items   []LeadView
	Page    Page
	Total   int
}

// PurchasedLeadPage is one page of the leads an account bought
type PurchasedLeadPage struct {
	Account *models.Account
	Items   []models.PurchasedLead
	Page    Page
	Total   int
}

// AccountService serves the caller's own account data
type AccountService struct {
	accounts     repository.AccountRepository
	leads        repository.LeadRepository
	purchases    repository.PurchaseRepository
	transactions repository.TransactionRepository
	schedule     pricing.Schedule
	seedBalance  decimal.Decimal
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB, schedule pricing.Schedule, seedBalance decimal.Decimal) *AccountService {
	return &AccountService{
		accounts:     repository.NewAccountRepository(database),
		leads:        repository.NewLeadRepository(database),
		purchases:    repository.NewPurchaseRepository(database),
		transactions: repository.NewTransactionRepository(database),
		schedule:     schedule,
		seedBalance:  seedBalance,
	}
}

// Resolve returns the caller's account, creating it with the seed balance on
// first use.
func (s *AccountService) Resolve(ctx context.Context, identity models.Identity) (*models.Account, error) {
	return resolveAccount(ctx, s.accounts, identity, s.seedBalance)
}

// Transactions returns the caller's ledger, newest first.
func (s *AccountService) Transactions(ctx context.Context, identity models.Identity, page Page) (*TransactionPage, error) {
	account, err := s.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	items, total, err := s.transactions.ListByAccount(ctx, account.ID, page.Limit, page.Offset())
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	return &TransactionPage{Account: account, Items: items, Page: page, Total: total}, nil
}

// UploadedLeads returns the leads the caller uploaded with their next price
// and earnings so far.
func (s *AccountService) UploadedLeads(ctx context.Context, identity models.Identity, page Page) (*UploadedLeadPage, error) {
	account, err := s.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	leads, total, err := s.leads.List(ctx, repository.LeadFilter{
		OwnerID:    &account.ID,
		SortField:  repository.LeadSortCreatedAt,
		Descending: true,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, internalError("failed to list uploaded leads", err)
	}

	items := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		items = append(items, newLeadView(s.schedule, l, true))
	}

	return &UploadedLeadPage{Account: account, Items: items, Page: page, Total: total}, nil
}

// PurchasedLeads returns the leads the caller bought, newest purchase first.
func (s *AccountService) PurchasedLeads(ctx context.Context, identity models.Identity, page Page) (*PurchasedLeadPage, error) {
	account, err := s.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	items, total, err := s.purchases.ListByBuyer(ctx, account.ID, page.Limit, page.Offset())
	if err != nil {
		return nil, internalError("failed to list purchased leads", err)
	}

	return &PurchasedLeadPage{Account: account, Items: items, Page: page, Total: total}, nil
}
