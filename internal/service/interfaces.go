package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// UploadQuota counts upload batches per account.
type UploadQuota interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Purchaser handles lead purchases
type Purchaser interface {
	Purchase(ctx context.Context, identity models.Identity, leadID uuid.UUID) (*PurchaseResult, error)
}

// Uploader handles lead upload batches
type Uploader interface {
	Upload(ctx context.Context, identity models.Identity, req UploadRequest) (*UploadResult, error)
}

// MarketBrowser serves marketplace reads
type MarketBrowser interface {
	ListMarket(ctx context.Context, identity models.Identity, query MarketQuery) (*MarketPage, error)
	GetLead(ctx context.Context, identity models.Identity, leadID uuid.UUID) (*LeadView, error)
	Pricing() PricingInfo
}

// AccountReader serves the caller's own account data
type AccountReader interface {
	Resolve(ctx context.Context, identity models.Identity) (*models.Account, error)
	Transactions(ctx context.Context, identity models.Identity, page Page) (*TransactionPage, error)
	UploadedLeads(ctx context.Context, identity models.Identity, page Page) (*UploadedLeadPage, error)
	PurchasedLeads(ctx context.Context, identity models.Identity, page Page) (*PurchasedLeadPage, error)
}

// LeadAdministrator handles moderation and support operations
type LeadAdministrator interface {
	ListLeads(ctx context.Context, query AdminLeadQuery) (*AdminLeadPage, error)
	ListAccounts(ctx context.Context, query AdminAccountQuery) (*AdminAccountPage, error)
	ListTransactions(ctx context.Context, query AdminLedgerQuery) (*AdminLedgerPage, error)
	UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status models.LeadStatus) (*models.Lead, error)
	PurgeLead(ctx context.Context, leadID uuid.UUID) (*PurgeResult, error)
	AdjustBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, reason string) (*AdjustmentResult, error)
	Stats(ctx context.Context) (*models.MarketStats, error)
}

// Ensure concrete types implement interfaces
var (
	_ Purchaser         = (*PurchaseService)(nil)
	_ Uploader          = (*UploadService)(nil)
	_ MarketBrowser     = (*MarketService)(nil)
	_ AccountReader     = (*AccountService)(nil)
	_ LeadAdministrator = (*AdminService)(nil)
)
