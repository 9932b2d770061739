package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit         TransactionType = "deposit"
	TransactionTypeWithdraw        TransactionType = "withdraw"
	TransactionTypePurchase        TransactionType = "purchase"
	TransactionTypeSaleReward      TransactionType = "sale_reward"
	TransactionTypeUploadReward    TransactionType = "upload_reward"
	TransactionTypeAdminAdjustment TransactionType = "admin_adjustment"
)

// Valid reports whether t is a known ledger entry type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypePurchase,
		TransactionTypeSaleReward, TransactionTypeUploadReward, TransactionTypeAdminAdjustment:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry. The amounts of an account's
// entries sum to its balance minus the seed balance it was created with.
type Transaction struct {
	CreatedAt   time.Time       `db:"created_at"`
	LeadID      *uuid.UUID      `db:"lead_id"`
	Description string          `db:"description"`
	Type        TransactionType `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	ID          uuid.UUID       `db:"id"`
	AccountID   uuid.UUID       `db:"account_id"`
}

// LedgerEntry is a transaction joined with its account and, when it has one,
// the lead it references.
type LedgerEntry struct {
	Transaction
	AccountUsername   *string
	LeadPhone         *string
	AccountExternalID string
}

// LedgerTotal aggregates the entries of one type.
type LedgerTotal struct {
	Type  TransactionType
	Sum   decimal.Decimal
	Count int
}

// IdempotencyKey tracks processed requests to prevent duplicate purchases and uploads.
// Scope is the caller identity, so two users may reuse the same key.
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	Scope          string    `db:"scope"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
