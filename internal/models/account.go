package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a marketplace participant. The same account uploads and buys leads.
type Account struct {
	CreatedAt  time.Time        `db:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at"`
	Username   *string          `db:"username"`
	FullName   *string          `db:"full_name"`
	Rating     *decimal.Decimal `db:"rating"`
	ExternalID string           `db:"external_id"`
	Balance    decimal.Decimal  `db:"balance"`
	TotalSales int              `db:"total_sales"`
	ID         uuid.UUID        `db:"id"`
}

// DisplayName returns the best human readable name for the account.
func (a *Account) DisplayName() string {
	if a.FullName != nil && *a.FullName != "" {
		return *a.FullName
	}
	if a.Username != nil && *a.Username != "" {
		return *a.Username
	}
	return "seller"
}

// AccountSummary is an account with its activity counters, as shown to administrators.
type AccountSummary struct {
	Account
	Uploads       int
	Purchases     int
	LedgerEntries int
}

// Identity is the caller as resolved by the authentication layer. ExternalID is
// the opaque id issued by the identity provider (a Telegram user id in production).
type Identity struct {
	ExternalID string
	Username   string
	FullName   string
}
