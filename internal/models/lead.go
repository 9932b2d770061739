package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/pricing"
)

// LeadStatus is the moderation and market state of a lead.
type LeadStatus string

const (
	LeadStatusUploaded     LeadStatus = "uploaded"
	LeadStatusOnModeration LeadStatus = "on_moderation"
	LeadStatusRejected     LeadStatus = "rejected"
	LeadStatusInMarket     LeadStatus = "in_market"
	LeadStatusArchived     LeadStatus = "archived"
)

// Valid reports whether s is a known status.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusUploaded, LeadStatusOnModeration, LeadStatusRejected, LeadStatusInMarket, LeadStatusArchived:
		return true
	}
	return false
}

// Lead is a phone number with context that can be resold up to pricing.MaxPurchases times.
type Lead struct {
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	OwnerID       *uuid.UUID      `db:"owner_id"`
	BatchID       *uuid.UUID      `db:"batch_id"`
	Comment       *string         `db:"comment"`
	Region        *string         `db:"region"`
	Niche         *string         `db:"niche"`
	Phone         string          `db:"phone"`
	Status        LeadStatus      `db:"status"`
	OwnerReward   decimal.Decimal `db:"owner_reward"`
	PurchaseCount int             `db:"purchase_count"`
	IsArchived    bool            `db:"is_archived"`
	ID            uuid.UUID       `db:"id"`
}

// OwnedBy reports whether accountID uploaded the lead.
func (l *Lead) OwnedBy(accountID uuid.UUID) bool {
	return l.OwnerID != nil && *l.OwnerID == accountID
}

// RecordSale advances the lead by one sale. Archival flag and status are
// always recomputed together from the purchase count.
func (l *Lead) RecordSale(price decimal.Decimal) {
	l.PurchaseCount++
	l.OwnerReward = l.OwnerReward.Add(price)
	l.IsArchived = pricing.IsArchived(l.PurchaseCount)
	if l.IsArchived {
		l.Status = LeadStatusArchived
	}
}

// LeadSeller is the public view of a lead owner shown in the marketplace.
type LeadSeller struct {
	Username   *string          `db:"username"`
	FullName   *string          `db:"full_name"`
	Rating     *decimal.Decimal `db:"rating"`
	TotalSales int              `db:"total_sales"`
	ID         uuid.UUID        `db:"id"`
}

// MarketLead is a lead row joined with its seller for listing.
type MarketLead struct {
	Seller *LeadSeller
	Lead
}
