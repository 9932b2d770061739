package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records one buyer acquiring one lead. PurchaseNum is the 1-based
// position of this sale in the lead's resale sequence.
type Purchase struct {
	CreatedAt   time.Time       `db:"created_at"`
	Price       decimal.Decimal `db:"price"`
	PurchaseNum int             `db:"purchase_num"`
	ID          uuid.UUID       `db:"id"`
	LeadID      uuid.UUID       `db:"lead_id"`
	BuyerID     uuid.UUID       `db:"buyer_id"`
}

// PurchasedLead is a purchase joined with the lead it bought.
type PurchasedLead struct {
	Lead     Lead
	Purchase Purchase
}
