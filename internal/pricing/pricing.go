// Package pricing holds the degressive price schedule for lead resales.
//
// Every place that shows or charges a price goes through a Schedule: the
// marketplace listing, the lead detail view and the purchase transaction.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPurchases is how many times a single lead can be sold before it is archived.
const MaxPurchases = 3

// DefaultSchedule is 1.0, 0.7, 0.3 credits for the first, second and third sale.
var DefaultSchedule = Schedule{
	prices: []decimal.Decimal{
		decimal.RequireFromString("1.0"),
		decimal.RequireFromString("0.7"),
		decimal.RequireFromString("0.3"),
	},
}

// Schedule maps a lead's purchase count to the price of its next sale.
type Schedule struct {
	prices []decimal.Decimal
}

// NewSchedule validates and builds a schedule. It must have exactly
// MaxPurchases positive entries in non-increasing order.
func NewSchedule(prices []decimal.Decimal) (Schedule, error) {
	if len(prices) != MaxPurchases {
		return Schedule{}, fmt.Errorf("price schedule must have %d entries, got %d", MaxPurchases, len(prices))
	}

	for i, p := range prices {
		if !p.IsPositive() {
			return Schedule{}, fmt.Errorf("price at position %d must be positive, got %s", i, p)
		}
		if i > 0 && p.GreaterThan(prices[i-1]) {
			return Schedule{}, fmt.Errorf("price schedule must be non-increasing: %s follows %s", p, prices[i-1])
		}
	}

	out := make([]decimal.Decimal, len(prices))
	copy(out, prices)
	return Schedule{prices: out}, nil
}

// ParseSchedule parses a comma separated list such as "1.0,0.7,0.3".
func ParseSchedule(s string) (Schedule, error) {
	parts := strings.Split(s, ",")
	prices := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		p, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return Schedule{}, fmt.Errorf("invalid price %q: %w", part, err)
		}
		prices = append(prices, p)
	}
	return NewSchedule(prices)
}

// Price returns the price of the next sale for a lead already sold
// purchaseCount times. ok is false once the lead is sold out.
func (s Schedule) Price(purchaseCount int) (price decimal.Decimal, ok bool) {
	if purchaseCount < 0 || purchaseCount >= len(s.prices) {
		return decimal.Zero, false
	}
	return s.prices[purchaseCount], true
}

// Prices returns a copy of the schedule.
func (s Schedule) Prices() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.prices))
	copy(out, s.prices)
	return out
}

// MaxOwnerReward is the most an uploader can earn from one lead over its lifetime.
func (s Schedule) MaxOwnerReward() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.prices {
		total = total.Add(p)
	}
	return total
}

// PurchaseCountsInRange returns the purchase counts whose next price lies
// within [min, max]. A nil bound is open.
func (s Schedule) PurchaseCountsInRange(min, max *decimal.Decimal) []int {
	counts := make([]int, 0, len(s.prices))
	for i, p := range s.prices {
		if min != nil && p.LessThan(*min) {
			continue
		}
		if max != nil && p.GreaterThan(*max) {
			continue
		}
		counts = append(counts, i)
	}
	return counts
}

func (s Schedule) String() string {
	parts := make([]string, len(s.prices))
	for i, p := range s.prices {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

// IsArchived reports whether a lead with this purchase count is fully resold.
func IsArchived(purchaseCount int) bool {
	return purchaseCount >= MaxPurchases
}

// Available reports whether a lead with this purchase count can still be sold.
func Available(purchaseCount int) bool {
	return purchaseCount < MaxPurchases
}

// CanReupload reports whether an existing lead for the same phone may be
// superseded by a new upload inside the freshness window. With consistent
// state an archived lead always has MaxPurchases sales, so this only admits
// leads left in an inconsistent archived-but-not-sold-out state.
func CanReupload(isArchived bool, purchaseCount int) bool {
	return isArchived && purchaseCount < MaxPurchases
}

// Status describes how exclusive a lead still is.
type Status struct {
	Label     string
	IsUnique  bool
	Remaining int
}

// PurchaseStatus returns "unique" for a lead that was never sold and
// "k of N" otherwise.
func PurchaseStatus(purchaseCount int) Status {
	remaining := MaxPurchases - purchaseCount
	if remaining < 0 {
		remaining = 0
	}

	if purchaseCount == 0 {
		return Status{Label: "unique", IsUnique: true, Remaining: remaining}
	}

	return Status{
		Label:     fmt.Sprintf("%d of %d", purchaseCount, MaxPurchases),
		Remaining: remaining,
	}
}
