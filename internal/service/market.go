package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/phone"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// Market buckets group leads by how many times they were sold.
const (
	BucketUnique    = "unique"
	BucketNew       = "new"
	BucketOnce      = "1"
	BucketTwice     = "2"
	BucketSecondary = "secondary"
)

var bucketCounts = map[string][]int{
	BucketUnique:    {0},
	BucketNew:       {0},
	BucketOnce:      {1},
	BucketTwice:     {2},
	BucketSecondary: {1, 2},
}

// MarketQuery filters the marketplace listing
type MarketQuery struct {
	Region   *string
	Niche    *string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	DateFrom *time.Time
	DateTo   *time.Time
	Bucket   *string
	Sort     string
	Page     Page
}

// LeadView is a lead as shown to one viewer: priced live and masked unless
// the viewer owns or bought it.
type LeadView struct {
	Lead     models.Lead
	Seller   *models.LeadSeller
	Price    *decimal.Decimal
	Phone    string
	Status   pricing.Status
	Revealed bool
}

// MarketPage is one page of the marketplace listing
type MarketPage struct {
	Items []LeadView
	Page  Page
	Total int
}

// PricingInfo describes the price schedule
type PricingInfo struct {
	Schedule       []decimal.Decimal
	MaxOwnerReward decimal.Decimal
	MaxPurchases   int
}

// MarketService serves marketplace reads
type MarketService struct {
	accounts    repository.AccountRepository
	leads       repository.LeadRepository
	purchases   repository.PurchaseRepository
	schedule    pricing.Schedule
	seedBalance decimal.Decimal
}

// NewMarketService creates a new MarketService
func NewMarketService(database *db.DB, schedule pricing.Schedule, seedBalance decimal.Decimal) *MarketService {
	return &MarketService{
		accounts:    repository.NewAccountRepository(database),
		leads:       repository.NewLeadRepository(database),
		purchases:   repository.NewPurchaseRepository(database),
		schedule:    schedule,
		seedBalance: seedBalance,
	}
}

// ListMarket returns the leads the caller can buy now.
func (s *MarketService) ListMarket(ctx context.Context, identity models.Identity, query MarketQuery) (*MarketPage, error) {
	viewer, err := resolveAccount(ctx, s.accounts, identity, s.seedBalance)
	if err != nil {
		return nil, err
	}

	filter, err := s.marketFilter(query)
	if err != nil {
		return nil, err
	}
	filter.ViewerID = viewer.ID

	leads, total, err := s.leads.ListMarket(ctx, filter)
	if err != nil {
		return nil, internalError("failed to list market", err)
	}

	items := make([]LeadView, 0, len(leads))
	for _, ml := range leads {
		view := newLeadView(s.schedule, ml.Lead, false)
		view.Seller = ml.Seller
		items = append(items, view)
	}

	return &MarketPage{Items: items, Page: query.Page, Total: total}, nil
}

// marketFilter translates the query into repository terms. The price range
// becomes a set of purchase counts so paging stays exact.
func (s *MarketService) marketFilter(query MarketQuery) (repository.MarketFilter, error) {
	filter := repository.MarketFilter{
		Region: trimmed(query.Region),
		Niche:  trimmed(query.Niche),
		Limit:  query.Page.Limit,
		Offset: query.Page.Offset(),
	}

	switch sort := repository.MarketSort(query.Sort); sort {
	case "":
		filter.Sort = repository.MarketSortNewest
	case repository.MarketSortNewest, repository.MarketSortOldest,
		repository.MarketSortPriceHigh, repository.MarketSortPriceLow:
		filter.Sort = sort
	default:
		return filter, newError(ErrCodeInvalidRequest, fmt.Sprintf("unknown sort %q", query.Sort))
	}

	if query.PriceMin != nil && query.PriceMax != nil && query.PriceMin.GreaterThan(*query.PriceMax) {
		return filter, newError(ErrCodeInvalidRequest, "price_min cannot exceed price_max")
	}
	if query.PriceMin != nil || query.PriceMax != nil {
		filter.PurchaseCounts = s.schedule.PurchaseCountsInRange(query.PriceMin, query.PriceMax)
	}

	if query.Bucket != nil && *query.Bucket != "" {
		counts, ok := bucketCounts[strings.ToLower(*query.Bucket)]
		if !ok {
			return filter, newError(ErrCodeInvalidRequest, fmt.Sprintf("unknown bucket %q", *query.Bucket))
		}
		if filter.PurchaseCounts == nil {
			filter.PurchaseCounts = slices.Clone(counts)
		} else {
			filter.PurchaseCounts = slices.DeleteFunc(filter.PurchaseCounts, func(c int) bool {
				return !slices.Contains(counts, c)
			})
		}
	}

	filter.CreatedFrom = query.DateFrom
	if query.DateTo != nil {
		end := endOfDay(*query.DateTo)
		filter.CreatedTo = &end
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedFrom.After(*filter.CreatedTo) {
		return filter, newError(ErrCodeInvalidRequest, "date_from cannot be after date_to")
	}

	return filter, nil
}

// GetLead returns one lead. Owners and buyers see the full phone; others see
// only leads on sale, masked.
func (s *MarketService) GetLead(ctx context.Context, identity models.Identity, leadID uuid.UUID) (*LeadView, error) {
	viewer, err := resolveAccount(ctx, s.accounts, identity, s.seedBalance)
	if err != nil {
		return nil, err
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newError(ErrCodeLeadNotFound, "lead not found")
	}
	if err != nil {
		return nil, internalError("failed to load lead", err)
	}

	revealed := lead.OwnedBy(viewer.ID)
	if !revealed {
		bought, err := s.purchases.Exists(ctx, lead.ID, viewer.ID)
		if err != nil {
			return nil, internalError("failed to check purchase", err)
		}
		revealed = bought
	}

	if !revealed && lead.Status != models.LeadStatusInMarket && lead.Status != models.LeadStatusArchived {
		return nil, newError(ErrCodeLeadNotFound, "lead not found")
	}

	view := newLeadView(s.schedule, *lead, revealed)

	if lead.OwnerID != nil {
		owner, err := s.accounts.FindByID(ctx, *lead.OwnerID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, internalError("failed to load seller", err)
		}
		if owner != nil {
			view.Seller = &models.LeadSeller{
				ID:         owner.ID,
				Username:   owner.Username,
				FullName:   owner.FullName,
				Rating:     owner.Rating,
				TotalSales: owner.TotalSales,
			}
		}
	}

	return &view, nil
}

// Pricing returns the price schedule.
func (s *MarketService) Pricing() PricingInfo {
	return PricingInfo{
		Schedule:       s.schedule.Prices(),
		MaxOwnerReward: s.schedule.MaxOwnerReward(),
		MaxPurchases:   pricing.MaxPurchases,
	}
}

func newLeadView(schedule pricing.Schedule, lead models.Lead, revealed bool) LeadView {
	view := LeadView{
		Lead:     lead,
		Phone:    lead.Phone,
		Status:   pricing.PurchaseStatus(lead.PurchaseCount),
		Revealed: revealed,
	}
	if !revealed {
		view.Phone = phone.Mask(lead.Phone)
	}
	if !lead.IsArchived {
		if price, ok := schedule.Price(lead.PurchaseCount); ok {
			view.Price = &price
		}
	}
	return view
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
