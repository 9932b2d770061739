package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/repository"
	"github.com/leadexchange/leadmarket/internal/repository/mocks"
)

type marketMocks struct {
	accounts  *mocks.MockAccountRepository
	leads     *mocks.MockLeadRepository
	purchases *mocks.MockPurchaseRepository
}

func newTestMarketService(t *testing.T) (*MarketService, marketMocks) {
	m := marketMocks{
		accounts:  mocks.NewMockAccountRepository(t),
		leads:     mocks.NewMockLeadRepository(t),
		purchases: mocks.NewMockPurchaseRepository(t),
	}
	s := &MarketService{
		accounts:    m.accounts,
		leads:       m.leads,
		purchases:   m.purchases,
		schedule:    testSchedule(t),
		seedBalance: dec("5"),
	}
	return s, m
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestMarketService_MarketFilter(t *testing.T) {
	service, _ := newTestMarketService(t)
	page := Page{Number: 2, Limit: 10}

	tests := []struct {
		name       string
		query      MarketQuery
		wantCounts []int
		wantSort   repository.MarketSort
		wantCode   string
	}{
		{name: "no filters", query: MarketQuery{Page: page}, wantSort: repository.MarketSortNewest},
		{name: "unique bucket", query: MarketQuery{Bucket: strPtr("unique"), Page: page}, wantCounts: []int{0}, wantSort: repository.MarketSortNewest},
		{name: "secondary bucket", query: MarketQuery{Bucket: strPtr("secondary"), Page: page}, wantCounts: []int{1, 2}, wantSort: repository.MarketSortNewest},
		{name: "price range", query: MarketQuery{PriceMin: decPtr("0.5"), PriceMax: decPtr("1.0"), Sort: "price_low", Page: page}, wantCounts: []int{1, 2}, wantSort: repository.MarketSortPriceLow},
		{name: "price range intersected with bucket", query: MarketQuery{PriceMax: decPtr("1.0"), Bucket: strPtr("2"), Page: page}, wantCounts: []int{2}, wantSort: repository.MarketSortNewest},
		{name: "disjoint price and bucket", query: MarketQuery{PriceMin: decPtr("1.5"), Bucket: strPtr("secondary"), Page: page}, wantCounts: []int{}, wantSort: repository.MarketSortNewest},
		{name: "price range matching nothing", query: MarketQuery{PriceMin: decPtr("3"), Page: page}, wantCounts: []int{}, wantSort: repository.MarketSortNewest},
		{name: "unknown bucket", query: MarketQuery{Bucket: strPtr("third"), Page: page}, wantCode: ErrCodeInvalidRequest},
		{name: "unknown sort", query: MarketQuery{Sort: "random", Page: page}, wantCode: ErrCodeInvalidRequest},
		{name: "inverted price range", query: MarketQuery{PriceMin: decPtr("2"), PriceMax: decPtr("1"), Page: page}, wantCode: ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := service.marketFilter(tt.query)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSort, filter.Sort)
			assert.Equal(t, 10, filter.Limit)
			assert.Equal(t, 10, filter.Offset)
			if tt.wantCounts == nil {
				assert.Nil(t, filter.PurchaseCounts)
			} else {
				assert.Equal(t, tt.wantCounts, filter.PurchaseCounts)
			}
		})
	}
}

func TestMarketService_MarketFilter_Dates(t *testing.T) {
	service, _ := newTestMarketService(t)

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	filter, err := service.marketFilter(MarketQuery{
		DateFrom: &from,
		DateTo:   &to,
		Region:   strPtr("  "),
		Niche:    strPtr(" auto "),
		Page:     Page{Number: 1, Limit: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, from, *filter.CreatedFrom)
	assert.Equal(t, time.Date(2026, 4, 10, 23, 59, 59, 999999999, time.UTC), *filter.CreatedTo)
	assert.Nil(t, filter.Region)
	assert.Equal(t, "auto", *filter.Niche)

	_, err = service.marketFilter(MarketQuery{DateFrom: &to, DateTo: &from, Page: Page{Number: 1, Limit: 20}})
	assert.Equal(t, ErrCodeInvalidRequest, ErrorCode(err))
}

func TestMarketService_ListMarket(t *testing.T) {
	service, m := newTestMarketService(t)
	ctx := context.Background()

	identity := models.Identity{ExternalID: "42"}
	viewer := &models.Account{ID: uuid.New(), ExternalID: "42"}
	seller := &models.LeadSeller{ID: uuid.New(), TotalSales: 4}

	m.accounts.On("ResolveOrCreate", ctx, identity, decimalEq("5")).Return(viewer, nil)
	m.leads.On("ListMarket", ctx, mock.MatchedBy(func(f repository.MarketFilter) bool {
		return f.ViewerID == viewer.ID && f.Limit == 20
	})).Return([]models.MarketLead{
		{Lead: models.Lead{ID: uuid.New(), Phone: "+79991234567", PurchaseCount: 0}, Seller: seller},
		{Lead: models.Lead{ID: uuid.New(), Phone: "+79035554433", PurchaseCount: 2}},
	}, 7, nil)

	page, err := service.ListMarket(ctx, identity, MarketQuery{Page: Page{Number: 1, Limit: 20}})

	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	require.Len(t, page.Items, 2)

	first := page.Items[0]
	assert.Equal(t, "+7999123****", first.Phone)
	assert.False(t, first.Revealed)
	assert.True(t, first.Price.Equal(dec("2")))
	assert.Equal(t, "unique", first.Status.Label)
	assert.Same(t, seller, first.Seller)

	second := page.Items[1]
	assert.True(t, second.Price.Equal(dec("0.5")))
	assert.Equal(t, "2 of 3", second.Status.Label)
	assert.Equal(t, 1, second.Status.Remaining)
}

func TestMarketService_ListMarket_RequiresIdentity(t *testing.T) {
	service, _ := newTestMarketService(t)

	_, err := service.ListMarket(context.Background(), models.Identity{ExternalID: "  "}, MarketQuery{})
	assert.Equal(t, ErrCodeIdentityRequired, ErrorCode(err))
}

func TestMarketService_GetLead(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{ExternalID: "42"}
	viewerID, ownerID := uuid.New(), uuid.New()

	t.Run("stranger sees masked phone", func(t *testing.T) {
		service, m := newTestMarketService(t)
		lead := &models.Lead{ID: uuid.New(), Phone: "+79991234567", Status: models.LeadStatusInMarket, OwnerID: &ownerID, PurchaseCount: 1}

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(&models.Account{ID: viewerID}, nil)
		m.leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		m.purchases.On("Exists", ctx, lead.ID, viewerID).Return(false, nil)
		m.accounts.On("FindByID", ctx, ownerID).Return(&models.Account{ID: ownerID, Username: strPtr("seller1"), TotalSales: 9}, nil)

		view, err := service.GetLead(ctx, identity, lead.ID)

		require.NoError(t, err)
		assert.Equal(t, "+7999123****", view.Phone)
		assert.True(t, view.Price.Equal(dec("1")))
		assert.Equal(t, "seller1", *view.Seller.Username)
		assert.Equal(t, 9, view.Seller.TotalSales)
	})

	t.Run("buyer sees full phone of archived lead", func(t *testing.T) {
		service, m := newTestMarketService(t)
		lead := &models.Lead{ID: uuid.New(), Phone: "+79991234567", Status: models.LeadStatusArchived, IsArchived: true, PurchaseCount: 3}

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(&models.Account{ID: viewerID}, nil)
		m.leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		m.purchases.On("Exists", ctx, lead.ID, viewerID).Return(true, nil)

		view, err := service.GetLead(ctx, identity, lead.ID)

		require.NoError(t, err)
		assert.Equal(t, "+79991234567", view.Phone)
		assert.True(t, view.Revealed)
		assert.Nil(t, view.Price)
		assert.Nil(t, view.Seller)
	})

	t.Run("owner sees own lead under moderation", func(t *testing.T) {
		service, m := newTestMarketService(t)
		lead := &models.Lead{ID: uuid.New(), Phone: "+79991234567", Status: models.LeadStatusOnModeration, OwnerID: &viewerID}

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(&models.Account{ID: viewerID}, nil)
		m.leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		m.accounts.On("FindByID", ctx, viewerID).Return(&models.Account{ID: viewerID}, nil)

		view, err := service.GetLead(ctx, identity, lead.ID)

		require.NoError(t, err)
		assert.True(t, view.Revealed)
	})

	t.Run("stranger cannot see lead under moderation", func(t *testing.T) {
		service, m := newTestMarketService(t)
		lead := &models.Lead{ID: uuid.New(), Phone: "+79991234567", Status: models.LeadStatusOnModeration, OwnerID: &ownerID}

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(&models.Account{ID: viewerID}, nil)
		m.leads.On("FindByID", ctx, lead.ID).Return(lead, nil)
		m.purchases.On("Exists", ctx, lead.ID, viewerID).Return(false, nil)

		_, err := service.GetLead(ctx, identity, lead.ID)
		assert.Equal(t, ErrCodeLeadNotFound, ErrorCode(err))
	})

	t.Run("missing lead", func(t *testing.T) {
		service, m := newTestMarketService(t)
		leadID := uuid.New()

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(&models.Account{ID: viewerID}, nil)
		m.leads.On("FindByID", ctx, leadID).Return(nil, models.ErrNotFound)

		_, err := service.GetLead(ctx, identity, leadID)
		assert.Equal(t, ErrCodeLeadNotFound, ErrorCode(err))
	})

	t.Run("account store down", func(t *testing.T) {
		service, m := newTestMarketService(t)

		m.accounts.On("ResolveOrCreate", ctx, identity, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := service.GetLead(ctx, identity, uuid.New())
		assert.Equal(t, ErrCodeInternalError, ErrorCode(err))
	})
}

func TestMarketService_Pricing(t *testing.T) {
	service, _ := newTestMarketService(t)

	info := service.Pricing()
	assert.Equal(t, 3, info.MaxPurchases)
	assert.True(t, info.MaxOwnerReward.Equal(dec("3.5")))
	require.Len(t, info.Schedule, 3)
	assert.True(t, info.Schedule[0].Equal(dec("2")))
}
