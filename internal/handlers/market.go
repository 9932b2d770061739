package handlers

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/service"
)

// ListMarket handles GET /api/v1/market
func (h *Handler) ListMarket(
	ctx context.Context,
	request api.ListMarketRequestObject,
) (api.ListMarketResponseObject, error) {
	params := request.Params

	page, err := service.NewPage(params.Page, params.Limit)
	if err != nil {
		status, body := h.errorResponse("list market", err)
		return api.ListMarketdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	priceMin, err := optionalMoney(params.PriceMin)
	if err != nil {
		status, body := badRequest("price_min: " + err.Error())
		return api.ListMarketdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}
	priceMax, err := optionalMoney(params.PriceMax)
	if err != nil {
		status, body := badRequest("price_max: " + err.Error())
		return api.ListMarketdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	query := service.MarketQuery{
		Region:   params.Region,
		Niche:    params.Niche,
		PriceMin: priceMin,
		PriceMax: priceMax,
		DateFrom: optionalDate(params.DateFrom),
		DateTo:   optionalDate(params.DateTo),
		Page:     page,
	}
	if params.Bucket != nil {
		bucket := string(*params.Bucket)
		query.Bucket = &bucket
	}
	if params.Sort != nil {
		query.Sort = string(*params.Sort)
	}

	result, err := h.market.ListMarket(ctx, identity(ctx), query)
	if err != nil {
		status, body := h.errorResponse("list market", err)
		return api.ListMarketdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.ListMarket200JSONResponse{
		Items:      toAPILeads(result.Items),
		Pagination: pagination(result.Page, result.Total),
	}, nil
}

// GetLead handles GET /api/v1/leads/{leadId}
func (h *Handler) GetLead(
	ctx context.Context,
	request api.GetLeadRequestObject,
) (api.GetLeadResponseObject, error) {
	leadID, err := parseLeadID(request.LeadId)
	if err != nil {
		status, body := notFound(api.ErrorCodeLeadNotFound, "lead not found")
		//nolint:nilerr // Returning 404 response object, not propagating error
		return api.GetLeaddefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	view, err := h.market.GetLead(ctx, identity(ctx), leadID)
	if err != nil {
		status, body := h.errorResponse("get lead", err)
		return api.GetLeaddefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.GetLead200JSONResponse(toAPILead(*view)), nil
}

// GetPricing handles GET /api/v1/pricing
func (h *Handler) GetPricing(
	_ context.Context,
	_ api.GetPricingRequestObject,
) (api.GetPricingResponseObject, error) {
	info := h.market.Pricing()

	schedule := make([]api.Money, 0, len(info.Schedule))
	for _, p := range info.Schedule {
		schedule = append(schedule, formatMoney(p))
	}

	return api.GetPricing200JSONResponse{
		Schedule:       schedule,
		MaxPurchases:   info.MaxPurchases,
		MaxOwnerReward: formatMoney(info.MaxOwnerReward),
	}, nil
}
