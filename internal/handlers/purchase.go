package handlers

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/service"
)

// CreatePurchase handles POST /api/v1/purchases
func (h *Handler) CreatePurchase(
	ctx context.Context,
	request api.CreatePurchaseRequestObject,
) (api.CreatePurchaseResponseObject, error) {
	leadID, err := parseLeadID(request.Body.LeadId)
	if err != nil {
		status, body := notFound(api.ErrorCodeLeadNotFound, "lead not found")
		//nolint:nilerr // Returning 404 response object, not propagating error
		return api.CreatePurchasedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	result, err := h.purchases.Purchase(ctx, identity(ctx), leadID)
	if err != nil {
		status, body := h.errorResponse("purchase", err)
		return api.CreatePurchasedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	// The buyer just paid for the lead, so the phone is shown in full.
	view := service.LeadView{
		Lead:     *result.Lead,
		Phone:    result.Lead.Phone,
		Revealed: true,
		Status:   pricing.PurchaseStatus(result.Lead.PurchaseCount),
		Price:    result.NextPrice,
	}

	return api.CreatePurchase201JSONResponse{
		PurchaseId:  formatPurchaseID(result.Purchase.ID),
		Lead:        toAPILead(view),
		Price:       formatMoney(result.Price),
		PurchaseNum: result.Purchase.PurchaseNum,
		Balance:     formatMoney(result.NewBalance),
		CreatedAt:   result.Purchase.CreatedAt,
	}, nil
}
