package handlers

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/service"
)

// GetMe handles GET /api/v1/me
func (h *Handler) GetMe(
	ctx context.Context,
	_ api.GetMeRequestObject,
) (api.GetMeResponseObject, error) {
	account, err := h.accounts.Resolve(ctx, identity(ctx))
	if err != nil {
		status, body := h.errorResponse("resolve account", err)
		return api.GetMedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.GetMe200JSONResponse(toAPIAccount(account)), nil
}

// ListMyTransactions handles GET /api/v1/me/transactions
func (h *Handler) ListMyTransactions(
	ctx context.Context,
	request api.ListMyTransactionsRequestObject,
) (api.ListMyTransactionsResponseObject, error) {
	page, err := service.NewPage(request.Params.Page, request.Params.Limit)
	if err != nil {
		status, body := h.errorResponse("list transactions", err)
		return api.ListMyTransactionsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	result, err := h.accounts.Transactions(ctx, identity(ctx), page)
	if err != nil {
		status, body := h.errorResponse("list transactions", err)
		return api.ListMyTransactionsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	items := make([]api.Transaction, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAPITransaction(&result.Items[i]))
	}

	return api.ListMyTransactions200JSONResponse{
		Account:    toAPIAccount(result.Account),
		Items:      items,
		Pagination: pagination(result.Page, result.Total),
	}, nil
}

// ListMyLeads handles GET /api/v1/me/leads
func (h *Handler) ListMyLeads(
	ctx context.Context,
	request api.ListMyLeadsRequestObject,
) (api.ListMyLeadsResponseObject, error) {
	page, err := service.NewPage(request.Params.Page, request.Params.Limit)
	if err != nil {
		status, body := h.errorResponse("list my leads", err)
		return api.ListMyLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	leadsType := api.MyLeadsTypeUploaded
	if request.Params.Type != nil {
		leadsType = *request.Params.Type
	}

	switch leadsType {
	case api.MyLeadsTypeUploaded:
		result, err := h.accounts.UploadedLeads(ctx, identity(ctx), page)
		if err != nil {
			status, body := h.errorResponse("list uploaded leads", err)
			return api.ListMyLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
		}
		uploaded := toAPILeads(result.Items)
		return api.ListMyLeads200JSONResponse{
			Type:       leadsType,
			Uploaded:   &uploaded,
			Pagination: pagination(result.Page, result.Total),
		}, nil

	case api.MyLeadsTypePurchased:
		result, err := h.accounts.PurchasedLeads(ctx, identity(ctx), page)
		if err != nil {
			status, body := h.errorResponse("list purchased leads", err)
			return api.ListMyLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
		}
		purchased := make([]api.PurchasedLead, 0, len(result.Items))
		for _, item := range result.Items {
			view := service.LeadView{
				Lead:     item.Lead,
				Phone:    item.Lead.Phone,
				Revealed: true,
				Status:   pricing.PurchaseStatus(item.Lead.PurchaseCount),
			}
			purchased = append(purchased, api.PurchasedLead{
				PurchaseId:  formatPurchaseID(item.Purchase.ID),
				Lead:        toAPILead(view),
				Price:       formatMoney(item.Purchase.Price),
				PurchaseNum: item.Purchase.PurchaseNum,
				PurchasedAt: item.Purchase.CreatedAt,
			})
		}
		return api.ListMyLeads200JSONResponse{
			Type:       leadsType,
			Purchased:  &purchased,
			Pagination: pagination(result.Page, result.Total),
		}, nil

	default:
		status, body := badRequest("type must be uploaded or purchased")
		return api.ListMyLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}
}
