package handlers

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/service"
)

// UploadLeads handles POST /api/v1/leads/batches
func (h *Handler) UploadLeads(
	ctx context.Context,
	request api.UploadLeadsRequestObject,
) (api.UploadLeadsResponseObject, error) {
	result, err := h.uploads.Upload(ctx, identity(ctx), service.UploadRequest{
		RawText:     request.Body.RawText,
		Niche:       request.Body.Niche,
		Region:      request.Body.Region,
		Description: request.Body.Description,
	})
	if err != nil {
		status, body := h.errorResponse("upload", err)
		return api.UploadLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	schedule := h.market.Pricing()
	leads := make([]api.Lead, 0, len(result.Leads))
	for _, l := range result.Leads {
		view := service.LeadView{
			Lead:     l,
			Phone:    l.Phone,
			Revealed: true,
			Status:   pricing.PurchaseStatus(l.PurchaseCount),
		}
		if len(schedule.Schedule) > 0 {
			price := schedule.Schedule[0]
			view.Price = &price
		}
		leads = append(leads, toAPILead(view))
	}

	duplicates := result.Duplicates
	if duplicates == nil {
		duplicates = []string{}
	}

	return api.UploadLeads201JSONResponse{
		BatchId:            formatBatchID(result.Batch.ID),
		TotalUploaded:      result.Batch.TotalUploaded,
		TotalValid:         result.Batch.TotalValid,
		DuplicatesRejected: result.Batch.DuplicatesRejected(),
		PointsCredited:     formatMoney(result.Batch.PointsCredited),
		Duplicates:         duplicates,
		Leads:              leads,
		Message:            result.Message,
		Balance:            formatMoney(result.Uploader.Balance),
		CreatedAt:          result.Batch.CreatedAt,
	}, nil
}
