package handlers

import (
	"context"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/service"
)

// AdminListLeads handles GET /api/v1/admin/leads
func (h *Handler) AdminListLeads(
	ctx context.Context,
	request api.AdminListLeadsRequestObject,
) (api.AdminListLeadsResponseObject, error) {
	params := request.Params

	page, err := service.NewPage(params.Page, params.Limit)
	if err != nil {
		status, body := h.errorResponse("admin list leads", err)
		return api.AdminListLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	query := service.AdminLeadQuery{
		Region:   params.Region,
		Niche:    params.Niche,
		Search:   params.Search,
		DateFrom: optionalDate(params.DateFrom),
		DateTo:   optionalDate(params.DateTo),
		Page:     page,
	}
	if params.Status != nil {
		status := string(*params.Status)
		query.Status = &status
	}
	if params.OwnerId != nil {
		ownerID, err := parseAccountID(*params.OwnerId)
		if err != nil {
			status, body := badRequest(err.Error())
			return api.AdminListLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
		}
		query.OwnerID = &ownerID
	}
	if params.SortBy != nil {
		query.SortField = string(*params.SortBy)
	}
	if params.Order != nil {
		query.Order = string(*params.Order)
	}

	result, err := h.admin.ListLeads(ctx, query)
	if err != nil {
		status, body := h.errorResponse("admin list leads", err)
		return api.AdminListLeadsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.AdminListLeads200JSONResponse{
		Items:      toAPILeads(result.Items),
		Pagination: pagination(result.Page, result.Total),
	}, nil
}

// AdminListAccounts handles GET /api/v1/admin/accounts
func (h *Handler) AdminListAccounts(
	ctx context.Context,
	request api.AdminListAccountsRequestObject,
) (api.AdminListAccountsResponseObject, error) {
	params := request.Params

	page, err := service.NewPage(params.Page, params.Limit)
	if err != nil {
		status, body := h.errorResponse("admin list accounts", err)
		return api.AdminListAccountsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	query := service.AdminAccountQuery{Search: params.Search, Page: page}
	if params.SortBy != nil {
		query.SortField = string(*params.SortBy)
	}
	if params.Order != nil {
		query.Order = string(*params.Order)
	}

	result, err := h.admin.ListAccounts(ctx, query)
	if err != nil {
		status, body := h.errorResponse("admin list accounts", err)
		return api.AdminListAccountsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	items := make([]api.AdminAccount, 0, len(result.Items))
	for i := range result.Items {
		summary := &result.Items[i]
		items = append(items, api.AdminAccount{
			Account:       toAPIAccount(&summary.Account),
			Uploads:       summary.Uploads,
			Purchases:     summary.Purchases,
			LedgerEntries: summary.LedgerEntries,
		})
	}

	return api.AdminListAccounts200JSONResponse{
		Items:      items,
		Pagination: pagination(result.Page, result.Total),
	}, nil
}

// AdminListTransactions handles GET /api/v1/admin/transactions
func (h *Handler) AdminListTransactions(
	ctx context.Context,
	request api.AdminListTransactionsRequestObject,
) (api.AdminListTransactionsResponseObject, error) {
	params := request.Params

	page, err := service.NewPage(params.Page, params.Limit)
	if err != nil {
		status, body := h.errorResponse("admin list transactions", err)
		return api.AdminListTransactionsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	query := service.AdminLedgerQuery{Page: page}
	if params.Type != nil {
		txType := string(*params.Type)
		query.Type = &txType
	}
	if params.AccountId != nil {
		accountID, err := parseAccountID(*params.AccountId)
		if err != nil {
			status, body := badRequest(err.Error())
			return api.AdminListTransactionsdefaultJSONResponse{StatusCode: status, Body: body}, nil
		}
		query.AccountID = &accountID
	}
	if params.SortBy != nil {
		query.SortField = string(*params.SortBy)
	}
	if params.Order != nil {
		query.Order = string(*params.Order)
	}

	result, err := h.admin.ListTransactions(ctx, query)
	if err != nil {
		status, body := h.errorResponse("admin list transactions", err)
		return api.AdminListTransactionsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	items := make([]api.LedgerEntry, 0, len(result.Items))
	for i := range result.Items {
		entry := &result.Items[i]
		items = append(items, api.LedgerEntry{
			Transaction: toAPITransaction(&entry.Transaction),
			AccountId:   formatAccountID(entry.AccountID),
			ExternalId:  entry.AccountExternalID,
			Username:    entry.AccountUsername,
			LeadPhone:   entry.LeadPhone,
		})
	}

	totals := make([]api.LedgerTotal, 0, len(result.Totals))
	for _, total := range result.Totals {
		totals = append(totals, api.LedgerTotal{
			Type:  api.TransactionType(total.Type),
			Sum:   formatMoney(total.Sum),
			Count: total.Count,
		})
	}

	return api.AdminListTransactions200JSONResponse{
		Items:      items,
		Totals:     totals,
		Pagination: pagination(result.Page, result.Total),
	}, nil
}

// AdminUpdateLeadStatus handles PATCH /api/v1/admin/leads/{leadId}
func (h *Handler) AdminUpdateLeadStatus(
	ctx context.Context,
	request api.AdminUpdateLeadStatusRequestObject,
) (api.AdminUpdateLeadStatusResponseObject, error) {
	leadID, err := parseLeadID(request.LeadId)
	if err != nil {
		status, body := notFound(api.ErrorCodeLeadNotFound, "lead not found")
		//nolint:nilerr // Returning 404 response object, not propagating error
		return api.AdminUpdateLeadStatusdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	lead, err := h.admin.UpdateLeadStatus(ctx, leadID, models.LeadStatus(request.Body.Status))
	if err != nil {
		status, body := h.errorResponse("update lead status", err)
		return api.AdminUpdateLeadStatusdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	view := service.LeadView{
		Lead:     *lead,
		Phone:    lead.Phone,
		Revealed: true,
		Status:   pricing.PurchaseStatus(lead.PurchaseCount),
	}
	return api.AdminUpdateLeadStatus200JSONResponse(toAPILead(view)), nil
}

// AdminPurgeLead handles DELETE /api/v1/admin/leads/{leadId}
func (h *Handler) AdminPurgeLead(
	ctx context.Context,
	request api.AdminPurgeLeadRequestObject,
) (api.AdminPurgeLeadResponseObject, error) {
	leadID, err := parseLeadID(request.LeadId)
	if err != nil {
		status, body := notFound(api.ErrorCodeLeadNotFound, "lead not found")
		//nolint:nilerr // Returning 404 response object, not propagating error
		return api.AdminPurgeLeaddefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	result, err := h.admin.PurgeLead(ctx, leadID)
	if err != nil {
		status, body := h.errorResponse("purge lead", err)
		return api.AdminPurgeLeaddefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.AdminPurgeLead200JSONResponse{
		LeadId:               formatLeadID(result.LeadID),
		PurchasesDeleted:     result.Purchases,
		LedgerEntriesDeleted: result.LedgerEntries,
	}, nil
}

// AdminAdjustBalance handles POST /api/v1/admin/accounts/{accountId}/adjustments
func (h *Handler) AdminAdjustBalance(
	ctx context.Context,
	request api.AdminAdjustBalanceRequestObject,
) (api.AdminAdjustBalanceResponseObject, error) {
	accountID, err := parseAccountID(request.AccountId)
	if err != nil {
		status, body := notFound(api.ErrorCodeAccountNotFound, "account not found")
		//nolint:nilerr // Returning 404 response object, not propagating error
		return api.AdminAdjustBalancedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	amount, err := parseMoney(request.Body.Amount)
	if err != nil {
		status, body := badRequest(err.Error())
		return api.AdminAdjustBalancedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	reason := ""
	if request.Body.Reason != nil {
		reason = *request.Body.Reason
	}

	result, err := h.admin.AdjustBalance(ctx, accountID, amount, reason)
	if err != nil {
		status, body := h.errorResponse("adjust balance", err)
		return api.AdminAdjustBalancedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.AdminAdjustBalance200JSONResponse{
		Account:     toAPIAccount(result.Account),
		Transaction: toAPITransaction(result.Transaction),
	}, nil
}

// AdminGetStats handles GET /api/v1/admin/stats
func (h *Handler) AdminGetStats(
	ctx context.Context,
	_ api.AdminGetStatsRequestObject,
) (api.AdminGetStatsResponseObject, error) {
	stats, err := h.admin.Stats(ctx)
	if err != nil {
		status, body := h.errorResponse("stats", err)
		return api.AdminGetStatsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return api.AdminGetStats200JSONResponse{
		Accounts:            stats.Accounts,
		Leads:               stats.Leads,
		LeadsInMarket:       stats.LeadsInMarket,
		LeadsArchived:       stats.LeadsArchived,
		Purchases:           stats.Purchases,
		LedgerEntries:       stats.LedgerEntries,
		BalanceTotal:        formatMoney(stats.BalanceTotal),
		LeadsLastDay:        stats.LeadsLastDay,
		LeadsLastWeek:       stats.LeadsLastWeek,
		PurchasesLastDay:    stats.PurchasesDay,
		PurchasesLastWeek:   stats.PurchasesWeek,
		NewAccountsLastWeek: stats.NewAccountsWeek,
	}, nil
}
