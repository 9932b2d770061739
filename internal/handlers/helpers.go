package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/middleware"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/service"
)

// ID prefixes for API responses
const (
	PrefixLead        = "lead_"
	PrefixAccount     = "acct_"
	PrefixPurchase    = "pur_"
	PrefixBatch       = "batch_"
	PrefixTransaction = "txn_"
)

func formatLeadID(id uuid.UUID) string {
	return PrefixLead + id.String()
}

func formatAccountID(id uuid.UUID) string {
	return PrefixAccount + id.String()
}

func formatPurchaseID(id uuid.UUID) string {
	return PrefixPurchase + id.String()
}

func formatBatchID(id uuid.UUID) string {
	return PrefixBatch + id.String()
}

func formatTransactionID(id uuid.UUID) string {
	return PrefixTransaction + id.String()
}

func parseLeadID(id string) (uuid.UUID, error) {
	return parseIDWithPrefix(id, PrefixLead, "lead")
}

func parseAccountID(id string) (uuid.UUID, error) {
	return parseIDWithPrefix(id, PrefixAccount, "account")
}

func parseIDWithPrefix(id, prefix, typeName string) (uuid.UUID, error) {
	if !strings.HasPrefix(id, prefix) {
		return uuid.Nil, fmt.Errorf("invalid %s ID format: missing %s prefix", typeName, prefix)
	}

	uuidStr := strings.TrimPrefix(id, prefix)
	parsed, err := uuid.Parse(uuidStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID format: %w", typeName, err)
	}

	return parsed, nil
}

// identity returns the caller identity placed in the context by the identity
// middleware. A missing identity is passed on as empty; the services reject it.
func identity(ctx context.Context) models.Identity {
	id, _ := middleware.IdentityFrom(ctx)
	return id
}

func formatMoney(d decimal.Decimal) api.Money {
	return d.StringFixed(2)
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

func optionalMoney(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseMoney(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func pagination(page service.Page, total int) api.Pagination {
	return api.Pagination{
		Page:       page.Number,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}
}

func toAPIAccount(a *models.Account) api.Account {
	out := api.Account{
		AccountId:  formatAccountID(a.ID),
		ExternalId: a.ExternalID,
		Username:   a.Username,
		FullName:   a.FullName,
		Balance:    formatMoney(a.Balance),
		TotalSales: a.TotalSales,
		CreatedAt:  a.CreatedAt,
	}
	if a.Rating != nil {
		rating := a.Rating.StringFixed(2)
		out.Rating = &rating
	}
	return out
}

func toAPILead(view service.LeadView) api.Lead {
	l := view.Lead
	out := api.Lead{
		LeadId:        formatLeadID(l.ID),
		Phone:         view.Phone,
		PhoneRevealed: view.Revealed,
		Region:        l.Region,
		Niche:         l.Niche,
		Comment:       l.Comment,
		Status:        api.LeadStatus(l.Status),
		PurchaseCount: l.PurchaseCount,
		IsArchived:    l.IsArchived,
		OwnerReward:   formatMoney(l.OwnerReward),
		PurchaseStatus: api.PurchaseLabel{
			Label:     view.Status.Label,
			IsUnique:  view.Status.IsUnique,
			Remaining: view.Status.Remaining,
		},
		CreatedAt: l.CreatedAt,
	}
	if view.Price != nil {
		price := formatMoney(*view.Price)
		out.Price = &price
	}
	if s := view.Seller; s != nil {
		seller := api.Seller{
			AccountId:  formatAccountID(s.ID),
			Username:   s.Username,
			TotalSales: s.TotalSales,
		}
		if s.Rating != nil {
			rating := s.Rating.StringFixed(2)
			seller.Rating = &rating
		}
		out.Seller = &seller
	}
	return out
}

func toAPILeads(views []service.LeadView) []api.Lead {
	out := make([]api.Lead, 0, len(views))
	for _, v := range views {
		out = append(out, toAPILead(v))
	}
	return out
}

func toAPITransaction(t *models.Transaction) api.Transaction {
	out := api.Transaction{
		TransactionId: formatTransactionID(t.ID),
		Type:          api.TransactionType(t.Type),
		Amount:        formatMoney(t.Amount),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
	if t.LeadID != nil {
		leadID := formatLeadID(*t.LeadID)
		out.LeadId = &leadID
	}
	return out
}

// errorResponse maps an error returned by a service to an HTTP status and
// body. Anything that is not a ServiceError, and internal errors, are logged
// and reported without detail.
func (h *Handler) errorResponse(operation string, err error) (int, api.Error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("unexpected error", "operation", operation, "error", err)
		return http.StatusInternalServerError, api.Error{
			Error:   api.ErrorCodeInternalError,
			Message: "internal error",
		}
	}

	return statusForCode(svcErr.Code), api.Error{
		Error:   api.ErrorCode(svcErr.Code),
		Message: svcErr.Message,
	}
}

func badRequest(message string) (int, api.Error) {
	return http.StatusBadRequest, api.Error{Error: api.ErrorCodeInvalidRequest, Message: message}
}

func notFound(code api.ErrorCode, message string) (int, api.Error) {
	return http.StatusNotFound, api.Error{Error: code, Message: message}
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeIdentityRequired:
		return http.StatusUnauthorized
	case service.ErrCodeLeadNotFound, service.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case service.ErrCodeInsufficientBalance:
		return http.StatusPaymentRequired
	case service.ErrCodeLeadUnavailable, service.ErrCodeLeadSoldOut,
		service.ErrCodeAlreadyPurchased, service.ErrCodeSelfPurchase:
		return http.StatusConflict
	case service.ErrCodeInputTooLarge:
		return http.StatusRequestEntityTooLarge
	case service.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case service.ErrCodeInvalidRequest, service.ErrCodeEmptyInput,
		service.ErrCodeNoPhones, service.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}
