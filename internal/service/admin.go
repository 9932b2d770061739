package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// AdminLeadQuery filters the administrative lead list
type AdminLeadQuery struct {
	Status    *string
	OwnerID   *uuid.UUID
	Region    *string
	Niche     *string
	Search    *string
	DateFrom  *time.Time
	DateTo    *time.Time
	SortField string
	Order     string
	Page      Page
}

// AdminLeadPage is one page of the administrative lead list
type AdminLeadPage struct {
	Items []LeadView
	Page  Page
	Total int
}

// AdminAccountQuery filters the administrative account list
type AdminAccountQuery struct {
	Search    *string
	SortField string
	Order     string
	Page      Page
}

// AdminAccountPage is one page of accounts with their activity counters
type AdminAccountPage struct {
	Items []models.AccountSummary
	Page  Page
	Total int
}

// AdminLedgerQuery filters the ledger across all accounts
type AdminLedgerQuery struct {
	Type      *string
	AccountID *uuid.UUID
	SortField string
	Order     string
	Page      Page
}

// AdminLedgerPage is one page of ledger entries. Totals cover every entry
// matching the filter, not only the page.
type AdminLedgerPage struct {
	Items  []models.LedgerEntry
	Totals []models.LedgerTotal
	Page   Page
	Total  int
}

// PurgeResult counts the rows removed with a lead
type PurgeResult struct {
	LeadID        uuid.UUID
	Purchases     int64
	LedgerEntries int64
}

// AdjustmentResult is the outcome of a manual balance adjustment
type AdjustmentResult struct {
	Account     *models.Account
	Transaction *models.Transaction
}

// AdminService implements moderation and support operations
type AdminService struct {
	db       *db.DB
	leads    repository.LeadRepository
	accounts repository.AccountRepository
	ledger   repository.TransactionRepository
	stats    repository.StatsRepository
	logger   *slog.Logger
	now      func() time.Time
	schedule pricing.Schedule
}

// NewAdminService creates a new AdminService
func NewAdminService(database *db.DB, schedule pricing.Schedule, logger *slog.Logger) *AdminService {
	return &AdminService{
		db:       database,
		leads:    repository.NewLeadRepository(database),
		accounts: repository.NewAccountRepository(database),
		ledger:   repository.NewTransactionRepository(database),
		stats:    repository.NewStatsRepository(database),
		logger:   logger,
		now:      time.Now,
		schedule: schedule,
	}
}

// ListLeads lists leads in any state. Phones are shown in full.
func (s *AdminService) ListLeads(ctx context.Context, query AdminLeadQuery) (*AdminLeadPage, error) {
	filter := repository.LeadFilter{
		OwnerID:     query.OwnerID,
		Region:      trimmed(query.Region),
		Niche:       trimmed(query.Niche),
		Search:      trimmed(query.Search),
		CreatedFrom: query.DateFrom,
		SortField:   repository.LeadSortCreatedAt,
		Descending:  true,
		Limit:       query.Page.Limit,
		Offset:      query.Page.Offset(),
	}

	if query.Status != nil && *query.Status != "" {
		status := models.LeadStatus(*query.Status)
		if !status.Valid() {
			return nil, newError(ErrCodeInvalidStatus, fmt.Sprintf("unknown lead status %q", *query.Status))
		}
		filter.Status = &status
	}

	if query.SortField != "" {
		field := repository.LeadSortField(query.SortField)
		if !field.Valid() {
			return nil, newError(ErrCodeInvalidRequest, fmt.Sprintf("cannot sort by %q", query.SortField))
		}
		filter.SortField = field
	}

	descending, err := parseOrder(query.Order)
	if err != nil {
		return nil, err
	}
	filter.Descending = descending

	if query.DateTo != nil {
		end := endOfDay(*query.DateTo)
		filter.CreatedTo = &end
	}

	leads, total, err := s.leads.List(ctx, filter)
	if err != nil {
		return nil, internalError("failed to list leads", err)
	}

	items := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		items = append(items, newLeadView(s.schedule, l, true))
	}

	return &AdminLeadPage{Items: items, Page: query.Page, Total: total}, nil
}

// ListAccounts lists accounts with their upload, purchase and ledger counts.
func (s *AdminService) ListAccounts(ctx context.Context, query AdminAccountQuery) (*AdminAccountPage, error) {
	filter := repository.AccountFilter{
		Search:    trimmed(query.Search),
		SortField: repository.AccountSortCreatedAt,
		Limit:     query.Page.Limit,
		Offset:    query.Page.Offset(),
	}

	if query.SortField != "" {
		field := repository.AccountSortField(query.SortField)
		if !field.Valid() {
			return nil, newError(ErrCodeInvalidRequest, fmt.Sprintf("cannot sort accounts by %q", query.SortField))
		}
		filter.SortField = field
	}

	descending, err := parseOrder(query.Order)
	if err != nil {
		return nil, err
	}
	filter.Descending = descending

	accounts, total, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, internalError("failed to list accounts", err)
	}
	return &AdminAccountPage{Items: accounts, Page: query.Page, Total: total}, nil
}

// ListTransactions lists the ledger across all accounts together with per-type
// totals of the same selection.
func (s *AdminService) ListTransactions(ctx context.Context, query AdminLedgerQuery) (*AdminLedgerPage, error) {
	filter := repository.TransactionFilter{
		AccountID: query.AccountID,
		SortField: repository.TransactionSortCreatedAt,
		Limit:     query.Page.Limit,
		Offset:    query.Page.Offset(),
	}

	if query.Type != nil && *query.Type != "" {
		txType := models.TransactionType(*query.Type)
		if !txType.Valid() {
			return nil, newError(ErrCodeInvalidRequest, fmt.Sprintf("unknown transaction type %q", *query.Type))
		}
		filter.Type = &txType
	}

	if query.SortField != "" {
		field := repository.TransactionSortField(query.SortField)
		if !field.Valid() {
			return nil, newError(ErrCodeInvalidRequest, fmt.Sprintf("cannot sort transactions by %q", query.SortField))
		}
		filter.SortField = field
	}

	descending, err := parseOrder(query.Order)
	if err != nil {
		return nil, err
	}
	filter.Descending = descending

	entries, total, err := s.ledger.List(ctx, filter)
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}
	totals, err := s.ledger.TotalsByType(ctx, filter)
	if err != nil {
		return nil, internalError("failed to total transactions", err)
	}

	return &AdminLedgerPage{Items: entries, Totals: totals, Page: query.Page, Total: total}, nil
}

// parseOrder maps asc/desc to a descending flag. Empty means newest first.
func parseOrder(order string) (bool, error) {
	switch strings.ToLower(order) {
	case "", "desc":
		return true, nil
	case "asc":
		return false, nil
	}
	return false, newError(ErrCodeInvalidRequest, fmt.Sprintf("order must be asc or desc, got %q", order))
}

// UpdateLeadStatus overrides the moderation status of a lead. Archival follows
// the purchase count only, so archived is neither a valid target nor a
// state that can be left.
func (s *AdminService) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status models.LeadStatus) (*models.Lead, error) {
	if !status.Valid() || status == models.LeadStatusArchived {
		return nil, newError(ErrCodeInvalidStatus,
			fmt.Sprintf("status must be one of uploaded, on_moderation, rejected, in_market; got %q", status))
	}

	tx, err := s.db.BeginReadCommitted(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	lead, err := s.performStatusUpdate(ctx, repository.NewLeadRepository(tx), leadID, status)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("lead status overridden", "lead_id", lead.ID, "status", lead.Status)
	return lead, nil
}

func (s *AdminService) performStatusUpdate(
	ctx context.Context,
	leadRepo repository.LeadRepository,
	leadID uuid.UUID,
	status models.LeadStatus,
) (*models.Lead, error) {
	lead, err := leadRepo.FindByIDForUpdate(ctx, leadID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newError(ErrCodeLeadNotFound, "lead not found")
	}
	if err != nil {
		return nil, internalError("failed to load lead", err)
	}

	if lead.IsArchived {
		return nil, newError(ErrCodeInvalidStatus, "archived leads cannot change status")
	}

	if err := leadRepo.UpdateStatus(ctx, lead.ID, status); err != nil {
		return nil, internalError("failed to update lead status", err)
	}
	lead.Status = status
	return lead, nil
}

// PurgeLead deletes a lead together with its purchases and the ledger entries
// that reference it. This is the only operation that removes ledger entries.
func (s *AdminService) PurgeLead(ctx context.Context, leadID uuid.UUID) (*PurgeResult, error) {
	tx, err := s.db.BeginReadCommitted(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performPurge(ctx,
		repository.NewLeadRepository(tx),
		repository.NewPurchaseRepository(tx),
		repository.NewTransactionRepository(tx),
		leadID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Warn("lead purged",
		"lead_id", leadID,
		"purchases", result.Purchases,
		"ledger_entries", result.LedgerEntries,
	)
	return result, nil
}

func (s *AdminService) performPurge(
	ctx context.Context,
	leadRepo repository.LeadRepository,
	purchaseRepo repository.PurchaseRepository,
	transactionRepo repository.TransactionRepository,
	leadID uuid.UUID,
) (*PurgeResult, error) {
	if _, err := leadRepo.FindByIDForUpdate(ctx, leadID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, newError(ErrCodeLeadNotFound, "lead not found")
		}
		return nil, internalError("failed to load lead", err)
	}

	purchases, err := purchaseRepo.DeleteByLead(ctx, leadID)
	if err != nil {
		return nil, internalError("failed to delete purchases", err)
	}

	entries, err := transactionRepo.DeleteByLead(ctx, leadID)
	if err != nil {
		return nil, internalError("failed to delete ledger entries", err)
	}

	if err := leadRepo.Delete(ctx, leadID); err != nil {
		return nil, internalError("failed to delete lead", err)
	}

	return &PurgeResult{LeadID: leadID, Purchases: purchases, LedgerEntries: entries}, nil
}

// AdjustBalance applies a signed manual correction and records it in the
// ledger in the same transaction.
func (s *AdminService) AdjustBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, reason string) (*AdjustmentResult, error) {
	if amount.IsZero() {
		return nil, newError(ErrCodeInvalidRequest, "adjustment amount cannot be zero")
	}
	if amount.Exponent() < -2 {
		return nil, newError(ErrCodeInvalidRequest, "adjustment amount has more than two decimal places")
	}

	tx, err := s.db.BeginReadCommitted(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performAdjustment(ctx,
		repository.NewAccountRepository(tx),
		repository.NewTransactionRepository(tx),
		accountID, amount, reason,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("balance adjusted",
		"account_id", accountID,
		"amount", amount.String(),
		"new_balance", result.Account.Balance.String(),
	)
	return result, nil
}

func (s *AdminService) performAdjustment(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	accountID uuid.UUID,
	amount decimal.Decimal,
	reason string,
) (*AdjustmentResult, error) {
	locked, err := accountRepo.LockForUpdate(ctx, []uuid.UUID{accountID})
	if err != nil {
		return nil, internalError("failed to lock account", err)
	}
	account, ok := locked[accountID]
	if !ok {
		return nil, newError(ErrCodeAccountNotFound, "account not found")
	}

	if account.Balance.Add(amount).IsNegative() {
		return nil, insufficientBalance(amount.Neg(), account.Balance)
	}

	newBalance, err := accountRepo.AdjustBalance(ctx, accountID, amount)
	if errors.Is(err, models.ErrNegativeBalance) {
		return nil, insufficientBalance(amount.Neg(), account.Balance)
	}
	if err != nil {
		return nil, internalError("failed to adjust balance", err)
	}
	account.Balance = newBalance

	description := strings.TrimSpace(reason)
	if description == "" {
		description = "Manual balance adjustment"
	}

	entry := &models.Transaction{
		AccountID:   accountID,
		Amount:      amount,
		Type:        models.TransactionTypeAdminAdjustment,
		Description: description,
	}
	if err := transactionRepo.Create(ctx, entry); err != nil {
		return nil, internalError("failed to record adjustment in ledger", err)
	}

	return &AdjustmentResult{Account: account, Transaction: entry}, nil
}

// Stats returns a snapshot of marketplace totals and recent activity.
func (s *AdminService) Stats(ctx context.Context) (*models.MarketStats, error) {
	stats, err := s.stats.Snapshot(ctx, s.now())
	if err != nil {
		return nil, internalError("failed to load stats", err)
	}
	return stats, nil
}
