package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/notify"
	"github.com/leadexchange/leadmarket/internal/phone"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// UploadRequest is one batch of raw text submitted by an uploader
type UploadRequest struct {
	Niche       *string
	Region      *string
	Description *string
	RawText     string
}

// UploadResult summarizes a committed upload batch
type UploadResult struct {
	Batch      *models.UploadBatch
	Uploader   *models.Account
	Message    string
	Leads      []models.Lead
	Duplicates []string
}

// UploadService turns raw text into new marketplace leads
type UploadService struct {
	db              *db.DB
	accounts        repository.AccountRepository
	quota           UploadQuota
	publisher       notify.Publisher
	logger          *slog.Logger
	now             func() time.Time
	seedBalance     decimal.Decimal
	freshnessMonths int
	maxUploadBytes  int
}

// NewUploadService creates a new UploadService. quota may be nil.
func NewUploadService(
	database *db.DB,
	seedBalance decimal.Decimal,
	freshnessMonths, maxUploadBytes int,
	quota UploadQuota,
	publisher notify.Publisher,
	logger *slog.Logger,
) *UploadService {
	return &UploadService{
		db:              database,
		accounts:        repository.NewAccountRepository(database),
		quota:           quota,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
		seedBalance:     seedBalance,
		freshnessMonths: freshnessMonths,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Upload extracts phones from the request, drops those blocked by the
// freshness rule and lists the rest for sale. No credit is paid at upload.
func (s *UploadService) Upload(ctx context.Context, identity models.Identity, req UploadRequest) (*UploadResult, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	candidates, err := s.extractCandidates(req.RawText)
	if err != nil {
		return nil, err
	}

	uploader, err := resolveAccount(ctx, s.accounts, identity, s.seedBalance)
	if err != nil {
		return nil, err
	}

	if err := s.checkQuota(ctx, uploader); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginReadCommitted(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performUpload(ctx,
		repository.NewLeadRepository(tx),
		repository.NewUploadBatchRepository(tx),
		repository.NewTransactionRepository(tx),
		uploader, req, candidates,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("upload batch processed",
		"batch_id", result.Batch.ID,
		"uploader_id", uploader.ID,
		"total_uploaded", result.Batch.TotalUploaded,
		"total_valid", result.Batch.TotalValid,
	)

	s.publisher.EmitUpload(notify.UploadEvent{
		UploaderExternalID: uploader.ExternalID,
		TotalValid:         result.Batch.TotalValid,
		Duplicates:         result.Batch.DuplicatesRejected(),
	})

	return result, nil
}

// extractCandidates validates the raw text and returns its distinct
// canonical phones in order of first appearance.
func (s *UploadService) extractCandidates(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newError(ErrCodeEmptyInput, "upload text is empty")
	}
	if s.maxUploadBytes > 0 && len(raw) > s.maxUploadBytes {
		return nil, newError(ErrCodeInputTooLarge,
			fmt.Sprintf("upload text is %d bytes, the limit is %d", len(raw), s.maxUploadBytes))
	}

	var candidates []string
	for _, p := range phone.ExtractAll(raw) {
		if phone.IsCanonical(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, newError(ErrCodeNoPhones, "no valid phone numbers found in the text")
	}
	return candidates, nil
}

// checkQuota fails open when the quota backend is unreachable.
func (s *UploadService) checkQuota(ctx context.Context, uploader *models.Account) error {
	if s.quota == nil {
		return nil
	}

	allowed, err := s.quota.Allow(ctx, uploader.ID.String())
	if err != nil {
		s.logger.Warn("upload quota unavailable, allowing upload", "account_id", uploader.ID, "error", err)
		return nil
	}
	if !allowed {
		return newError(ErrCodeRateLimited, "upload quota exceeded, try again later")
	}
	return nil
}

// performUpload runs the freshness check under per-phone locks and writes the
// batch, its leads and the informational ledger entry.
func (s *UploadService) performUpload(
	ctx context.Context,
	leadRepo repository.LeadRepository,
	batchRepo repository.UploadBatchRepository,
	transactionRepo repository.TransactionRepository,
	uploader *models.Account,
	req UploadRequest,
	candidates []string,
) (*UploadResult, error) {
	if err := leadRepo.LockPhones(ctx, candidates); err != nil {
		return nil, internalError("failed to lock phones", err)
	}

	since := s.now().AddDate(0, -s.freshnessMonths, 0)
	existing, err := leadRepo.FindByPhonesSince(ctx, candidates, since)
	if err != nil {
		return nil, internalError("failed to check existing leads", err)
	}

	blocked := make(map[string]bool, len(existing))
	for _, e := range existing {
		if !pricing.CanReupload(e.IsArchived, e.PurchaseCount) {
			blocked[e.Phone] = true
		}
	}

	var accepted, duplicates []string
	for _, p := range candidates {
		if blocked[p] {
			duplicates = append(duplicates, p)
			continue
		}
		accepted = append(accepted, p)
	}

	batch := &models.UploadBatch{
		UploaderID:     uploader.ID,
		Niche:          req.Niche,
		Region:         req.Region,
		Description:    req.Description,
		RawText:        req.RawText,
		Status:         models.UploadBatchStatusApproved,
		PointsCredited: decimal.Zero,
		TotalUploaded:  len(candidates),
		TotalValid:     len(accepted),
	}
	if err := batchRepo.Create(ctx, batch); err != nil {
		return nil, internalError("failed to create upload batch", err)
	}

	leads := make([]models.Lead, 0, len(accepted))
	for _, p := range accepted {
		lead := models.Lead{
			Phone:       p,
			Comment:     req.Description,
			Region:      req.Region,
			Niche:       req.Niche,
			OwnerID:     &uploader.ID,
			BatchID:     &batch.ID,
			Status:      models.LeadStatusInMarket,
			OwnerReward: decimal.Zero,
		}
		if err := leadRepo.Create(ctx, &lead); err != nil {
			return nil, internalError("failed to create lead", err)
		}
		leads = append(leads, lead)
	}

	if len(accepted) > 0 {
		if err := transactionRepo.Create(ctx, &models.Transaction{
			AccountID:   uploader.ID,
			Amount:      decimal.Zero,
			Type:        models.TransactionTypeUploadReward,
			Description: fmt.Sprintf("Uploaded %d leads. Credits are paid when they are bought", len(accepted)),
		}); err != nil {
			return nil, internalError("failed to record upload in ledger", err)
		}
	}

	return &UploadResult{
		Batch:      batch,
		Uploader:   uploader,
		Message:    uploadMessage(len(accepted), len(duplicates)),
		Leads:      leads,
		Duplicates: duplicates,
	}, nil
}

func uploadMessage(accepted, duplicates int) string {
	if accepted == 0 {
		return fmt.Sprintf("All %d numbers are already in the market. Nothing was added", duplicates)
	}
	msg := fmt.Sprintf("%d leads uploaded. You earn credits each time one of them is bought, nothing is credited now", accepted)
	if duplicates > 0 {
		msg += fmt.Sprintf(". %d duplicates were rejected", duplicates)
	}
	return msg
}
