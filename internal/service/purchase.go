package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/notify"
	"github.com/leadexchange/leadmarket/internal/phone"
	"github.com/leadexchange/leadmarket/internal/pricing"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// PurchaseService sells leads to buyers and pays their owners
type PurchaseService struct {
	db          *db.DB
	accounts    repository.AccountRepository
	publisher   notify.Publisher
	logger      *slog.Logger
	schedule    pricing.Schedule
	seedBalance decimal.Decimal
}

// PurchaseResult is the outcome of a committed purchase. NextPrice is what
// the following buyer will pay, nil once the lead is archived.
type PurchaseResult struct {
	Lead       *models.Lead
	Purchase   *models.Purchase
	Buyer      *models.Account
	NextPrice  *decimal.Decimal
	Price      decimal.Decimal
	NewBalance decimal.Decimal
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	database *db.DB,
	schedule pricing.Schedule,
	seedBalance decimal.Decimal,
	publisher notify.Publisher,
	logger *slog.Logger,
) *PurchaseService {
	return &PurchaseService{
		db:          database,
		accounts:    repository.NewAccountRepository(database),
		publisher:   publisher,
		logger:      logger,
		schedule:    schedule,
		seedBalance: seedBalance,
	}
}

// Purchase buys a lead for the caller. All balance, ledger, lead and purchase
// effects commit together; the notification goes out after commit.
func (s *PurchaseService) Purchase(ctx context.Context, identity models.Identity, leadID uuid.UUID) (*PurchaseResult, error) {
	// Resolved before the transaction so the buyer row is only ever locked
	// together with the owner row, in id order.
	buyer, err := resolveAccount(ctx, s.accounts, identity, s.seedBalance)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginReadCommitted(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performPurchase(ctx,
		repository.NewLeadRepository(tx),
		repository.NewAccountRepository(tx),
		repository.NewPurchaseRepository(tx),
		repository.NewTransactionRepository(tx),
		buyer.ID, leadID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("lead purchased",
		"lead_id", result.Lead.ID,
		"buyer_id", result.Buyer.ID,
		"price", result.Price.String(),
		"purchase_num", result.Purchase.PurchaseNum,
	)

	s.publisher.EmitPurchase(notify.PurchaseEvent{
		BuyerExternalID: result.Buyer.ExternalID,
		LeadPhone:       result.Lead.Phone,
		Price:           result.Price,
		NewBalance:      result.NewBalance,
	})

	return result, nil
}

// performPurchase checks every precondition against locked rows, then applies
// the effects. Any error leaves the caller to roll back.
func (s *PurchaseService) performPurchase(
	ctx context.Context,
	leadRepo repository.LeadRepository,
	accountRepo repository.AccountRepository,
	purchaseRepo repository.PurchaseRepository,
	transactionRepo repository.TransactionRepository,
	buyerID, leadID uuid.UUID,
) (*PurchaseResult, error) {
	lead, err := leadRepo.FindByIDForUpdate(ctx, leadID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newError(ErrCodeLeadNotFound, "lead not found")
	}
	if err != nil {
		return nil, internalError("failed to load lead", err)
	}

	if lead.Status != models.LeadStatusInMarket {
		if lead.Status == models.LeadStatusArchived {
			return nil, newError(ErrCodeLeadSoldOut, "lead has already been resold the maximum number of times")
		}
		return nil, newError(ErrCodeLeadUnavailable, "lead is not available for purchase")
	}

	if lead.IsArchived || !pricing.Available(lead.PurchaseCount) {
		return nil, newError(ErrCodeLeadSoldOut, "lead has already been resold the maximum number of times")
	}

	if lead.OwnedBy(buyerID) {
		return nil, newError(ErrCodeSelfPurchase, "cannot buy your own lead")
	}

	bought, err := purchaseRepo.Exists(ctx, lead.ID, buyerID)
	if err != nil {
		return nil, internalError("failed to check previous purchases", err)
	}
	if bought {
		return nil, newError(ErrCodeAlreadyPurchased, "you have already purchased this lead")
	}

	price, ok := s.schedule.Price(lead.PurchaseCount)
	if !ok {
		return nil, newError(ErrCodeLeadUnavailable, "lead has no price at its current purchase count")
	}

	lockIDs := []uuid.UUID{buyerID}
	if lead.OwnerID != nil {
		lockIDs = append(lockIDs, *lead.OwnerID)
	}
	locked, err := accountRepo.LockForUpdate(ctx, lockIDs)
	if err != nil {
		return nil, internalError("failed to lock accounts", err)
	}

	buyer, ok := locked[buyerID]
	if !ok {
		return nil, newError(ErrCodeAccountNotFound, "buyer account not found")
	}
	if buyer.Balance.LessThan(price) {
		return nil, insufficientBalance(price, buyer.Balance)
	}

	newBalance, err := accountRepo.AdjustBalance(ctx, buyerID, price.Neg())
	if errors.Is(err, models.ErrNegativeBalance) {
		return nil, insufficientBalance(price, buyer.Balance)
	}
	if err != nil {
		return nil, internalError("failed to debit buyer", err)
	}
	buyer.Balance = newBalance

	saleNum := lead.PurchaseCount + 1
	saleLabel := fmt.Sprintf("sale %d of %d", saleNum, pricing.MaxPurchases)
	lastFour := phone.LastFour(lead.Phone)

	if err := transactionRepo.Create(ctx, &models.Transaction{
		AccountID:   buyerID,
		Amount:      price.Neg(),
		Type:        models.TransactionTypePurchase,
		LeadID:      &lead.ID,
		Description: fmt.Sprintf("Purchased lead ***%s (%s)", lastFour, saleLabel),
	}); err != nil {
		return nil, internalError("failed to record purchase in ledger", err)
	}

	if lead.OwnerID != nil && *lead.OwnerID != buyerID {
		ownerID := *lead.OwnerID
		if _, ok := locked[ownerID]; !ok {
			return nil, internalError("lead owner account missing", fmt.Errorf("account %s", ownerID))
		}

		if _, err := accountRepo.AdjustBalance(ctx, ownerID, price); err != nil {
			return nil, internalError("failed to credit owner", err)
		}
		if err := accountRepo.IncrementSales(ctx, ownerID); err != nil {
			return nil, internalError("failed to update owner sales", err)
		}
		if err := transactionRepo.Create(ctx, &models.Transaction{
			AccountID:   ownerID,
			Amount:      price,
			Type:        models.TransactionTypeSaleReward,
			LeadID:      &lead.ID,
			Description: fmt.Sprintf("Lead ***%s sold (%s)", lastFour, saleLabel),
		}); err != nil {
			return nil, internalError("failed to record sale reward in ledger", err)
		}
	}

	lead.RecordSale(price)
	if err := leadRepo.ApplySale(ctx, lead); err != nil {
		return nil, internalError("failed to update lead", err)
	}

	purchase := &models.Purchase{
		LeadID:      lead.ID,
		BuyerID:     buyerID,
		Price:       price,
		PurchaseNum: lead.PurchaseCount,
	}
	err = purchaseRepo.Create(ctx, purchase)
	if errors.Is(err, models.ErrDuplicatePurchase) {
		return nil, newError(ErrCodeAlreadyPurchased, "you have already purchased this lead")
	}
	if err != nil {
		return nil, internalError("failed to record purchase", err)
	}

	return &PurchaseResult{
		Lead:       lead,
		Purchase:   purchase,
		Buyer:      buyer,
		NextPrice:  newLeadView(s.schedule, *lead, true).Price,
		Price:      price,
		NewBalance: newBalance,
	}, nil
}

func insufficientBalance(need, have decimal.Decimal) *ServiceError {
	return newError(ErrCodeInsufficientBalance,
		fmt.Sprintf("insufficient balance: need %s, have %s", need.StringFixed(2), have.StringFixed(2)))
}
