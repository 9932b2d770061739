package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/models"
	"github.com/leadexchange/leadmarket/internal/repository"
)

// requireIdentity rejects requests that carry no caller identity. There is no
// fallback account.
func requireIdentity(identity models.Identity) error {
	if strings.TrimSpace(identity.ExternalID) == "" {
		return newError(ErrCodeIdentityRequired, "caller identity is required")
	}
	return nil
}

// resolveAccount finds or lazily creates the caller's account. New accounts
// start with seed and get no ledger entry for it.
func resolveAccount(
	ctx context.Context,
	accounts repository.AccountRepository,
	identity models.Identity,
	seed decimal.Decimal,
) (*models.Account, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	identity.ExternalID = strings.TrimSpace(identity.ExternalID)
	account, err := accounts.ResolveOrCreate(ctx, identity, seed)
	if err != nil {
		return nil, internalError("failed to resolve account", err)
	}
	return account, nil
}
