// Package handlers implements HTTP handlers for the lead market API.
package handlers

import (
	"log/slog"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	purchases     service.Purchaser
	uploads       service.Uploader
	market        service.MarketBrowser
	accounts      service.AccountReader
	admin         service.LeadAdministrator
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	purchases service.Purchaser,
	uploads service.Uploader,
	market service.MarketBrowser,
	accounts service.AccountReader,
	admin service.LeadAdministrator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		purchases:     purchases,
		uploads:       uploads,
		market:        market,
		accounts:      accounts,
		admin:         admin,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
