package handlers

import (
	"log/slog"
	"net/http"

	"github.com/leadexchange/leadmarket/internal/api"
	"github.com/leadexchange/leadmarket/internal/config"
	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/middleware"
	"github.com/leadexchange/leadmarket/internal/notify"
	"github.com/leadexchange/leadmarket/internal/ratelimit"
	"github.com/leadexchange/leadmarket/internal/repository"
	"github.com/leadexchange/leadmarket/internal/service"
)

// bodyOverhead is the room left for JSON framing and the optional upload
// fields on top of the raw text limit.
const bodyOverhead = 16 << 10

// NewRouter creates and configures the HTTP router with all routes and middleware.
// A nil quota disables the per-hour upload quota.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	publisher notify.Publisher,
	quota service.UploadQuota,
	logger *slog.Logger,
) (http.Handler, error) {
	market := cfg.Market

	purchaseService := service.NewPurchaseService(database, market.Schedule, market.SeedBalance, publisher, logger)
	uploadService := service.NewUploadService(database, market.SeedBalance, market.FreshnessMonths,
		market.MaxUploadBytes, quota, publisher, logger)
	marketService := service.NewMarketService(database, market.Schedule, market.SeedBalance)
	accountService := service.NewAccountService(database, market.Schedule, market.SeedBalance)
	adminService := service.NewAdminService(database, market.Schedule, logger)

	handler := NewHandler(purchaseService, uploadService, marketService, accountService, adminService, database, logger)
	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			api.WriteRequestError(w, err)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed to write response", "path", r.URL.Path, "error", err)
		},
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter: mux,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			api.WriteRequestError(w, err)
		},
	})

	validator, err := api.RequestValidator(logger)
	if err != nil {
		return nil, err
	}

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	finalHandler = validator(finalHandler)

	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := ratelimit.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		finalHandler = middleware.RateLimit(limiter, logger)(finalHandler)
	}

	finalHandler = middleware.AdminToken(cfg.Admin.Token, logger)(finalHandler)
	finalHandler = middleware.Identity(finalHandler)

	finalHandler = http.MaxBytesHandler(finalHandler, int64(market.MaxUploadBytes)+bodyOverhead)

	return finalHandler, nil
}
