package handlers

import (
	"context"
	"time"

	"github.com/leadexchange/leadmarket/internal/api"
)

const healthPingTimeout = 2 * time.Second

// GetHealth reports whether the market can reach its database. Orchestrators
// use the 503 to pull the instance out of rotation.
func (h *Handler) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(ctx); err != nil {
		h.logger.Warn("database ping failed", "timeout", healthPingTimeout, "error", err)
		return api.GetHealth503JSONResponse{Status: api.HealthResponseStatusUnhealthy}, nil
	}
	return api.GetHealth200JSONResponse{Status: api.HealthResponseStatusHealthy}, nil
}
