package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/leadexchange/leadmarket/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
)

// replayableRoutes are the POST routes whose outcome a client may safely retry.
var replayableRoutes = map[string]struct{}{
	"/api/v1/purchases":     {},
	"/api/v1/leads/batches": {},
}

// IdempotencyStore is the subset of the idempotency repository the middleware needs
type IdempotencyStore interface {
	Get(ctx context.Context, key, scope, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

// recorder tees everything the wrapped handler writes so it can be persisted.
type recorder struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (rec *recorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *recorder) Write(p []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	rec.buf.Write(p)
	return rec.ResponseWriter.Write(p)
}

// replayRequest identifies a retried call: the caller's key, the identity it
// belongs to and the route it targeted.
type replayRequest struct {
	key   string
	scope string
	route string
}

func replayRequestFrom(r *http.Request) (replayRequest, bool) {
	if r.Method != http.MethodPost {
		return replayRequest{}, false
	}
	route := strings.TrimSuffix(r.URL.Path, "/")
	if _, ok := replayableRoutes[route]; !ok {
		return replayRequest{}, false
	}
	key := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
	if key == "" {
		return replayRequest{}, false
	}
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		return replayRequest{}, false
	}
	return replayRequest{key: key, scope: identity.ExternalID, route: route}, true
}

type replayer struct {
	store  IdempotencyStore
	logger *slog.Logger
	next   http.Handler
}

func (rp *replayer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := replayRequestFrom(r)
	if !ok {
		rp.next.ServeHTTP(w, r)
		return
	}

	prior, err := rp.store.Get(r.Context(), req.key, req.scope, req.route)
	if err != nil {
		rp.logger.Error("idempotency lookup failed, serving request normally",
			"route", req.route, "error", err)
		rp.next.ServeHTTP(w, r)
		return
	}
	if prior != nil {
		rp.replay(w, req, prior)
		return
	}

	rec := &recorder{ResponseWriter: w}
	rp.next.ServeHTTP(rec, r)
	rp.remember(r.Context(), req, rec)
}

func (rp *replayer) replay(w http.ResponseWriter, req replayRequest, prior *models.IdempotencyKey) {
	rp.logger.Debug("replaying stored response",
		"route", req.route, "scope", req.scope, "status", prior.ResponseStatus)

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set(replayedHeader, "true")
	w.WriteHeader(prior.ResponseStatus)
	_, _ = w.Write([]byte(prior.ResponseBody)) //nolint:errcheck // client may be gone
}

// remember persists successful outcomes only; failures stay retryable.
func (rp *replayer) remember(ctx context.Context, req replayRequest, rec *recorder) {
	if rec.status < http.StatusOK || rec.status >= http.StatusMultipleChoices {
		return
	}
	entry := &models.IdempotencyKey{
		Key:            req.key,
		Scope:          req.scope,
		RequestPath:    req.route,
		ResponseStatus: rec.status,
		ResponseBody:   rec.buf.String(),
		CreatedAt:      time.Now(),
	}
	if err := rp.store.Store(ctx, entry); err != nil {
		rp.logger.Error("could not persist idempotent response",
			"route", req.route, "scope", req.scope, "error", err)
	}
}

// Idempotency replays the stored response when a caller repeats a purchase or
// upload with the same Idempotency-Key. Keys are scoped per identity and
// route. It must run inside Identity.
func Idempotency(store IdempotencyStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &replayer{store: store, logger: logger, next: next}
	}
}
