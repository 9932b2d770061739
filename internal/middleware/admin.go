package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// AdminTokenHeader carries the shared secret for administrative routes
const AdminTokenHeader = "X-Admin-Token"

const adminPathPrefix = "/api/v1/admin/"

// AdminToken guards every route under /api/v1/admin/. An empty configured
// token disables the administrative surface entirely.
func AdminToken(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, adminPathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			presented := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				logger.Warn("rejected admin request",
					"path", r.URL.Path,
					"method", r.Method,
					"token_present", presented != "",
				)
				reject(w, http.StatusUnauthorized, "unauthorized", "a valid admin token is required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
