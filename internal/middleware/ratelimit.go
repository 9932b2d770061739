package middleware

import (
	"log/slog"
	"net"
	"net/http"
)

// Allower decides whether a request keyed by caller may proceed
type Allower interface {
	Allow(key string) bool
}

// RateLimit throttles mutating requests per caller. Callers are keyed by
// identity when one is present and by remote address otherwise.
func RateLimit(limiter Allower, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			key := rateLimitKey(r)
			if !limiter.Allow(key) {
				logger.Debug("rate limited request", "key", key, "path", r.URL.Path)
				w.Header().Set("Retry-After", "1")
				reject(w, http.StatusTooManyRequests, "rate_limited", "too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func rateLimitKey(r *http.Request) string {
	if identity, ok := IdentityFrom(r.Context()); ok {
		return "user:" + identity.ExternalID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
