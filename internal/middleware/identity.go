// Package middleware provides HTTP middleware components for the lead market API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/leadexchange/leadmarket/internal/models"
)

// Identity headers set by the authenticating proxy in front of the API
const (
	UserIDHeader       = "X-User-ID"
	UserNameHeader     = "X-User-Name"
	UserFullNameHeader = "X-User-Full-Name"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the caller identity stored in ctx. The second result is
// false when the request carried no user id.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	if !ok || identity.ExternalID == "" {
		return models.Identity{}, false
	}
	return identity, true
}

// Identity copies the identity headers into the request context. Requests
// without a user id pass through unchanged; the services reject them where
// an identity is required.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		externalID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if externalID == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity := models.Identity{
			ExternalID: externalID,
			Username:   strings.TrimPrefix(strings.TrimSpace(r.Header.Get(UserNameHeader)), "@"),
			FullName:   strings.TrimSpace(r.Header.Get(UserFullNameHeader)),
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}
