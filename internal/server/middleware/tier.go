// Package middleware provides HTTP middleware for tier resolution.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// tierKey is the context key for storing the resolved caller tier.
const tierKey ContextKey = "tier"

// TierResolver resolves a raw tier token to an access tier. Resolution never
// fails; bad tokens come back as the free tier.
type TierResolver interface {
	Resolve(token string) types.Tier
}

// TierMiddleware resolves the caller's tier from the Authorization header and
// stores it in the request context. Unlike an auth middleware it never
// rejects: no header, a malformed header, or an invalid token all resolve to
// the free tier.
func TierMiddleware(resolver TierResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tier := types.TierFree

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				// Handle case-insensitive "Bearer" prefix
				parts := strings.Fields(authHeader)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tier = resolver.Resolve(strings.TrimSpace(parts[1]))
				}
			}

			ctx := context.WithValue(r.Context(), tierKey, tier)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TierFromContext extracts the resolved tier from the request context,
// defaulting to free when the middleware did not run.
func TierFromContext(ctx context.Context) types.Tier {
	if tier, ok := ctx.Value(tierKey).(types.Tier); ok {
		return tier
	}
	return types.TierFree
}
