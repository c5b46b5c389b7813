// Package tier resolves a caller-supplied tier token to an access level.
// Resolution never fails: anything but a valid premium token means free.
package tier

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/cv-scorer/internal/types"
)

// claimKey is the JWT claim carrying the tier value.
const claimKey = "tier"

// Resolver validates HMAC-signed tier tokens.
type Resolver struct {
	secret []byte
}

// NewResolver creates a Resolver. An empty secret disables token validation
// and every caller resolves to the free tier.
func NewResolver(secret []byte) *Resolver {
	return &Resolver{secret: secret}
}

// Resolve maps a tier token to free or premium. Missing, malformed, expired,
// or wrongly-signed tokens all resolve to free rather than erroring.
func (r *Resolver) Resolve(token string) types.Tier {
	if token == "" || len(r.secret) == 0 {
		return types.TierFree
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		return types.TierFree
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return types.TierFree
	}
	if value, _ := claims[claimKey].(string); value == string(types.TierPremium) {
		return types.TierPremium
	}
	return types.TierFree
}

// IssueToken mints a signed tier token, used by operators and tests.
func (r *Resolver) IssueToken(t types.Tier, ttl time.Duration) (string, error) {
	if len(r.secret) == 0 {
		return "", fmt.Errorf("tier secret is not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimKey: string(t),
		"exp":    time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign tier token: %w", err)
	}
	return signed, nil
}
