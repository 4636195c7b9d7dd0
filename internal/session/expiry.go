package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTTL is how long the access token stays usable, read from its exp
// claim. The signature is not checked: the API owns the key, this only
// sizes the cookie. fallback is used when the token has no readable exp.
func AccessTTL(token string, now time.Time, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if raw == "" {
		return fallback
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}
	return claims.ExpiresAt.Time.Sub(now)
}
