package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no expiry claim")

// TokenExpiry returns the expiry of a JWT access token. The signature is
// not verified; the backend owns verification, the client only uses the
// claim to warn before a request that is certain to come back 401.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the token's expiry claim is in the past.
// Tokens that do not parse or carry no expiry are treated as live: the
// backend gets the final say via a 401.
func TokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
