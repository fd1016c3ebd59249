// pkg/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the payload of tokens issued by the remote store's
// /api/auth/local endpoint.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// ParseToken decodes a store-issued token without verifying its signature;
// only the remote store holds the signing secret and it re-validates the
// token on every call. The claims are used locally for the user id and
// expiry only.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, err
	}
	if claims.UserID == 0 {
		return nil, errors.New("token has no user id")
	}
	return claims, nil
}

// Expired reports whether the token's exp claim has passed. Tokens without
// an exp claim never expire locally.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
