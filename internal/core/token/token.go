// Package token encodes and decodes the signed, time-limited credential
// issued at login. Tokens are HS256-signed and stateless: any process holding
// the shared secret can verify them independently.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/popsolutions/odoo-api-server/internal/core/domain"
)

// Claims is the fixed credential payload embedded in every issued token.
// Role is optional; UserID and Email are always set at login.
type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Encode signs claims with secret, stamping an expiration of now+expiration
// seconds. An empty secret is a configuration defect, not a signing failure.
func Encode(claims Claims, secret string, expiration int) (string, error) {
	if secret == "" {
		return "", domain.ErrConfiguration
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expiration) * time.Second))

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Decode verifies signature, algorithm and expiry, returning the embedded
// claims. Expired tokens yield domain.ErrTokenExpired; any other structural
// or signature failure yields domain.ErrTokenInvalid.
func Decode(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, domain.ErrConfiguration
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
