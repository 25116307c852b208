// Package auth implements the token service: compact, time-bound, signed
// identity assertions carrying the user id as subject.
package auth

import (
	"time"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embeds the registered JWT claims; the acting user id travels in the
// Subject field.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed bearer tokens. The signing
// secret is injected at construction and never changes for the lifetime of
// the process.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue produces a signed token for the given user id with an absolute
// expiry of now + the configured validity.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate verifies signature and expiry and returns the subject user id.
// Malformed, forged and expired tokens all yield the same
// common.ErrInvalidCredentials so a caller cannot probe for the cause.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return "", common.ErrInvalidCredentials
	}

	return claims.Subject, nil
}
