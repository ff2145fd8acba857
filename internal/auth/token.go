package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Principal kinds carried in the token's typ claim.
const (
	PrincipalUser   = "user"
	PrincipalSeller = "seller"
)

// Typed verification failures. Middleware maps these to HTTP statuses.
var (
	ErrMissingToken   = errors.New("token is required")
	ErrMalformedToken = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
)

// Claims is the minimal identity embedded in a token: subject id, email and
// principal kind. Never the stored account record.
type Claims struct {
	Email string `json:"email"`
	Kind  string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens with a configured secret and
// lifetime. Verification is stateless.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given identity, expiring after the configured
// lifetime.
func (m *TokenManager) Issue(subject, email, kind string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
