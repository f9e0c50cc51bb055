package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL applies to every issued token. The original system only pinned the
// customer lifetime to 7 days; admin tokens share it under the unified codec.
const TokenTTL = 7 * 24 * time.Hour

const (
	TypeCustomer = "customer"
	TypeAdmin    = "admin"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in every bearer token.
type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Type == TypeAdmin
}

// TokenCodec issues and verifies HS256 tokens with a single shared secret.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

func (tc *TokenCodec) Issue(userID int, email, tokenType, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify recomputes the signature and checks expiry. Any mismatch, wrong
// signing method or expired token collapses into ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
