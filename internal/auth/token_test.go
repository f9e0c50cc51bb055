package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Issue(42, "jane@example.com", TypeCustomer, "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", claims.Email)
	}
	if claims.Type != TypeCustomer {
		t.Errorf("Type = %q, want %q", claims.Type, TypeCustomer)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a").Issue(1, "a@b.com", TypeAdmin, "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewTokenCodec("secret-b").Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Verify(tokenStr); err != ErrInvalidToken {
			t.Errorf("Verify(%q): err = %v, want ErrInvalidToken", tokenStr, err)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: 7,
		Email:  "old@example.com",
		Type:   TypeCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := NewTokenCodec(secret).Verify(expired); err != ErrInvalidToken {
		t.Errorf("Verify(expired): err = %v, want ErrInvalidToken", err)
	}
}

func TestAdminTokenCarriesRole(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	token, err := codec.Issue(3, "ops@wildwave.com", TypeAdmin, "sub-admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false for admin token")
	}
	if claims.Role != "sub-admin" {
		t.Errorf("Role = %q, want sub-admin", claims.Role)
	}
}
