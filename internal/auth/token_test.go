package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/tracking-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("round-trip-secret", 1)

	identities := []domain.Identity{
		{SubjectID: "C1", DisplayName: "Acme Imports", Role: domain.RoleCustomer},
		{SubjectID: "S9", DisplayName: "Bob Porter", Role: domain.RoleStaff},
	}

	for _, want := range identities {
		token, expiresAt, err := tm.Issue(want)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		if !expiresAt.After(time.Now()) {
			t.Fatalf("expected expiry in the future, got %v", expiresAt)
		}

		got, err := tm.Validate(token)
		if err != nil {
			t.Fatalf("validate token: %v", err)
		}
		if got != want {
			t.Fatalf("identity round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestValidateExpiredToken(t *testing.T) {
	tm := NewTokenManager("expiry-secret", 1)

	// Sign an already-expired token with the manager's own secret so the
	// only defect is the elapsed expiry.
	claims := &Claims{
		DisplayName: "Acme Imports",
		Role:        domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "C1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("expiry-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := tm.Validate(expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	tm := NewTokenManager("good-secret", 1)
	other := NewTokenManager("other-secret", 1)

	foreign, _, err := other.Issue(domain.Identity{SubjectID: "C1", DisplayName: "Acme", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role: domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "C1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none-alg token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: foreign},
		{name: "malformed", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tm.Validate(tt.token); !errors.Is(err, ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	secret := []byte("role-secret")
	tm := NewTokenManager(string(secret), 1)

	claims := &Claims{
		DisplayName: "Nobody",
		Role:        domain.Role("auditor"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "X1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := tm.Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}
