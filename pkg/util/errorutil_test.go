package util

import (
	"errors"
	"net/http"
	"testing"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewUnauthorized("TOKEN_EXPIRED", "token expired")

	mapped := ToDomainError(original)
	if mapped.Code != "TOKEN_EXPIRED" {
		t.Fatalf("expected code TOKEN_EXPIRED, got %q", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", mapped.HTTPStatus)
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" {
		t.Fatalf("expected INTERNAL_ERROR, got %q", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", mapped.HTTPStatus)
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailable("database temporarily unavailable", cause)

	mapped := ToDomainError(err)
	if mapped.Code != "REPOSITORY_UNAVAILABLE" {
		t.Fatalf("expected REPOSITORY_UNAVAILABLE, got %q", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", mapped.HTTPStatus)
	}
	if !errors.Is(mapped, cause) {
		t.Fatalf("expected wrapped cause preserved")
	}
}
