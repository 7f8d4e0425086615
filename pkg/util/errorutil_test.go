package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestMapErrorNil(t *testing.T) {
	if err := MapError(nil); err != nil {
		t.Fatalf("MapError(nil) = %v, want nil", err)
	}
}

func TestMapErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewForbidden("nope")
	mapped := MapError(fmt.Errorf("wrapped: %w", original))

	var domainErr *DomainError
	if !errors.As(mapped, &domainErr) {
		t.Fatalf("mapped %T, want DomainError", mapped)
	}
	if domainErr.Code != "FORBIDDEN" {
		t.Errorf("code = %q, want FORBIDDEN", domainErr.Code)
	}
	if domainErr.HTTPStatus != http.StatusForbidden {
		t.Errorf("status = %d, want 403", domainErr.HTTPStatus)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if mapped.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("status = %d, want 404", mapped.HTTPStatus)
	}
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", mapped.Code)
	}
	if mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", mapped.HTTPStatus)
	}
	if mapped.Err == nil {
		t.Error("original error dropped")
	}
}

func TestInvalidStatusError(t *testing.T) {
	err := NewInvalidStatus("resolved")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error %T, want DomainError", err)
	}
	if domainErr.Code != "INVALID_STATUS" {
		t.Errorf("code = %q, want INVALID_STATUS", domainErr.Code)
	}
	if domainErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", domainErr.HTTPStatus)
	}
}
