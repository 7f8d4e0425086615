package handlers

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/dto"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// parseTicketBody runs parseBody through a real fiber request cycle and
// returns the error the handler would see.
func parseTicketBody(t *testing.T, body string) error {
	t.Helper()
	app := fiber.New()
	var parseErr error
	app.Post("/probe", func(c *fiber.Ctx) error {
		var req dto.CreateTicketRequest
		parseErr = parseBody(c, &req)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/probe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return parseErr
}

func TestParseBodyAcceptsValidTicket(t *testing.T) {
	err := parseTicketBody(t, `{
		"title": "Search is broken",
		"description": "No results come back",
		"type": "bug",
		"category": "backend"
	}`)
	if err != nil {
		t.Fatalf("parseBody() error = %v", err)
	}
}

func TestParseBodyRejectsUnknownFields(t *testing.T) {
	err := parseTicketBody(t, `{
		"title": "t",
		"description": "d",
		"type": "bug",
		"category": "backend",
		"severity": "critical"
	}`)
	if err == nil {
		t.Fatal("parseBody() accepted a caller-supplied severity")
	}
	assertValidationFailed(t, err)
}

func TestParseBodyRejectsMissingRequired(t *testing.T) {
	err := parseTicketBody(t, `{"title": "t"}`)
	if err == nil {
		t.Fatal("parseBody() accepted a payload without description")
	}
	assertValidationFailed(t, err)
}

func TestParseBodyRejectsBadEnum(t *testing.T) {
	err := parseTicketBody(t, `{
		"title": "t",
		"description": "d",
		"type": "incident",
		"category": "backend"
	}`)
	if err == nil {
		t.Fatal("parseBody() accepted an unknown ticket type")
	}
	assertValidationFailed(t, err)
}

func TestParseBodyRejectsMalformedJSON(t *testing.T) {
	err := parseTicketBody(t, `{"title":`)
	if err == nil {
		t.Fatal("parseBody() accepted truncated JSON")
	}
	assertValidationFailed(t, err)
}

func assertValidationFailed(t *testing.T, err error) {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error %T, want DomainError", err)
	}
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("code = %q, want VALIDATION_FAILED", domainErr.Code)
	}
}
