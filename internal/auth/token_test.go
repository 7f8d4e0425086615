package auth

import (
	"testing"
	"time"

	"github.com/openboard/issue-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("user-42", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiry %v too soon", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("uid = %q, want user-42", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken("user-42", domain.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("ParseToken() accepted a token signed with another secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 60)
	if _, err := tm.ParseToken("not.a.jwt"); err == nil {
		t.Fatal("ParseToken() accepted garbage input")
	}
}
