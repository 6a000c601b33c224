package auth

import (
	"testing"
	"time"

	"github.com/smallbizniz/support-portal/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 30)
	user := &domain.User{
		ID:       "user-1",
		Email:    "owner@example.com",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}

	token, exp, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if until := time.Until(exp); until < 29*time.Minute || until > 31*time.Minute {
		t.Errorf("expiry %v not about 30 minutes out", until)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != domain.RoleAdmin || !claims.IsActive {
		t.Errorf("claims do not mirror the user document: %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30)
	verifier := NewTokenManager("secret-b", 30)

	token, _, err := issuer.GenerateToken(&domain.User{ID: "u", Email: "e@example.com", Role: domain.RoleClient, IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 30)
	if _, err := tm.ParseToken("not.a.jwt"); err == nil {
		t.Fatal("garbage token was accepted")
	}
}
