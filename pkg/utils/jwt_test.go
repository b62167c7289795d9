package utils

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("64a1f0", "ana", "ana@example.com", []string{"ROLE_USER"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "64a1f0" {
		t.Errorf("expected id 64a1f0, got %s", claims.UserID)
	}
	if claims.Username != "ana" {
		t.Errorf("expected username ana, got %s", claims.Username)
	}
	if claims.Issuer != "HomeStock" {
		t.Errorf("expected issuer HomeStock, got %s", claims.Issuer)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ROLE_USER" {
		t.Errorf("unexpected roles: %+v", claims.Roles)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken("1", "ana", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}
