package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err = CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to verify, got: %v", err)
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("pass", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, _ := HashPassword("same-password", bcrypt.MinCost)
	second, _ := HashPassword("same-password", bcrypt.MinCost)

	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("right", bcrypt.MinCost)

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("expected error for wrong password, got nil")
	}
	if err := CheckPassword("not-a-hash", "right"); err == nil {
		t.Error("expected error for malformed hash, got nil")
	}
}
