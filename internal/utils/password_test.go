package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash must differ from plain password")
	}
	if !ComparePassword(hash, "Str0ng!pass") {
		t.Error("expected password to match its hash")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("expected wrong password not to match")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if err == nil {
		t.Error("expected error for too long password, got nil")
	}
}

func TestComparePassword_GarbageHash(t *testing.T) {
	if ComparePassword("not-a-bcrypt-hash", "anything") {
		t.Error("expected false for malformed hash")
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	p1, err := GenerateRandomPassword(60)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(p1) != 12 {
		t.Errorf("expected 12 symbols for 60 bits, got %d", len(p1))
	}
	for _, r := range p1 {
		if !strings.ContainsRune(charset32, r) {
			t.Errorf("unexpected symbol %q", r)
		}
	}

	p2, _ := GenerateRandomPassword(60)
	if p1 == p2 {
		t.Error("two generated passwords must differ")
	}
}

func TestGenerateRandomPassword_RoundsUp(t *testing.T) {
	p, err := GenerateRandomPassword(61)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(p) != 13 {
		t.Errorf("expected 13 symbols for 61 bits, got %d", len(p))
	}
}

func TestGenerateRandomPassword_InvalidBits(t *testing.T) {
	if _, err := GenerateRandomPassword(0); err == nil {
		t.Error("expected error for zero bits, got nil")
	}
}
