package utils

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// charset32 is a 32-symbol alphabet without look-alike characters.
const charset32 = "2346789bdfghjmnpqrtBDFGHJLMNPQRT"

// HashPassword returns the bcrypt hash of password using the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateRandomPassword returns a random password carrying at least the
// requested number of bits of entropy, drawn from charset32 (5 bits per
// symbol).
func GenerateRandomPassword(bits int) (string, error) {
	if bits <= 0 {
		return "", fmt.Errorf("invalid password entropy: %d bits", bits)
	}

	n := (bits + 4) / 5
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	// 256 is a multiple of 32, so masking keeps the distribution uniform.
	for i, b := range buf {
		buf[i] = charset32[b&31]
	}

	return string(buf), nil
}
