// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"

	"github.com/pkg/errors"

	"passport/internal/domain/service"
)

// saltLength matches the HMAC-SHA512 block-derived key size, so a generated
// salt is a full-strength key for the hash.
const saltLength = 64

// hmacHasher is a concrete implementation of the PasswordHasher interface
// using HMAC-SHA512 keyed by a per-user salt.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// GenerateSalt produces a new random HMAC key.
func (h *hmacHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	return salt, nil
}

// Hash computes HMAC-SHA512 over the UTF-8 bytes of password, keyed by salt.
// The output is always sha512.Size (64) bytes.
func (h *hmacHasher) Hash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}

// Verify recomputes the hash and compares it against expectedHash.
// subtle.ConstantTimeCompare keeps the comparison time independent of where
// the first mismatching byte occurs.
func (h *hmacHasher) Verify(password string, salt, expectedHash []byte) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare(computed, expectedHash) == 1
}
