// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies keyed password hashes. The salt doubles
// as the key of the hash function, is generated once per registration, and is
// persisted next to the hash.
type PasswordHasher interface {
	// GenerateSalt produces fresh cryptographically random key material.
	GenerateSalt() ([]byte, error)

	// Hash computes a keyed hash over the UTF-8 bytes of password. The output
	// has a fixed length and is deterministic for identical inputs.
	Hash(password string, salt []byte) []byte

	// Verify recomputes the hash and compares it against expectedHash in
	// constant time. A wrong password yields false, never an error.
	Verify(password string, salt, expectedHash []byte) bool
}
