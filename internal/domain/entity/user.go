// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The username is the natural key and is
// stored lowercased; the password never leaves the account as plaintext, only
// as a keyed hash together with the per-user salt that keyed it.
//
// PasswordHash and PasswordSalt are written exactly once, at registration.
// There is no password-change path.
type User struct {
	ID           uuid.UUID // Surrogate key for lookups and token subjects.
	Username     string    // Unique, lowercased at creation.
	PasswordHash []byte    // HMAC-SHA512 of the UTF-8 password, keyed by PasswordSalt.
	PasswordSalt []byte    // Random key material generated at registration.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
