// Package model contains the GORM persistence models backing the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. The unique index on
// Username is the authoritative uniqueness guarantee; the service-level
// existence pre-check is only a fast path.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	PasswordSalt []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
