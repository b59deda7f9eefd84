package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines read-side operations over registered users.
type UserUsecase interface {
	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
