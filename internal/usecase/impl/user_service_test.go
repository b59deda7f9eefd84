package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(userRepo, logger)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	result, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "alice", result[0].Username)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().List(ctx).Return([]*entity.User{}, nil)

	result, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	result, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, result.ID)
	assert.Equal(t, "alice", result.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUser_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	repoErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repoErr)

	result, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
}
