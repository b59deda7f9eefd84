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
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenIssuer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenIssuer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(txManager, userRepo, hasher, tokens, logger)

	return accountServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Alice",
		Password: "secret1",
	}
	salt := []byte("test-salt")
	hash := []byte("test-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			// The existence check runs against the lowercased username.
			mockUserRepo.EXPECT().Exists(ctx, "alice").Return(false, nil)

			fx.hasher.EXPECT().GenerateSalt().Return(salt, nil)
			fx.hasher.EXPECT().Hash(input.Password, salt).Return(hash)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "alice", user.Username)
					assert.Equal(t, hash, user.PasswordHash)
					assert.Equal(t, salt, user.PasswordSalt)
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokens.EXPECT().
		CreateToken(mock.AnythingOfType("*entity.User")).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "ALICE",
		Password: "other",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			// Any casing of a taken name collides once lowercased. No salt is
			// generated and no Create call happens past this point.
			mockUserRepo.EXPECT().Exists(ctx, "alice").Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Register_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "secret1",
	}

	storeErr := errors.New("connection refused")
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(storeErr)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, storeErr)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "secret1",
	}

	storedUser := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: []byte("stored-hash"),
		PasswordSalt: []byte("stored-salt"),
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().
		Verify(input.Password, storedUser.PasswordSalt, storedUser.PasswordHash).
		Return(true)
	fx.tokens.EXPECT().CreateToken(storedUser).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "bob",
		Password: "x",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	}

	storedUser := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: []byte("stored-hash"),
		PasswordSalt: []byte("stored-salt"),
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().
		Verify(input.Password, storedUser.PasswordSalt, storedUser.PasswordHash).
		Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestAccountService_Login_CaseSensitiveLookup(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "Alice",
		Password: "secret1",
	}

	// The login lookup is byte-wise against the stored lowercase form, so the
	// mixed-case spelling misses even though registration lowercased it.
	fx.userRepo.EXPECT().FindByUsername(ctx, "Alice").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
}
