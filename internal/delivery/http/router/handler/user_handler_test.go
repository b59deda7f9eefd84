package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUsecase "passport/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers_Success(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	users := []*entity.User{
		{
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: []byte("hash"),
			PasswordSalt: []byte("salt"),
			CreatedAt:    time.Now(),
		},
		{ID: uuid.New(), Username: "bob"},
	}
	mockUC.EXPECT().ListUsers(mock.Anything).Return(users, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListUsers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)

	// Credential material must never appear in the response body.
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "salt")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	mockUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListUsers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestUserHandler_GetUser_Success(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	userID := uuid.New()
	callerID := uuid.New()
	mockUC.EXPECT().GetUser(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	deliverycontext.SetAuthenticatedUser(c, callerID, "caller")

	err := handler.GetUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestUserHandler_GetUser_Unauthenticated(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	userID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	err := handler.GetUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	mockUC := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(mockUC, newTestLogger())

	userID := uuid.New()
	mockUC.EXPECT().
		GetUser(mock.Anything, userID).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	deliverycontext.SetAuthenticatedUser(c, uuid.New(), "caller")

	err := handler.GetUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
