package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/http/validator"
	domainerrors "passport/internal/domain/errors"
	mockUsecase "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	mockUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "Alice", Password: "secret1"}).
		Return(&usecase.AuthOutput{Username: "alice", Token: "signed-token"}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/register",
		`{"username":"Alice","password":"secret1"}`)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestAccountHandler_Register_MissingPassword(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/register",
		`{"username":"alice"}`)

	err := handler.Register(c)

	// Validation failures surface as an HTTPError for the error handler; the
	// usecase is never reached.
	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Register_MalformedJSON(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/register",
		`{"username":`)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Register_UsernameTaken(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	mockUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "secret1"}).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("registration failed"))

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/register",
		`{"username":"alice","password":"secret1"}`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret1"}).
		Return(&usecase.AuthOutput{Username: "alice", Token: "signed-token"}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/login",
		`{"username":"alice","password":"secret1"}`)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestAccountHandler_Login_InvalidPassword(t *testing.T) {
	mockUC := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(mockUC, newTestLogger())

	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidPassword.WrapMessage("login failed"))

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/account/login",
		`{"username":"alice","password":"wrong"}`)

	err := handler.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}
