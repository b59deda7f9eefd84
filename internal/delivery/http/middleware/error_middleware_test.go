package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "passport/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/account/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := runErrorHandler(t, domainerrors.ErrInvalidPassword)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PASSWORD")
	assert.Contains(t, rec.Body.String(), "Invalid Password")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	// Usecase errors arrive wrapped; the handler still surfaces the AppError.
	rec := runErrorHandler(t, errors.Wrap(domainerrors.ErrUsernameTaken, "registration failed"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "field validation failed"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	assert.Contains(t, rec.Body.String(), "field validation failed")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec := runErrorHandler(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")

	// Internals never leak to the caller.
	assert.NotContains(t, rec.Body.String(), "database exploded")
}
