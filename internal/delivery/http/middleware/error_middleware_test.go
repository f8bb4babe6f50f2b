package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "duplicate email maps to 409",
			err:      domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed"),
			wantCode: http.StatusConflict,
			wantBody: "EMAIL_ALREADY_REGISTERED",
		},
		{
			name:     "invalid credentials maps to 401",
			err:      domainerrors.ErrInvalidCredentials.WrapMessage("login failed"),
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
		{
			name:     "unknown user maps to 404",
			err:      domainerrors.ErrUserNotFound.WrapMessage("failed to resolve task owner"),
			wantCode: http.StatusNotFound,
			wantBody: "USER_NOT_FOUND",
		},
		{
			name:     "task not found maps to 404",
			err:      domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed"),
			wantCode: http.StatusNotFound,
			wantBody: "TASK_NOT_FOUND",
		},
		{
			name:     "lookup variant maps to 404 with its own code",
			err:      domainerrors.ErrTaskNotFoundForUser.WrapMessage("task lookup failed"),
			wantCode: http.StatusNotFound,
			wantBody: "TASK_NOT_FOUND_FOR_USER",
		},
		{
			name:     "validation failure maps to 400",
			err:      domainerrors.ErrValidationFailed.WithDetails("title: failed on 'required'"),
			wantCode: http.StatusBadRequest,
			wantBody: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorHidesDetails(t *testing.T) {
	rec := handleError(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
