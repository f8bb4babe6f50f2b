package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/internal/delivery/http/validator"
	domainerrors "taskboard/internal/domain/errors"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, testLogger())

	mockAuth.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Name == "Alice" &&
				input.Email == "alice@example.com" &&
				input.Password == "correct horse battery"
		})).
		Return(&usecase.CredentialOutput{Token: "issued-token", ExpiresIn: 86400000}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued-token")
	assert.Contains(t, rec.Body.String(), "86400000")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, testLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"short"}`)

	err := handler.Register(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateEmailPassesThrough(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, testLogger())

	mockAuth.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed"))

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"correct horse battery"}`)

	err := handler.Register(c)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, testLogger())

	mockAuth.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Email == "alice@example.com" && input.Password == "correct horse battery"
		})).
		Return(&usecase.CredentialOutput{Token: "issued-token", ExpiresIn: 3600000}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued-token")
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, testLogger())

	mockAuth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := handler.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
