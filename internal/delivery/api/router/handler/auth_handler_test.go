package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "profilecard/internal/domain/errors"
	mockUC "profilecard/internal/mocks/usecase"
	"profilecard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	t.Helper()

	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	e := newTestEcho(t)
	e.POST("/auth/login", h.Login)

	return e, authUC
}

func TestAuthHandler_Login(t *testing.T) {
	e, authUC := newAuthTestServer(t)
	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
		Return(&usecase.LoginResult{
			AccessToken: "token",
			TokenType:   "Bearer",
			ExpiresAt:   time.Now().Add(time.Hour),
			Email:       "admin@example.com",
		}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"token"`)
}

func TestAuthHandler_Login_ValidationFailed(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_FAILED"`)
	assert.Contains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestServer(t)
	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serve(e, jsonRequest(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_CREDENTIALS"`)
}
