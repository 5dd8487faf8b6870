package impl

import (
	"context"
	"testing"
	"time"

	"profilecard/config"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	mockSvc "profilecard/internal/mocks/service"
	"profilecard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	service      usecase.AuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	t.Helper()

	cfg := newTestConfig()
	cfg.Auth.Admins = []config.AdminAccount{
		{Email: "Admin@Example.com", PasswordHash: "$2a$10$hash"},
	}

	fx := authFixtures{
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	expiresAt := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().Check("s3cret", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.MatchedBy(func(id *entity.AdminIdentity) bool {
			return id.Email == "Admin@Example.com" && id.Roles.Contains(entity.RoleAdmin)
		})).
		Return("signed.jwt.token", expiresAt, nil)

	result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: " admin@example.com ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, expiresAt, result.ExpiresAt)
	assert.Equal(t, "Admin@Example.com", result.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(unknownAccountPassword).Return("$2a$10$dummy", nil).Once()
	fx.hasher.EXPECT().Check("x", "$2a$10$dummy").Return(true).Twice()

	for range 2 {
		result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Check("s3cret", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return("", time.Time{}, errors.New("no key"))

	result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: "s3cret"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
