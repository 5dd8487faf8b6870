package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"profilecard/config"
	deliverycontext "profilecard/internal/delivery/context"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"
	"profilecard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenTypeBearer is the token type reported to clients.
const tokenTypeBearer = "Bearer"

// unknownAccountPassword is hashed once and checked for unknown emails,
// so a miss costs one bcrypt comparison like a wrong password does.
const unknownAccountPassword = "profilecard-unknown-account"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// authService implements the AuthUsecase interface against the configured admin accounts.
type authService struct {
	hasher       service.PasswordHasher
	tokenService service.TokenService
	admins       []config.AdminAccount
	dummyHash    func() string
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var admins []config.AdminAccount
	if params.Config.Auth != nil {
		admins = params.Config.Auth.Admins
	}

	return &authService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		admins:       admins,
		dummyHash: sync.OnceValue(func() string {
			hash, err := params.Hasher.Hash(unknownAccountPassword)
			if err != nil {
				params.Logger.Error("Failed to prepare unknown-account hash", slog.Any("error", err))

				return ""
			}

			return hash
		}),
		logger: params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials against the admin accounts and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	email := strings.TrimSpace(input.Email)

	account, found := srv.findAdmin(email)
	hash := account.PasswordHash
	if !found {
		hash = srv.dummyHash()
	}
	matched := srv.hasher.Check(input.Password, hash)
	if !found || !matched {
		srv.log(ctx).Warn("Admin login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	identity := &entity.AdminIdentity{
		Subject: account.Email,
		Email:   account.Email,
		Roles:   entity.Roles{entity.RoleAdmin},
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(identity)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate access token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", account.Email))

	return &usecase.LoginResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		Email:       account.Email,
	}, nil
}

func (srv *authService) findAdmin(email string) (config.AdminAccount, bool) {
	for _, account := range srv.admins {
		if strings.EqualFold(strings.TrimSpace(account.Email), email) {
			return account, true
		}
	}

	return config.AdminAccount{}, false
}
