package auth

import (
	"context"
	"log/slog"

	"profilecard/config"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the AdminVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	JWT    JWTService
}

// NewAdminVerifier returns the verifier selected by auth.provider
func NewAdminVerifier(params VerifierParams) (service.AdminVerifier, error) {
	provider := constants.AuthProviderJWT
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderJWT:
		return params.JWT, nil
	case constants.AuthProviderFirebase:
		params.Logger.Info("Using Firebase ID tokens for admin authentication")

		return NewFirebaseVerifier(params.Ctx, params.Config, params.Logger)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

// AsTokenService exposes the JWT service as the domain TokenService.
func AsTokenService(s JWTService) service.TokenService {
	return s
}
