package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "profilecard/internal/delivery/context"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyAdminIdentity = "admin_identity"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.AdminVerifier
	Logger   *slog.Logger
}

// AuthMiddleware guards the admin routes.
type AuthMiddleware struct {
	verifier service.AdminVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate requires a Bearer token that the configured verifier accepts as an admin.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyAdmin(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Admin token rejected", slog.Any("error", err))

			return err
		}

		c.Set(keyAdminIdentity, identity)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetAdminIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !identity.Roles.Contains(requiredRole) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetAdminIdentity returns the identity stored by Authenticate.
func GetAdminIdentity(c echo.Context) (*entity.AdminIdentity, bool) {
	identity, ok := c.Get(keyAdminIdentity).(*entity.AdminIdentity)

	return identity, ok && identity != nil
}
