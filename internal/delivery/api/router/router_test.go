package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilecard/config"
	"profilecard/internal/delivery/api/middleware"
	"profilecard/internal/delivery/api/router/handler"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	mockSvc "profilecard/internal/mocks/service"
	mockUC "profilecard/internal/mocks/usecase"
	"profilecard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	e        *echo.Echo
	verifier *mockSvc.MockAdminVerifier
	adminUC  *mockUC.MockAdminProfileUsecase
}

func newRouterFixture(t *testing.T, cfg *config.Config, media *mockSvc.MockMediaReader) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &routerFixture{
		verifier: mockSvc.NewMockAdminVerifier(t),
		adminUC:  mockUC.NewMockAdminProfileUsecase(t),
	}

	mediaParams := handler.MediaHandlerParams{Logger: logger}
	if media != nil {
		mediaParams.Media = media
	}

	r := NewRouter(RouterParams{
		PublicProfileHandler: handler.NewPublicProfileHandler(handler.PublicProfileHandlerParams{
			PublicUC: mockUC.NewMockPublicProfileUsecase(t),
			Config:   cfg,
			Logger:   logger,
		}),
		AdminProfileHandler: handler.NewAdminProfileHandler(handler.AdminProfileHandlerParams{AdminUC: f.adminUC, Logger: logger}),
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		MediaHandler:        handler.NewMediaHandler(mediaParams),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Verifier: f.verifier, Logger: logger}),
		Config:              cfg,
	})

	f.e = echo.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(f.e)

	return f
}

func (f *routerFixture) do(method, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/profiles", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/admin/profiles", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminRejectedToken(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)
	f.verifier.EXPECT().VerifyAdmin(mock.Anything, "bad").
		Return(nil, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))

	rec := f.do(http.MethodGet, "/api/v1/admin/profiles", "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "invalid or expired token")
}

func TestRouter_AdminRequiresRole(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)
	f.verifier.EXPECT().VerifyAdmin(mock.Anything, "viewer").
		Return(&entity.AdminIdentity{Subject: "v", Email: "v@example.com"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/profiles", "Bearer viewer")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AdminAllowed(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)
	f.verifier.EXPECT().VerifyAdmin(mock.Anything, "good").
		Return(&entity.AdminIdentity{Subject: "a", Email: "a@example.com", Roles: entity.Roles{entity.RoleAdmin}}, nil)
	f.adminUC.EXPECT().ListProfiles(mock.Anything).Return([]*usecase.ProfileSummary{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/profiles", "bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginRouteFollowsProvider(t *testing.T) {
	f := newRouterFixture(t, &config.Config{}, nil)
	rec := f.do(http.MethodPost, "/auth/login", "")
	assert.NotEqual(t, http.StatusNotFound, rec.Code)

	f = newRouterFixture(t, &config.Config{Auth: &config.AuthConfig{Provider: constants.AuthProviderFirebase}}, nil)
	rec = f.do(http.MethodPost, "/auth/login", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MediaRouteNeedsReaderAndFlag(t *testing.T) {
	serveMedia := &config.Config{Storage: &config.StorageConfig{ServeMedia: true}}

	f := newRouterFixture(t, serveMedia, nil)
	rec := f.do(http.MethodGet, "/media/a.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "MEDIA_NOT_FOUND")

	media := mockSvc.NewMockMediaReader(t)
	media.EXPECT().Open(mock.Anything, "a.png").Return(nil, "", domainerrors.ErrMediaNotFound)
	f = newRouterFixture(t, serveMedia, media)
	rec = f.do(http.MethodGet, "/media/a.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "MEDIA_NOT_FOUND")
}
