package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"profilecard/config"
	"profilecard/internal/delivery/api/page"
	"profilecard/internal/delivery/api/response"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// qrCacheControl lets browsers and CDNs keep QR codes; they only change with the username.
const qrCacheControl = "public, max-age=3600"

// PublicProfileHandlerParams holds dependencies for PublicProfileHandler, injected by Fx.
type PublicProfileHandlerParams struct {
	fx.In

	PublicUC usecase.PublicProfileUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// PublicProfileHandler serves the public profile page, its QR code and its JSON form.
type PublicProfileHandler struct {
	publicUC usecase.PublicProfileUsecase
	siteName string
	logger   *slog.Logger
}

// NewPublicProfileHandler is the constructor for PublicProfileHandler
func NewPublicProfileHandler(params PublicProfileHandlerParams) *PublicProfileHandler {
	var siteName string
	if params.Config.Public != nil {
		siteName = params.Config.Public.SiteName
	}

	return &PublicProfileHandler{
		publicUC: params.PublicUC,
		siteName: siteName,
		logger:   params.Logger,
	}
}

// Home renders ?profile=<id>, or the first profile.
func (h *PublicProfileHandler) Home(c echo.Context) error {
	profileID := c.QueryParam("profile")
	profile, err := h.publicUC.ResolveDefault(c.Request().Context(), profileID)

	return h.render(c, profileID, profile, err)
}

// ProfilePage renders /u/:identifier.
func (h *PublicProfileHandler) ProfilePage(c echo.Context) error {
	identifier := pathParam(c, "identifier")
	profile, err := h.publicUC.Resolve(c.Request().Context(), identifier)

	return h.render(c, identifier, profile, err)
}

// QRCode returns the PNG QR code that points at the profile page.
func (h *PublicProfileHandler) QRCode(c echo.Context) error {
	png, err := h.publicUC.QRCode(c.Request().Context(), pathParam(c, "identifier"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, qrCacheControl)

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetProfile returns the resolved view-model and SEO data as JSON.
func (h *PublicProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.publicUC.Resolve(c.Request().Context(), pathParam(c, "identifier"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *PublicProfileHandler) render(c echo.Context, identifier string, profile *usecase.PublicProfile, err error) error {
	if err != nil {
		appErr, ok := domainerrors.AsAppError(err)
		if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
			return err
		}

		// Unresolvable identifiers get the HTML not-found page rather than a JSON error.
		return c.Render(appErr.HTTPCode(), page.NotFoundTemplate, &page.NotFoundPage{
			Identifier: identifier,
			SiteName:   h.siteName,
		})
	}

	canonical := profile.Profile.Username
	if canonical == "" {
		canonical = profile.Profile.ID
	}

	return c.Render(http.StatusOK, page.ProfileTemplate, page.NewProfilePage(profile, "/u/"+url.PathEscape(canonical)+"/qr.png"))
}

// pathParam returns the unescaped value of a path parameter.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}

	return raw
}
