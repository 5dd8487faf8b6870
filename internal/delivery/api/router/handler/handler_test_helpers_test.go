package handler

import (
	"io"
	"log/slog"
	"testing"

	"profilecard/internal/delivery/api/middleware"
	"profilecard/internal/delivery/api/page"
	"profilecard/internal/delivery/api/validator"
	"profilecard/internal/domain/view"
	"profilecard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an echo instance configured like the API server.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	renderer, err := page.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func samplePublicProfile() *usecase.PublicProfile {
	profile := &view.Profile{
		ID:       "7d1c9a52-4d0e-4d8e-9a0b-2b5c1f3e6a11",
		Username: "alex",
		Name:     "Alex Morgan",
		Tagline:  "Coffee Roaster",
		BusinessHours: []view.BusinessHour{
			{Day: "Monday", Hours: "9:00 AM - 5:00 PM", IsOpen: true},
		},
	}
	profileURL := "https://cards.example.com/u/alex"

	return &usecase.PublicProfile{
		Profile:    profile,
		SEO:        view.BuildSEO(profile, profileURL, "Profile Card"),
		ProfileURL: profileURL,
	}
}
