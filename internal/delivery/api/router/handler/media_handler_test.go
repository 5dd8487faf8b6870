package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "profilecard/internal/domain/errors"
	mockSvc "profilecard/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMediaTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockMediaReader) {
	t.Helper()

	media := mockSvc.NewMockMediaReader(t)
	h := NewMediaHandler(MediaHandlerParams{Media: media, Logger: discardLogger()})
	assert.True(t, h.Enabled())

	e := newTestEcho(t)
	e.GET("/media/*", h.Serve)

	return e, media
}

func TestMediaHandler_Serve(t *testing.T) {
	e, media := newMediaTestServer(t)
	media.EXPECT().Open(mock.Anything, "profile-images/profiles/a.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/media/profile-images/profiles/a.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestMediaHandler_Serve_NotFound(t *testing.T) {
	e, media := newMediaTestServer(t)
	media.EXPECT().Open(mock.Anything, "missing.png").Return(nil, "", domainerrors.ErrMediaNotFound)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/media/missing.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"MEDIA_NOT_FOUND"`)
}

func TestMediaHandler_Disabled(t *testing.T) {
	h := NewMediaHandler(MediaHandlerParams{Logger: discardLogger()})

	assert.False(t, h.Enabled())
}
