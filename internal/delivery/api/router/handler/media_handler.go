package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// mediaCacheControl applies to uploaded images; their keys are never reused.
const mediaCacheControl = "public, max-age=86400, immutable"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Media  service.MediaReader `optional:"true"`
	Logger *slog.Logger
}

// MediaHandler streams stored images back when the storage is a local bucket.
type MediaHandler struct {
	media  service.MediaReader
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		media:  params.Media,
		logger: params.Logger,
	}
}

// Enabled reports whether the storage can serve media.
func (h *MediaHandler) Enabled() bool {
	return h.media != nil
}

// Serve handles GET /media/*
func (h *MediaHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(path.Clean("/"+pathParam(c, "*")), "/")
	if key == "" {
		return domainerrors.ErrMediaNotFound
	}

	content, contentType, err := h.media.Open(c.Request().Context(), key)
	if err != nil {
		return err
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, mediaCacheControl)

	return c.Stream(http.StatusOK, contentType, io.Reader(content))
}
