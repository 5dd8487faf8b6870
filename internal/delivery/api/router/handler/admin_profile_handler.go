package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"profilecard/internal/delivery/api/middleware"
	"profilecard/internal/delivery/api/response"
	deliverycontext "profilecard/internal/delivery/context"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"
	"profilecard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Multipart field names of the admin form.
const (
	formFieldProfile      = "profile"
	formFieldProfileImage = "profileImage"
	formFieldCoverImage   = "coverImage"
	formFieldGallery      = "gallery"
)

// AdminProfileHandlerParams holds dependencies for AdminProfileHandler, injected by Fx.
type AdminProfileHandlerParams struct {
	fx.In

	AdminUC usecase.AdminProfileUsecase
	Logger  *slog.Logger
}

// AdminProfileHandler exposes profile management to authenticated admins.
type AdminProfileHandler struct {
	adminUC usecase.AdminProfileUsecase
	logger  *slog.Logger
}

// NewAdminProfileHandler is the constructor for AdminProfileHandler
func NewAdminProfileHandler(params AdminProfileHandlerParams) *AdminProfileHandler {
	return &AdminProfileHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListProfiles handles GET /api/v1/admin/profiles
func (h *AdminProfileHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.adminUC.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profiles)
}

// NewProfileForm handles GET /api/v1/admin/profiles/new
func (h *AdminProfileHandler) NewProfileForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.adminUC.NewProfileForm())
}

// GetProfileForm handles GET /api/v1/admin/profiles/:id
func (h *AdminProfileHandler) GetProfileForm(c echo.Context) error {
	id, err := profileIDParam(c)
	if err != nil {
		return err
	}

	form, err := h.adminUC.GetProfileForm(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, form)
}

// CreateProfile handles POST /api/v1/admin/profiles
func (h *AdminProfileHandler) CreateProfile(c echo.Context) error {
	return h.save(c, nil)
}

// UpdateProfile handles PUT /api/v1/admin/profiles/:id
func (h *AdminProfileHandler) UpdateProfile(c echo.Context) error {
	id, err := profileIDParam(c)
	if err != nil {
		return err
	}

	return h.save(c, &id)
}

func (h *AdminProfileHandler) save(c echo.Context, id *uuid.UUID) error {
	input, closeFiles, err := parseSaveRequest(c)
	if err != nil {
		return err
	}
	defer closeFiles()
	input.ID = id

	ctx := c.Request().Context()
	if identity, ok := middleware.GetAdminIdentity(c); ok {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Admin saving profile",
			slog.String("admin", identity.Email),
			slog.Bool("create", id == nil),
		)
	}

	result, err := h.adminUC.SaveProfile(ctx, input)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, result)
}

// DeleteProfile handles DELETE /api/v1/admin/profiles/:id
func (h *AdminProfileHandler) DeleteProfile(c echo.Context) error {
	id, err := profileIDParam(c)
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteProfile(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func profileIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}

// parseSaveRequest accepts either a JSON body or a multipart form whose "profile" part
// holds the JSON and whose file parts carry new images. The returned func closes the files.
func parseSaveRequest(c echo.Context) (*usecase.SaveProfileInput, func(), error) {
	input := &usecase.SaveProfileInput{}
	noop := func() {}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Bind(&input.Profile); err != nil {
			return nil, noop, domainerrors.ErrValidationFailed.WithDetails("request body must be a profile JSON object")
		}

		return input, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	values := form.Value[formFieldProfile]
	if len(values) == 0 {
		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("profile field is required")
	}
	if err := json.Unmarshal([]byte(values[0]), &input.Profile); err != nil {
		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("profile field must be a JSON object")
	}

	var opened []io.Closer
	closeFiles := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	open := func(fh *multipart.FileHeader) (*service.ImageUpload, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot read uploaded file "+fh.Filename)
		}
		opened = append(opened, f)

		return &service.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Content:     f,
		}, nil
	}

	if files := form.File[formFieldProfileImage]; len(files) > 0 {
		if input.ProfileImage, err = open(files[0]); err != nil {
			closeFiles()

			return nil, noop, err
		}
	}
	if files := form.File[formFieldCoverImage]; len(files) > 0 {
		if input.CoverImage, err = open(files[0]); err != nil {
			closeFiles()

			return nil, noop, err
		}
	}
	for _, fh := range form.File[formFieldGallery] {
		upload, err := open(fh)
		if err != nil {
			closeFiles()

			return nil, noop, err
		}
		input.Gallery = append(input.Gallery, upload)
	}

	return input, closeFiles, nil
}
