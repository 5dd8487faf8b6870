package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/view"
	mockUC "profilecard/internal/mocks/usecase"
	"profilecard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAdminProfileUsecase) {
	t.Helper()

	adminUC := mockUC.NewMockAdminProfileUsecase(t)
	h := NewAdminProfileHandler(AdminProfileHandlerParams{
		AdminUC: adminUC,
		Logger:  discardLogger(),
	})

	e := newTestEcho(t)
	g := e.Group("/api/v1/admin/profiles")
	g.GET("", h.ListProfiles)
	g.GET("/new", h.NewProfileForm)
	g.POST("", h.CreateProfile)
	g.GET("/:id", h.GetProfileForm)
	g.PUT("/:id", h.UpdateProfile)
	g.DELETE("/:id", h.DeleteProfile)

	return e, adminUC
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestAdminProfileHandler_ListProfiles(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	adminUC.EXPECT().ListProfiles(mock.Anything).Return([]*usecase.ProfileSummary{
		{ID: uuid.New(), Username: "alex", Name: "Alex Morgan"},
	}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/profiles", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alex"`)
}

func TestAdminProfileHandler_NewProfileForm(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	adminUC.EXPECT().NewProfileForm().Return(&usecase.ProfileForm{
		ProfileInput: usecase.ProfileInput{BusinessHours: usecase.DefaultBusinessHourInputs()},
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/profiles/new", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, strings.Count(rec.Body.String(), `"day":`))
}

func TestAdminProfileHandler_GetProfileForm_InvalidID(t *testing.T) {
	e, _ := newAdminTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/profiles/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_FAILED"`)
}

func TestAdminProfileHandler_GetProfileForm_NotFound(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	id := uuid.New()
	adminUC.EXPECT().GetProfileForm(mock.Anything, id).Return(nil, domainerrors.ErrProfileNotFound)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/admin/profiles/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProfileHandler_CreateProfile_JSON(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	id := uuid.New()
	adminUC.EXPECT().
		SaveProfile(mock.Anything, mock.MatchedBy(func(in *usecase.SaveProfileInput) bool {
			return in.ID == nil && in.Profile.Name == "Alex Morgan" && in.Profile.Username == "alex" && in.ProfileImage == nil
		})).
		Return(&usecase.SaveProfileResult{ID: id, Created: true, Profile: &view.Profile{ID: id.String()}}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/profiles", `{"name":"Alex Morgan","username":"alex"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestAdminProfileHandler_CreateProfile_ValidationError(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	adminUC.EXPECT().SaveProfile(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("name: is required"))

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/profiles", `{"name":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name: is required")
}

func TestAdminProfileHandler_CreateProfile_MalformedJSON(t *testing.T) {
	e, _ := newAdminTestServer(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/admin/profiles", `{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminProfileHandler_CreateProfile_Multipart(t *testing.T) {
	e, adminUC := newAdminTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField(formFieldProfile, `{"name":"Alex Morgan","gallery":["https://img/old.jpg"]}`))
	writeImagePart(t, w, formFieldProfileImage, "avatar.png", "avatar-bytes")
	writeImagePart(t, w, formFieldGallery, "one.png", "g1")
	writeImagePart(t, w, formFieldGallery, "two.png", "g2")
	require.NoError(t, w.Close())

	adminUC.EXPECT().SaveProfile(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *usecase.SaveProfileInput) (*usecase.SaveProfileResult, error) {
			assert.Equal(t, "Alex Morgan", in.Profile.Name)
			assert.Equal(t, []string{"https://img/old.jpg"}, in.Profile.Gallery)
			require.NotNil(t, in.ProfileImage)
			assert.Equal(t, "avatar.png", in.ProfileImage.Filename)
			assert.Equal(t, "image/png", in.ProfileImage.ContentType)
			content, err := io.ReadAll(in.ProfileImage.Content)
			require.NoError(t, err)
			assert.Equal(t, "avatar-bytes", string(content))
			assert.Nil(t, in.CoverImage)
			require.Len(t, in.Gallery, 2)
			assert.Equal(t, "one.png", in.Gallery[0].Filename)
			assert.Equal(t, "two.png", in.Gallery[1].Filename)

			return &usecase.SaveProfileResult{ID: uuid.New(), Created: true}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/profiles", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := serve(e, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminProfileHandler_CreateProfile_MultipartMissingProfile(t *testing.T) {
	e, _ := newAdminTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	writeImagePart(t, w, formFieldCoverImage, "cover.png", "c")
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/profiles", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile field is required")
}

func TestAdminProfileHandler_UpdateProfile(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	id := uuid.New()
	adminUC.EXPECT().
		SaveProfile(mock.Anything, mock.MatchedBy(func(in *usecase.SaveProfileInput) bool {
			return in.ID != nil && *in.ID == id
		})).
		Return(&usecase.SaveProfileResult{ID: id, Created: false}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/admin/profiles/"+id.String(), `{"name":"Alex"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminProfileHandler_UpdateProfile_UsernameTaken(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	adminUC.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/admin/profiles/"+uuid.NewString(), `{"name":"Alex","username":"taken"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"USERNAME_TAKEN"`)
}

func TestAdminProfileHandler_DeleteProfile(t *testing.T) {
	e, adminUC := newAdminTestServer(t)
	id := uuid.New()
	adminUC.EXPECT().DeleteProfile(mock.Anything, id).Return(nil)

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/profiles/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func writeImagePart(t *testing.T, w *multipart.Writer, field, filename, content string) {
	t.Helper()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set(echo.HeaderContentType, "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}
