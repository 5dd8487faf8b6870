package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilecard/config"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/service"
	"profilecard/internal/infra/pubsub"
	mockUC "profilecard/internal/mocks/usecase"
	"profilecard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockImageCleanupUsecase) {
	t.Helper()

	cleanupUC := mockUC.NewMockImageCleanupUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		CleanupUC: cleanupUC,
	})

	return h, cleanupUC
}

func pushRequest(t *testing.T, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, constants.PushPath, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, echo.New().NewContext(req, rec)
}

func deletedEventMessage(t *testing.T) (*service.ProfileEvent, *pubsub.PushMessage) {
	t.Helper()

	event := &service.ProfileEvent{
		RequestID: "req-123",
		Type:      service.ProfileEventDeleted,
		ProfileID: uuid.New(),
		ImageURLs: []string{"http://localhost:8080/media/profile-images/profiles/a.png"},
	}
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	return event, msg
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, cleanupUC := newTestPushHandler(t, &config.Config{})
	event, msg := deletedEventMessage(t)

	cleanupUC.EXPECT().
		HandleProfileEvent(mock.Anything, mock.MatchedBy(func(e *service.ProfileEvent) bool {
			return e.ProfileID == event.ProfileID && e.Type == service.ProfileEventDeleted && len(e.ImageURLs) == 1
		})).
		Return(&usecase.CleanupResult{Deleted: 1}, nil)

	rec, c := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_CleanupFailureIsRetried(t *testing.T) {
	h, cleanupUC := newTestPushHandler(t, &config.Config{})
	_, msg := deletedEventMessage(t)

	cleanupUC.EXPECT().HandleProfileEvent(mock.Anything, mock.Anything).
		Return(&usecase.CleanupResult{}, errors.New("bucket unavailable"))

	rec, c := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadData(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	msg := &pubsub.PushMessage{}
	msg.Message.Data = "%%% not base64"

	rec, c := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	_, msg := deletedEventMessage(t)
	rec, c := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationOutsideProduction(t *testing.T) {
	for _, env := range []string{constants.EnvLocal, constants.EnvDevelop} {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = env

		h, _ := newTestPushHandler(t, cfg)
		assert.False(t, h.verifyPushAuth, env)
	}

	h, _ := newTestPushHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}})
	assert.False(t, h.verifyPushAuth)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	event, msg := deletedEventMessage(t)

	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(t.Context(), msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-123", h.extractRequestID(t.Context(), msg, event))

	event.RequestID = ""
	_, err := uuid.Parse(h.extractRequestID(t.Context(), msg, event))
	assert.NoError(t, err)
}
