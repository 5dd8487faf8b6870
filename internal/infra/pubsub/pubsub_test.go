package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilecard/config"
	"profilecard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_RoundTrip(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	event := &service.ProfileEvent{
		RequestID: "req-1",
		Type:      service.ProfileEventDeleted,
		ProfileID: uuid.New(),
		ImageURLs: []string{"http://localhost/media/profile-images/profiles/a.jpg"},
	}

	pub := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, pub.PublishProfileEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "profile.deleted", received.Message.Attributes["event_type"])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := pub.PublishProfileEvent(context.Background(), &service.ProfileEvent{Type: service.ProfileEventSaved})
	assert.Error(t, err)
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			pub, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, pub)
			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.NoError(t, pub.PublishProfileEvent(context.Background(), &service.ProfileEvent{Type: service.ProfileEventSaved}))
			}
		})
	}
}
