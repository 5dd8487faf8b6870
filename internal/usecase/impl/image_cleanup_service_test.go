package impl

import (
	"context"
	"testing"

	"profilecard/internal/domain/service"
	mockSvc "profilecard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCleanupService_DeletesOwnedImages(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	srv := NewImageCleanupService(ImageCleanupServiceParams{Storage: storage, Logger: newDiscardLogger()})
	ctx := context.Background()

	storage.EXPECT().ObjectKey("https://cdn/profile-images/profiles/a.png").Return("profile-images/profiles/a.png", true)
	storage.EXPECT().ObjectKey("https://elsewhere.example/b.png").Return("", false)
	storage.EXPECT().Delete(ctx, "profile-images/profiles/a.png").Return(nil)

	result, err := srv.HandleProfileEvent(ctx, &service.ProfileEvent{
		Type:      service.ProfileEventDeleted,
		ProfileID: uuid.New(),
		ImageURLs: []string{"https://cdn/profile-images/profiles/a.png", "https://elsewhere.example/b.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Skipped)
}

func TestImageCleanupService_IgnoresSavedEvents(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	srv := NewImageCleanupService(ImageCleanupServiceParams{Storage: storage, Logger: newDiscardLogger()})

	result, err := srv.HandleProfileEvent(context.Background(), &service.ProfileEvent{
		Type:      service.ProfileEventSaved,
		ImageURLs: []string{"https://cdn/a.png"},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Deleted)
	assert.Zero(t, result.Skipped)
}

func TestImageCleanupService_ContinuesPastFailures(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	srv := NewImageCleanupService(ImageCleanupServiceParams{Storage: storage, Logger: newDiscardLogger()})
	ctx := context.Background()

	storage.EXPECT().ObjectKey("https://cdn/a.png").Return("a.png", true)
	storage.EXPECT().ObjectKey("https://cdn/b.png").Return("b.png", true)
	storage.EXPECT().Delete(ctx, "a.png").Return(errors.New("permission denied"))
	storage.EXPECT().Delete(ctx, "b.png").Return(nil)

	result, err := srv.HandleProfileEvent(ctx, &service.ProfileEvent{
		Type:      service.ProfileEventDeleted,
		ImageURLs: []string{"https://cdn/a.png", "https://cdn/b.png"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, 1, result.Deleted)
}
