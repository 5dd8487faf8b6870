package usecase

import (
	"context"

	"profilecard/internal/domain/service"
)

// ImageCleanupUsecase reacts to profile events delivered to the worker.
type ImageCleanupUsecase interface {
	// HandleProfileEvent deletes stored images of deleted profiles. Other events are ignored.
	HandleProfileEvent(ctx context.Context, event *service.ProfileEvent) (*CleanupResult, error)
}

// CleanupResult reports what the worker did with one event.
type CleanupResult struct {
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"` // URLs not served by the configured storage
}
