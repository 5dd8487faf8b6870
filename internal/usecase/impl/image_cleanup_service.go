package impl

import (
	"context"
	"log/slog"

	deliverycontext "profilecard/internal/delivery/context"
	"profilecard/internal/domain/service"
	"profilecard/internal/errors"
	"profilecard/internal/usecase"

	"go.uber.org/fx"
)

// ImageCleanupServiceParams holds dependencies for the cleanup service, injected by Fx.
type ImageCleanupServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

type imageCleanupService struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewImageCleanupService is the constructor for imageCleanupService.
func NewImageCleanupService(params ImageCleanupServiceParams) usecase.ImageCleanupUsecase {
	return &imageCleanupService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *imageCleanupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleProfileEvent deletes every image of a deleted profile that this storage owns.
// Deletion keeps going past failures and reports them together.
func (srv *imageCleanupService) HandleProfileEvent(ctx context.Context, event *service.ProfileEvent) (*usecase.CleanupResult, error) {
	result := &usecase.CleanupResult{}
	if event == nil || event.Type != service.ProfileEventDeleted {
		return result, nil
	}

	logger := srv.log(ctx).With(slog.String("profile_id", event.ProfileID.String()))

	var errs []error
	for _, url := range event.ImageURLs {
		key, ok := srv.storage.ObjectKey(url)
		if !ok {
			result.Skipped++

			continue
		}

		if err := srv.storage.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete image", slog.String("key", key), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "delete %s", key))

			continue
		}
		result.Deleted++
	}

	logger.Info("Profile images cleaned up",
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(errs)),
	)

	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	return result, nil
}
