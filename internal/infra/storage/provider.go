// Package storage provides the image storage backends used by the admin save path.
package storage

import (
	"context"
	"log/slog"

	"profilecard/config"
	"profilecard/internal/domain/constants"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrObjectNotFound is returned by Open when the key does not exist.
var ErrObjectNotFound = domainerrors.ErrMediaNotFound

// StorageParams holds dependencies for ImageStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// StorageResult exposes the storage both as ImageStorage and, when supported, as MediaReader.
type StorageResult struct {
	fx.Out

	Storage service.ImageStorage
	Media   service.MediaReader
}

// NewImageStorage creates the ImageStorage selected by storage.provider
func NewImageStorage(params StorageParams) (StorageResult, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil {
		return StorageResult{}, errors.New("storage is not configured")
	}

	switch cfg.Provider {
	case constants.StorageProviderBlob, "":
		if cfg.BucketURL == "" {
			return StorageResult{}, errors.New("bucketUrl is required for blob provider")
		}
		if cfg.PublicBaseURL == "" {
			return StorageResult{}, errors.New("publicBaseUrl is required for blob provider")
		}

		store, err := OpenBlobStorage(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL, logger)
		if err != nil {
			return StorageResult{}, err
		}
		logger.Info("Using blob image storage",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("public_base_url", cfg.PublicBaseURL),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing image bucket")

				return store.Close()
			},
		})

		return StorageResult{Storage: store, Media: store}, nil

	case constants.StorageProviderCloudinary:
		if cfg.CloudinaryURL == "" {
			return StorageResult{}, errors.New("cloudinaryUrl is required for cloudinary provider")
		}

		store, err := NewCloudinaryStorage(cfg.CloudinaryURL, logger)
		if err != nil {
			return StorageResult{}, err
		}
		logger.Info("Using Cloudinary image storage")

		return StorageResult{Storage: store}, nil

	default:
		return StorageResult{}, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
