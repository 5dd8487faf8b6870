// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"profilecard/config"
	deliverycontext "profilecard/internal/delivery/context"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/repository"
	"profilecard/internal/domain/service"
	"profilecard/internal/domain/view"
	"profilecard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublicProfileServiceParams holds dependencies for the public profile service, injected by Fx.
type PublicProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// publicProfileService implements the PublicProfileUsecase interface.
type publicProfileService struct {
	profileRepo repository.ProfileRepository
	qrCode      service.QRCodeService
	nameMatch   entity.NameMatchOrder
	baseURL     string
	siteName    string
	logger      *slog.Logger
}

// NewPublicProfileService is the constructor for publicProfileService.
func NewPublicProfileService(params PublicProfileServiceParams) (usecase.PublicProfileUsecase, error) {
	nameMatch := entity.NameMatchOldest
	if params.Config.Resolver != nil && params.Config.Resolver.NameMatch != "" {
		parsed, err := entity.ParseNameMatchOrder(params.Config.Resolver.NameMatch)
		if err != nil {
			return nil, errors.Wrap(err, "resolver.nameMatch")
		}
		nameMatch = parsed
	}

	var baseURL, siteName string
	if params.Config.Public != nil {
		baseURL = strings.TrimRight(params.Config.Public.BaseURL, "/")
		siteName = params.Config.Public.SiteName
	}

	return &publicProfileService{
		profileRepo: params.ProfileRepo,
		qrCode:      params.QRCode,
		nameMatch:   nameMatch,
		baseURL:     baseURL,
		siteName:    siteName,
		logger:      params.Logger,
	}, nil
}

func (srv *publicProfileService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve tries username, then id, then a case-insensitive name fragment.
// Each call queries the store again; nothing is cached.
func (srv *publicProfileService) Resolve(ctx context.Context, identifier string) (*usecase.PublicProfile, error) {
	agg, err := srv.resolve(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, err
	}

	return srv.present(agg), nil
}

func (srv *publicProfileService) resolve(ctx context.Context, identifier string) (*entity.ProfileAggregate, error) {
	logger := srv.getLogger(ctx)
	if identifier == "" {
		return nil, domainerrors.ErrProfileNotFound
	}

	// 1. Exact username
	agg, err := srv.profileRepo.FindByUsername(ctx, identifier)
	if err == nil {
		logger.Debug("Profile resolved by username", slog.String("identifier", identifier))

		return agg, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	// 2. Exact id; identifiers that are not UUIDs cannot match
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		agg, err = srv.profileRepo.FindByID(ctx, id)
		if err == nil {
			logger.Debug("Profile resolved by id", slog.String("identifier", identifier))

			return agg, nil
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}
	}

	// 3. Name fragment, ignoring case
	limit := 1
	if srv.nameMatch == entity.NameMatchReject {
		limit = 2
	}
	matches, err := srv.profileRepo.FindByNameFragment(ctx, identifier, srv.nameMatch, limit)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	switch {
	case len(matches) == 0:
		logger.Debug("Profile not found", slog.String("identifier", identifier))

		return nil, domainerrors.ErrProfileNotFound
	case len(matches) > 1 && srv.nameMatch == entity.NameMatchReject:
		return nil, domainerrors.ErrProfileAmbiguous.WithDetails(identifier)
	}

	logger.Debug("Profile resolved by name",
		slog.String("identifier", identifier),
		slog.String("name_match", string(srv.nameMatch)),
	)

	return matches[0], nil
}

// ResolveDefault serves the site root: ?profile=<id> or the first profile.
func (srv *publicProfileService) ResolveDefault(ctx context.Context, profileID string) (*usecase.PublicProfile, error) {
	var (
		agg *entity.ProfileAggregate
		err error
	)

	if profileID = strings.TrimSpace(profileID); profileID != "" {
		id, parseErr := uuid.Parse(profileID)
		if parseErr != nil {
			return nil, domainerrors.ErrProfileNotFound
		}
		agg, err = srv.profileRepo.FindByID(ctx, id)
	} else {
		agg, err = srv.profileRepo.FindFirst(ctx)
	}

	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return srv.present(agg), nil
}

// QRCode renders the QR code of the resolved profile's canonical URL.
func (srv *publicProfileService) QRCode(ctx context.Context, identifier string) ([]byte, error) {
	agg, err := srv.resolve(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateProfileQR(srv.profileURL(agg.Profile))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *publicProfileService) present(agg *entity.ProfileAggregate) *usecase.PublicProfile {
	profile := view.Transform(agg)
	profileURL := srv.profileURL(agg.Profile)

	return &usecase.PublicProfile{
		Profile:    profile,
		SEO:        view.BuildSEO(profile, profileURL, srv.siteName),
		ProfileURL: profileURL,
	}
}

// profileURL is the canonical public URL: /u/<username>, or /u/<id> for profiles without one.
func (srv *publicProfileService) profileURL(p *entity.Profile) string {
	return ProfileURL(srv.baseURL, p)
}

// ProfileURL builds the canonical public URL of a profile under baseURL.
func ProfileURL(baseURL string, p *entity.Profile) string {
	if p == nil {
		return baseURL + "/"
	}

	identifier := p.Username
	if identifier == "" {
		identifier = p.ID.String()
	}

	return baseURL + "/u/" + url.PathEscape(identifier)
}
