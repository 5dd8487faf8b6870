package impl

import (
	"context"
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"

	"profilecard/config"
	deliverycontext "profilecard/internal/delivery/context"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/repository"
	"profilecard/internal/domain/service"
	"profilecard/internal/domain/validation"
	"profilecard/internal/domain/view"
	"profilecard/internal/usecase"
	"profilecard/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AdminProfileServiceParams holds dependencies for the admin profile service, injected by Fx.
type AdminProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Storage     service.ImageStorage
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// adminProfileService implements the AdminProfileUsecase interface.
type adminProfileService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	storage      service.ImageStorage
	publisher    service.EventPublisher
	validate     *validator.Validate
	bucket       string
	maxImageSize int64
	baseURL      string
	newID        func() uuid.UUID
	logger       *slog.Logger
}

// NewAdminProfileService is the constructor for adminProfileService.
func NewAdminProfileService(params AdminProfileServiceParams) usecase.AdminProfileUsecase {
	srv := &adminProfileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		storage:     params.Storage,
		publisher:   params.Publisher,
		validate:    validation.New(),
		newID:       uuid.New,
		logger:      params.Logger,
	}

	if params.Config.Storage != nil {
		srv.bucket = params.Config.Storage.Bucket
	}
	if params.Config.Upload != nil {
		srv.maxImageSize = params.Config.Upload.MaxImageSize
	}
	if params.Config.Public != nil {
		srv.baseURL = strings.TrimRight(params.Config.Public.BaseURL, "/")
	}

	return srv
}

func (srv *adminProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProfiles returns every profile, newest first.
func (srv *adminProfileService) ListProfiles(ctx context.Context) ([]*usecase.ProfileSummary, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	summaries := make([]*usecase.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, &usecase.ProfileSummary{
			ID:           p.ID,
			Username:     p.Username,
			Name:         p.Name,
			Tagline:      p.Tagline,
			ProfileImage: p.ProfileImage,
			ProfileURL:   ProfileURL(srv.baseURL, p),
			CreatedAt:    p.CreatedAt,
		})
	}

	return summaries, nil
}

// NewProfileForm returns a blank form with the seven default business-hour rows.
func (srv *adminProfileService) NewProfileForm() *usecase.ProfileForm {
	return &usecase.ProfileForm{
		ProfileInput: usecase.ProfileInput{
			SocialLinks:   []usecase.SocialLinkInput{},
			Services:      []usecase.ServiceInput{},
			BusinessHours: usecase.DefaultBusinessHourInputs(),
			Gallery:       []string{},
		},
	}
}

// GetProfileForm loads a profile from the primary so that an edit right after a save sees it.
func (srv *adminProfileService) GetProfileForm(ctx context.Context, id uuid.UUID) (*usecase.ProfileForm, error) {
	agg, err := srv.profileRepo.FindByIDFromPrimary(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return formFromAggregate(agg), nil
}

func formFromAggregate(agg *entity.ProfileAggregate) *usecase.ProfileForm {
	p := view.Transform(agg)
	id := agg.Profile.ID

	form := &usecase.ProfileForm{
		ID: &id,
		ProfileInput: usecase.ProfileInput{
			Username:      p.Username,
			Name:          p.Name,
			Tagline:       p.Tagline,
			Bio:           p.Bio,
			ProfileImage:  p.ProfileImage,
			CoverImage:    p.CoverImage,
			Location:      usecase.LocationInput(p.Location),
			SocialLinks:   make([]usecase.SocialLinkInput, 0, len(p.SocialLinks)),
			Services:      make([]usecase.ServiceInput, 0, len(p.Services)),
			BusinessHours: make([]usecase.BusinessHourInput, 0, len(entity.Weekdays)),
			Gallery:       p.Gallery,
		},
	}

	for _, link := range p.SocialLinks {
		form.SocialLinks = append(form.SocialLinks, usecase.SocialLinkInput{
			Platform: link.Platform,
			URL:      link.URL,
			Username: link.Username,
		})
	}
	for _, svc := range p.Services {
		form.Services = append(form.Services, usecase.ServiceInput(svc))
	}
	for _, row := range entity.NormalizeBusinessHours(agg.BusinessHours) {
		form.BusinessHours = append(form.BusinessHours, usecase.BusinessHourInput{
			Day:    row.Day,
			Hours:  row.Hours,
			IsOpen: row.IsOpen,
		})
	}

	return form
}

// SaveProfile runs validate, upload, upsert parent, replace children, re-read.
func (srv *adminProfileService) SaveProfile(ctx context.Context, input *usecase.SaveProfileInput) (*usecase.SaveProfileResult, error) {
	logger := srv.log(ctx)

	if err := srv.validateInput(input); err != nil {
		logger.Warn("Profile input rejected", slog.Any("error", err))

		return nil, err
	}

	profile := profileFromInput(&input.Profile)
	galleryURLs := nonEmpty(input.Profile.Gallery)

	// Uploads run before any write; a failure leaves earlier uploads orphaned.
	if err := srv.uploadImages(ctx, input, profile, &galleryURLs); err != nil {
		logger.Error("Image upload failed", slog.Any("error", err))

		return nil, err
	}

	created := input.ID == nil
	var saved *entity.ProfileAggregate

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.NewProfileRepository()
		childRepo := factory.NewProfileChildRepository()

		if created {
			if err := profileRepo.Create(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
		} else {
			profile.ID = *input.ID
			if err := profileRepo.Update(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
			for _, kind := range entity.ChildKinds {
				if err := childRepo.DeleteAll(ctx, profile.ID, kind); err != nil {
					return errors.Wrapf(err, "failed to delete %s", kind)
				}
			}
		}

		if err := insertChildren(ctx, childRepo, profile.ID, &input.Profile, galleryURLs); err != nil {
			return err
		}

		agg, err := profileRepo.FindByIDFromPrimary(ctx, profile.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload profile")
		}
		saved = agg

		return nil
	})
	if err != nil {
		logger.Error("Failed to save profile",
			slog.String("profile_id", profile.ID.String()),
			slog.Bool("created", created),
			slog.Any("error", err),
		)

		return nil, saveError(err)
	}

	logger.Info("Profile saved",
		slog.String("profile_id", profile.ID.String()),
		slog.Bool("created", created),
	)

	srv.publish(ctx, &service.ProfileEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.ProfileEventSaved,
		ProfileID: profile.ID,
		Username:  profile.Username,
		ImageURLs: saved.ImageURLs(),
	})

	return &usecase.SaveProfileResult{
		ID:      profile.ID,
		Created: created,
		Profile: view.Transform(saved),
	}, nil
}

// saveError keeps the codes a caller can act on and folds every other store failure
// into the generic save error.
func saveError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return domainerrors.ErrProfileNotFound
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		return domainerrors.ErrUsernameTaken
	default:
		return errors.Wrap(domainerrors.ErrSaveFailed, err.Error())
	}
}

func (srv *adminProfileService) validateInput(input *usecase.SaveProfileInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("profile is required")
	}

	input.Profile.Username = strings.TrimSpace(input.Profile.Username)
	input.Profile.Name = strings.TrimSpace(input.Profile.Name)

	var details []string
	if err := srv.validate.Struct(&input.Profile); err != nil {
		details = append(details, validation.Describe(err)...)
	}

	seenDays := make(map[string]bool, len(input.Profile.BusinessHours))
	for i, row := range input.Profile.BusinessHours {
		day, ok := entity.ParseWeekday(row.Day)
		if !ok {
			continue
		}
		if seenDays[day] {
			details = append(details, "businessHours["+strconv.Itoa(i)+"].day repeats "+day)
		}
		seenDays[day] = true
	}

	check := func(field string, upload *service.ImageUpload) {
		if upload == nil {
			return
		}
		if srv.maxImageSize > 0 && upload.Size > srv.maxImageSize {
			details = append(details, field+" exceeds the maximum image size of "+util.FormatBytes(srv.maxImageSize))
		}
		if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
			details = append(details, field+" must be an image")
		}
	}
	check("profileImage", input.ProfileImage)
	check("coverImage", input.CoverImage)
	for i, upload := range input.Gallery {
		check("gallery["+strconv.Itoa(i)+"]", upload)
	}

	if len(details) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return nil
}

func (srv *adminProfileService) uploadImages(ctx context.Context, input *usecase.SaveProfileInput, profile *entity.Profile, galleryURLs *[]string) error {
	if input.ProfileImage != nil {
		url, err := srv.upload(ctx, constants.UploadFolderProfile, input.ProfileImage)
		if err != nil {
			return err
		}
		profile.ProfileImage = url
	}

	if input.CoverImage != nil {
		url, err := srv.upload(ctx, constants.UploadFolderCover, input.CoverImage)
		if err != nil {
			return err
		}
		profile.CoverImage = url
	}

	for _, img := range input.Gallery {
		if img == nil {
			continue
		}
		url, err := srv.upload(ctx, constants.UploadFolderGallery, img)
		if err != nil {
			return err
		}
		*galleryURLs = append(*galleryURLs, url)
	}

	return nil
}

func (srv *adminProfileService) upload(ctx context.Context, folder string, img *service.ImageUpload) (string, error) {
	objectPath := path.Join(folder, srv.newID().String()+"-"+sanitizeFilename(img.Filename))

	url, err := srv.storage.Upload(ctx, srv.bucket, objectPath, img)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("path", objectPath), slog.String("url", url))

	return url, nil
}

// DeleteProfile removes the profile and its children, then announces the freed images.
func (srv *adminProfileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	var imageURLs []string
	var username string

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.NewProfileRepository()

		agg, err := profileRepo.FindByIDFromPrimary(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load profile")
		}
		imageURLs = agg.ImageURLs()
		username = agg.Profile.Username

		if err := profileRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}
		srv.log(ctx).Error("Failed to delete profile", slog.String("profile_id", id.String()), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrDeleteFailed, err.Error())
	}

	srv.log(ctx).Info("Profile deleted", slog.String("profile_id", id.String()))

	srv.publish(ctx, &service.ProfileEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.ProfileEventDeleted,
		ProfileID: id,
		Username:  username,
		ImageURLs: imageURLs,
	})

	return nil
}

// publish never fails the caller; the profile is already stored.
func (srv *adminProfileService) publish(ctx context.Context, event *service.ProfileEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event",
			slog.String("event_type", string(event.Type)),
			slog.String("profile_id", event.ProfileID.String()),
			slog.Any("error", err),
		)
	}
}

func profileFromInput(in *usecase.ProfileInput) *entity.Profile {
	return &entity.Profile{
		Username:        in.Username,
		Name:            in.Name,
		Tagline:         in.Tagline,
		Bio:             in.Bio,
		ProfileImage:    in.ProfileImage,
		CoverImage:      in.CoverImage,
		LocationAddress: in.Location.Address,
		LocationCity:    in.Location.City,
		LocationCountry: in.Location.Country,
	}
}

func insertChildren(ctx context.Context, childRepo repository.ProfileChildRepository, profileID uuid.UUID, in *usecase.ProfileInput, galleryURLs []string) error {
	links := make([]*entity.SocialLink, 0, len(in.SocialLinks))
	for _, link := range in.SocialLinks {
		platform, ok := entity.ParsePlatform(link.Platform)
		if !ok || strings.TrimSpace(link.URL) == "" {
			continue
		}
		links = append(links, &entity.SocialLink{
			ProfileID: profileID,
			Platform:  platform,
			URL:       strings.TrimSpace(link.URL),
			Username:  link.Username,
		})
	}
	if len(links) > 0 {
		if err := childRepo.InsertSocialLinks(ctx, links); err != nil {
			return errors.Wrap(err, "failed to insert social links")
		}
	}

	services := make([]*entity.Service, 0, len(in.Services))
	for _, svc := range in.Services {
		if strings.TrimSpace(svc.Name) == "" || strings.TrimSpace(svc.Description) == "" {
			continue
		}
		services = append(services, &entity.Service{
			ProfileID:   profileID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
		})
	}
	if len(services) > 0 {
		if err := childRepo.InsertServices(ctx, services); err != nil {
			return errors.Wrap(err, "failed to insert services")
		}
	}

	submitted := make([]*entity.BusinessHour, 0, len(in.BusinessHours))
	for _, row := range in.BusinessHours {
		submitted = append(submitted, &entity.BusinessHour{Day: row.Day, Hours: row.Hours, IsOpen: row.IsOpen})
	}
	hours := entity.NormalizeBusinessHours(submitted)
	for _, row := range hours {
		row.ID = uuid.Nil
		row.ProfileID = profileID
	}
	if err := childRepo.InsertBusinessHours(ctx, hours); err != nil {
		return errors.Wrap(err, "failed to insert business hours")
	}

	if len(galleryURLs) > 0 {
		images := make([]*entity.GalleryImage, 0, len(galleryURLs))
		for i, url := range galleryURLs {
			images = append(images, &entity.GalleryImage{ProfileID: profileID, ImageURL: url, OrderIndex: i})
		}
		if err := childRepo.InsertGalleryImages(ctx, images); err != nil {
			return errors.Wrap(err, "failed to insert gallery images")
		}
	}

	return nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "/" {
		return "image"
	}

	return name
}
