package postgres

import (
	"context"
	"fmt"

	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/repository"
	"profilecard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileChildRepository implements the domain.ProfileChildRepository interface using GORM.
type profileChildRepository struct {
	db *gorm.DB
}

// NewProfileChildRepository is the constructor for profileChildRepository.
func NewProfileChildRepository(db *gorm.DB) repository.ProfileChildRepository {
	return &profileChildRepository{db: db}
}

// DeleteAll removes one child collection of a profile.
func (repo *profileChildRepository) DeleteAll(ctx context.Context, profileID uuid.UUID, kind entity.ChildKind) error {
	var target any
	switch kind {
	case entity.ChildSocialLinks:
		target = &model.SocialLinkModel{}
	case entity.ChildServices:
		target = &model.ServiceModel{}
	case entity.ChildBusinessHours:
		target = &model.BusinessHourModel{}
	case entity.ChildGalleryImages:
		target = &model.GalleryImageModel{}
	default:
		return fmt.Errorf("unknown child collection: %q", kind)
	}

	if err := repo.db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(target).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete "+string(kind))
	}

	return nil
}

// InsertSocialLinks batch inserts social links.
func (repo *profileChildRepository) InsertSocialLinks(ctx context.Context, links []*entity.SocialLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]model.SocialLinkModel, 0, len(links))
	for _, l := range links {
		rows = append(rows, fromSocialLinkDomain(l))
	}

	return repo.insert(ctx, &rows, entity.ChildSocialLinks)
}

// InsertServices batch inserts services.
func (repo *profileChildRepository) InsertServices(ctx context.Context, services []*entity.Service) error {
	if len(services) == 0 {
		return nil
	}

	rows := make([]model.ServiceModel, 0, len(services))
	for _, s := range services {
		rows = append(rows, fromServiceDomain(s))
	}

	return repo.insert(ctx, &rows, entity.ChildServices)
}

// InsertBusinessHours batch inserts business hours.
func (repo *profileChildRepository) InsertBusinessHours(ctx context.Context, hours []*entity.BusinessHour) error {
	if len(hours) == 0 {
		return nil
	}

	rows := make([]model.BusinessHourModel, 0, len(hours))
	for _, h := range hours {
		rows = append(rows, fromBusinessHourDomain(h))
	}

	return repo.insert(ctx, &rows, entity.ChildBusinessHours)
}

// InsertGalleryImages batch inserts gallery images.
func (repo *profileChildRepository) InsertGalleryImages(ctx context.Context, images []*entity.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}

	rows := make([]model.GalleryImageModel, 0, len(images))
	for _, g := range images {
		rows = append(rows, fromGalleryImageDomain(g))
	}

	return repo.insert(ctx, &rows, entity.ChildGalleryImages)
}

func (repo *profileChildRepository) insert(ctx context.Context, rows any, kind entity.ChildKind) error {
	if err := repo.db.WithContext(ctx).Create(rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSaveFailed.WrapMessage("profile does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert "+string(kind))
	}

	return nil
}
