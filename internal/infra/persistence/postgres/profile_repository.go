// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/repository"
	"profilecard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain.ProfileRepository interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// withChildren preloads every child collection; gallery images come back in display order.
func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SocialLinks").
		Preload("Services").
		Preload("BusinessHours").
		Preload("GalleryImages", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_index ASC") })
}

func (repo *profileRepository) findOne(db *gorm.DB, op string, query any, args ...any) (*entity.ProfileAggregate, error) {
	var profileM model.ProfileModel
	if err := withChildren(db).Where(query, args...).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, op)
	}

	return toAggregateDomain(&profileM), nil
}

// FindByUsername retrieves a single profile by exact username.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.ProfileAggregate, error) {
	if username == "" {
		return nil, repository.ErrProfileNotFound
	}

	return repo.findOne(repo.db.WithContext(ctx), "failed to find profile by username", "username = ?", username)
}

// FindByID retrieves a single profile by id.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProfileAggregate, error) {
	return repo.findOne(repo.db.WithContext(ctx), "failed to find profile by id", "id = ?", id)
}

// FindByIDFromPrimary retrieves a single profile by id, bypassing read replicas.
func (repo *profileRepository) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.ProfileAggregate, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "failed to find profile by id", "id = ?", id)
}

// FindByNameFragment retrieves profiles whose name contains fragment, ignoring case.
func (repo *profileRepository) FindByNameFragment(ctx context.Context, fragment string, order entity.NameMatchOrder, limit int) ([]*entity.ProfileAggregate, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, nil
	}

	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	query := withChildren(repo.db.WithContext(ctx)).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)

	switch order {
	case entity.NameMatchOldest, entity.NameMatchReject:
		query = query.Order("created_at ASC").Order("id ASC")
	case entity.NameMatchNewest:
		query = query.Order("created_at DESC").Order("id DESC")
	case entity.NameMatchFirst:
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var profileMs []model.ProfileModel
	if err := query.Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by name")
	}

	result := make([]*entity.ProfileAggregate, 0, len(profileMs))
	for i := range profileMs {
		result = append(result, toAggregateDomain(&profileMs[i]))
	}

	return result, nil
}

// FindFirst retrieves the earliest created profile.
func (repo *profileRepository) FindFirst(ctx context.Context) (*entity.ProfileAggregate, error) {
	var profileM model.ProfileModel
	err := withChildren(repo.db.WithContext(ctx)).
		Order("created_at ASC").
		Order("id ASC").
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find first profile")
	}

	return toAggregateDomain(&profileM), nil
}

// List returns every profile row, newest first.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileMs []model.ProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	result := make([]*entity.Profile, 0, len(profileMs))
	for i := range profileMs {
		result = append(result, toProfileDomain(&profileMs[i]))
	}

	return result, nil
}

// Create persists a new profile row. The generated id and timestamps are written back to profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSaveFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update overwrites every scalar column of an existing profile row.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"username":         usernamePtr(profile.Username),
			"name":             profile.Name,
			"tagline":          profile.Tagline,
			"bio":              profile.Bio,
			"profile_image":    profile.ProfileImage,
			"cover_image":      profile.CoverImage,
			"location_address": profile.LocationAddress,
			"location_city":    profile.LocationCity,
			"location_country": profile.LocationCountry,
			"updated_at":       now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = now

	return nil
}

// Delete removes a profile together with its child rows.
func (repo *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.ProfileModel{ID: id})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// escapeLike escapes LIKE metacharacters so the fragment matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
