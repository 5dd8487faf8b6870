package repository

import (
	"context"

	"profilecard/internal/domain/entity"
	"profilecard/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned by finders when no row matches.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads and writes profile rows. Finders return whole aggregates
// with every child collection preloaded; gallery images come back by order index.
type ProfileRepository interface {
	// FindByUsername matches username exactly (case-sensitive).
	FindByUsername(ctx context.Context, username string) (*entity.ProfileAggregate, error)

	// FindByID returns the profile with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProfileAggregate, error)

	// FindByIDFromPrimary is FindByID pinned to the primary; used right before and after writes.
	FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.ProfileAggregate, error)

	// FindByNameFragment returns up to limit profiles whose name contains fragment,
	// ignoring case, ordered as requested.
	FindByNameFragment(ctx context.Context, fragment string, order entity.NameMatchOrder, limit int) ([]*entity.ProfileAggregate, error)

	// FindFirst returns the earliest created profile.
	FindFirst(ctx context.Context) (*entity.ProfileAggregate, error)

	// List returns all profile rows newest first, without children.
	List(ctx context.Context) ([]*entity.Profile, error)

	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileChildRepository writes the four child collections of a profile.
type ProfileChildRepository interface {
	// DeleteAll removes every row of one child collection for the profile.
	DeleteAll(ctx context.Context, profileID uuid.UUID, kind entity.ChildKind) error

	InsertSocialLinks(ctx context.Context, links []*entity.SocialLink) error
	InsertServices(ctx context.Context, services []*entity.Service) error
	InsertBusinessHours(ctx context.Context, hours []*entity.BusinessHour) error
	InsertGalleryImages(ctx context.Context, images []*entity.GalleryImage) error
}
