// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"profilecard/internal/domain/entity"
	"profilecard/internal/domain/service"
	"profilecard/internal/domain/view"

	"github.com/google/uuid"
)

// PublicProfileUsecase serves the public profile page.
type PublicProfileUsecase interface {
	// Resolve finds the profile for an identifier: username, then id, then name fragment.
	Resolve(ctx context.Context, identifier string) (*PublicProfile, error)

	// ResolveDefault returns the profile with the given id, or the first profile when id is empty.
	ResolveDefault(ctx context.Context, profileID string) (*PublicProfile, error)

	// QRCode renders a PNG QR code pointing at the canonical URL of the resolved profile.
	QRCode(ctx context.Context, identifier string) ([]byte, error)
}

// AdminProfileUsecase manages profiles from the admin panel.
type AdminProfileUsecase interface {
	ListProfiles(ctx context.Context) ([]*ProfileSummary, error)

	// NewProfileForm returns the initial form state for a profile that does not exist yet.
	NewProfileForm() *ProfileForm

	// GetProfileForm loads a profile into form state. Business hours always have seven rows.
	GetProfileForm(ctx context.Context, id uuid.UUID) (*ProfileForm, error)

	// SaveProfile creates (ID nil) or replaces (ID set) a profile aggregate.
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileResult, error)

	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

// --- Output DTOs ---

// PublicProfile is everything the public page needs.
type PublicProfile struct {
	Profile    *view.Profile `json:"profile"`
	SEO        *view.SEO     `json:"seo"`
	ProfileURL string        `json:"profileUrl"`
}

// ProfileSummary is one row of the admin list.
type ProfileSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	ProfileImage string    `json:"profileImage"`
	ProfileURL   string    `json:"profileUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileForm is the editable state of one profile. It is owned by the request that
// loaded it and never shared.
type ProfileForm struct {
	ID *uuid.UUID `json:"id,omitempty"`
	ProfileInput
}

// SaveProfileResult is returned after a successful save.
type SaveProfileResult struct {
	ID      uuid.UUID     `json:"id"`
	Created bool          `json:"created"`
	Profile *view.Profile `json:"profile"`
}

// --- Input DTOs ---

// ProfileInput is the editable content of a profile.
type ProfileInput struct {
	Username      string              `json:"username" validate:"omitempty,max=255,username"`
	Name          string              `json:"name" validate:"required,max=255"`
	Tagline       string              `json:"tagline" validate:"max=255"`
	Bio           string              `json:"bio"`
	ProfileImage  string              `json:"profileImage"` // Current URL, kept unless a new file replaces it.
	CoverImage    string              `json:"coverImage"`
	Location      LocationInput       `json:"location"`
	SocialLinks   []SocialLinkInput   `json:"socialLinks" validate:"dive"`
	Services      []ServiceInput      `json:"services"`
	BusinessHours []BusinessHourInput `json:"businessHours" validate:"dive"`
	Gallery       []string            `json:"gallery"` // Existing image URLs to keep, in display order.
}

type LocationInput struct {
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city" validate:"max=255"`
	Country string `json:"country" validate:"max=255"`
}

type SocialLinkInput struct {
	Platform string `json:"platform" validate:"omitempty,platform"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

type ServiceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type BusinessHourInput struct {
	Day    string `json:"day" validate:"required,weekday"`
	Hours  string `json:"hours" validate:"max=255"`
	IsOpen bool   `json:"isOpen"`
}

// SaveProfileInput is a submitted admin form together with any newly attached files.
type SaveProfileInput struct {
	ID           *uuid.UUID
	Profile      ProfileInput
	ProfileImage *service.ImageUpload
	CoverImage   *service.ImageUpload
	Gallery      []*service.ImageUpload
}

// DefaultBusinessHourInputs returns one open row per weekday with the placeholder hours.
func DefaultBusinessHourInputs() []BusinessHourInput {
	hours := make([]BusinessHourInput, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		hours = append(hours, BusinessHourInput{Day: day, Hours: entity.DefaultBusinessHours, IsOpen: true})
	}

	return hours
}
