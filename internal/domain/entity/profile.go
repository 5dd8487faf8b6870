// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the root of the profile aggregate: a business-style card owned by the admin.
type Profile struct {
	ID              uuid.UUID // Immutable, globally unique identifier.
	Username        string    // Optional unique handle; empty when unset.
	Name            string
	Tagline         string
	Bio             string
	ProfileImage    string // Public URL of the avatar image.
	CoverImage      string // Public URL of the cover image.
	LocationAddress string
	LocationCity    string
	LocationCountry string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SocialLink is a link to one of the profile's social accounts.
type SocialLink struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Platform  Platform
	URL       string
	Username  string // Display handle, optional.
}

// Service is an offering listed on the profile. Price is free text.
type Service struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	Name        string
	Description string
	Price       string
}

// BusinessHour holds the opening hours for one weekday.
type BusinessHour struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Day       string
	Hours     string
	IsOpen    bool
}

// GalleryImage is one image in the profile gallery, displayed by OrderIndex.
type GalleryImage struct {
	ID         uuid.UUID
	ProfileID  uuid.UUID
	ImageURL   string
	OrderIndex int
}

// ProfileAggregate is a profile row together with all of its child rows.
type ProfileAggregate struct {
	Profile       *Profile
	SocialLinks   []*SocialLink
	Services      []*Service
	BusinessHours []*BusinessHour
	GalleryImages []*GalleryImage
}

// ImageURLs returns every image URL referenced by the aggregate.
func (a *ProfileAggregate) ImageURLs() []string {
	if a == nil || a.Profile == nil {
		return nil
	}

	urls := make([]string, 0, 2+len(a.GalleryImages))
	if a.Profile.ProfileImage != "" {
		urls = append(urls, a.Profile.ProfileImage)
	}
	if a.Profile.CoverImage != "" {
		urls = append(urls, a.Profile.CoverImage)
	}
	for _, img := range a.GalleryImages {
		if img != nil && img.ImageURL != "" {
			urls = append(urls, img.ImageURL)
		}
	}

	return urls
}

// ChildKind names one of the collections owned by a profile.
type ChildKind string

const (
	ChildSocialLinks   ChildKind = "social_links"
	ChildServices      ChildKind = "services"
	ChildBusinessHours ChildKind = "business_hours"
	ChildGalleryImages ChildKind = "gallery_images"
)

// ChildKinds lists the owned collections in the order they are replaced on save.
var ChildKinds = []ChildKind{
	ChildSocialLinks,
	ChildServices,
	ChildBusinessHours,
	ChildGalleryImages,
}
