// Package view builds the presentation-ready profile shape from stored rows.
package view

import (
	"cmp"
	"slices"

	"profilecard/internal/domain/entity"
)

// Profile is the denormalized view-model rendered by the public page and returned by the public API.
// Every string is non-nil and every collection is an empty slice rather than nil.
type Profile struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	Name          string         `json:"name"`
	Tagline       string         `json:"tagline"`
	Bio           string         `json:"bio"`
	ProfileImage  string         `json:"profileImage"`
	CoverImage    string         `json:"coverImage"`
	Location      Location       `json:"location"`
	SocialLinks   []SocialLink   `json:"socialLinks"`
	Services      []Service      `json:"services"`
	BusinessHours []BusinessHour `json:"businessHours"`
	Gallery       []string       `json:"gallery"`
}

type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// SocialLink carries the platform's presentation data alongside the stored link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Style    string `json:"style"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type BusinessHour struct {
	Day    string `json:"day"`
	Hours  string `json:"hours"`
	IsOpen bool   `json:"isOpen"`
}

// Transform maps a profile aggregate to its view-model. It never fails: a nil
// aggregate, nil profile or nil child rows produce empty values.
// Collections keep their stored order except the gallery, which is sorted by order index.
func Transform(agg *entity.ProfileAggregate) *Profile {
	out := &Profile{
		SocialLinks:   []SocialLink{},
		Services:      []Service{},
		BusinessHours: []BusinessHour{},
		Gallery:       []string{},
	}
	if agg == nil {
		return out
	}

	if p := agg.Profile; p != nil {
		out.ID = p.ID.String()
		out.Username = p.Username
		out.Name = p.Name
		out.Tagline = p.Tagline
		out.Bio = p.Bio
		out.ProfileImage = p.ProfileImage
		out.CoverImage = p.CoverImage
		out.Location = Location{
			Address: p.LocationAddress,
			City:    p.LocationCity,
			Country: p.LocationCountry,
		}
	}

	for _, link := range agg.SocialLinks {
		if link == nil {
			continue
		}
		info := link.Platform.Info()
		out.SocialLinks = append(out.SocialLinks, SocialLink{
			Platform: info.Name,
			URL:      link.URL,
			Username: link.Username,
			Label:    info.Label,
			Icon:     info.Icon,
			Style:    info.Style,
		})
	}

	for _, svc := range agg.Services {
		if svc == nil {
			continue
		}
		out.Services = append(out.Services, Service{
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
		})
	}

	for _, bh := range agg.BusinessHours {
		if bh == nil {
			continue
		}
		out.BusinessHours = append(out.BusinessHours, BusinessHour{
			Day:    bh.Day,
			Hours:  bh.Hours,
			IsOpen: bh.IsOpen,
		})
	}

	images := make([]*entity.GalleryImage, 0, len(agg.GalleryImages))
	for _, img := range agg.GalleryImages {
		if img != nil {
			images = append(images, img)
		}
	}
	slices.SortStableFunc(images, func(a, b *entity.GalleryImage) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
	for _, img := range images {
		out.Gallery = append(out.Gallery, img.ImageURL)
	}

	return out
}
