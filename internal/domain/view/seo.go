package view

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const (
	descriptionLimit    = 160
	descriptionKeep     = 157
	descriptionEllipsis = "..."
)

// SEO is the head metadata of a public profile page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author"`
	Image       string `json:"image"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	OGType      string `json:"ogType"`
	TwitterCard string `json:"twitterCard"`
	Robots      string `json:"robots"`
	// StructuredData is the JSON-LD Person document.
	StructuredData json.RawMessage `json:"structuredData"`
}

type personLD struct {
	Context     string    `json:"@context"`
	Type        string    `json:"@type"`
	Name        string    `json:"name"`
	JobTitle    string    `json:"jobTitle"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	URL         string    `json:"url"`
	Address     addressLD `json:"address"`
	SameAs      []string  `json:"sameAs"`
}

type addressLD struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressCountry  string `json:"addressCountry"`
	StreetAddress   string `json:"streetAddress"`
}

// BuildSEO derives page metadata from a view-model and its canonical URL.
func BuildSEO(p *Profile, profileURL, siteName string) *SEO {
	title := p.Name
	if p.Tagline != "" {
		title = p.Name + " - " + p.Tagline
	}
	description := truncateDescription(p.Bio)

	image := p.CoverImage
	if image == "" {
		image = p.ProfileImage
	}

	sameAs := make([]string, 0, len(p.SocialLinks))
	for _, link := range p.SocialLinks {
		sameAs = append(sameAs, link.URL)
	}

	// json.Marshal cannot fail on this fixed shape of strings.
	ld, _ := json.Marshal(personLD{
		Context:     "https://schema.org",
		Type:        "Person",
		Name:        p.Name,
		JobTitle:    p.Tagline,
		Description: p.Bio,
		Image:       p.ProfileImage,
		URL:         profileURL,
		Address: addressLD{
			Type:            "PostalAddress",
			AddressLocality: p.Location.City,
			AddressCountry:  p.Location.Country,
			StreetAddress:   p.Location.Address,
		},
		SameAs: sameAs,
	})

	return &SEO{
		Title:          title,
		Description:    description,
		Keywords:       keywords(p),
		Author:         p.Name,
		Image:          image,
		URL:            profileURL,
		SiteName:       siteName,
		OGType:         "profile",
		TwitterCard:    "summary_large_image",
		Robots:         "index, follow",
		StructuredData: ld,
	}
}

func truncateDescription(bio string) string {
	if utf8.RuneCountInString(bio) <= descriptionLimit {
		return bio
	}

	return string([]rune(bio)[:descriptionKeep]) + descriptionEllipsis
}

func keywords(p *Profile) string {
	parts := make([]string, 0, 3+len(p.Services))
	for _, s := range []string{p.Name, p.Tagline, p.Location.City} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	for _, svc := range p.Services {
		if svc.Name != "" {
			parts = append(parts, svc.Name)
		}
	}

	return strings.Join(parts, ", ")
}
