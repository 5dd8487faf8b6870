package view

import (
	"encoding/json"
	"strings"
	"testing"

	"profilecard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregate() *entity.ProfileAggregate {
	id := uuid.MustParse("8b0c7f0e-4b59-4a0e-9c59-8d2f0a3c1e11")

	return &entity.ProfileAggregate{
		Profile: &entity.Profile{
			ID:           id,
			Username:     "jane-doe",
			Name:         "Jane Doe",
			Tagline:      "Photographer",
			Bio:          "Portraits and events.",
			ProfileImage: "https://img.example.com/profiles/a.jpg",
			LocationCity: "Lisbon",
		},
		SocialLinks: []*entity.SocialLink{
			{ProfileID: id, Platform: entity.PlatformTwitter, URL: "https://x.com/jane"},
		},
		Services: []*entity.Service{
			{ProfileID: id, Name: "Portraits", Description: "One hour session"},
		},
		BusinessHours: []*entity.BusinessHour{
			{ProfileID: id, Day: "Monday", Hours: "9:00 AM - 5:00 PM", IsOpen: true},
		},
		GalleryImages: []*entity.GalleryImage{
			{ProfileID: id, ImageURL: "c.jpg", OrderIndex: 2},
			{ProfileID: id, ImageURL: "a.jpg", OrderIndex: 0},
			{ProfileID: id, ImageURL: "b1.jpg", OrderIndex: 1},
			{ProfileID: id, ImageURL: "b2.jpg", OrderIndex: 1},
		},
	}
}

func TestTransform_MapsFields(t *testing.T) {
	got := Transform(sampleAggregate())

	assert.Equal(t, "8b0c7f0e-4b59-4a0e-9c59-8d2f0a3c1e11", got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Lisbon", got.Location.City)
	assert.Equal(t, "", got.Location.Country)
	require.Len(t, got.SocialLinks, 1)
	assert.Equal(t, SocialLink{
		Platform: "twitter",
		URL:      "https://x.com/jane",
		Label:    "Twitter",
		Icon:     "twitter",
		Style:    "sky",
	}, got.SocialLinks[0])
	assert.Len(t, got.Services, 1)
	assert.Len(t, got.BusinessHours, 1)
}

func TestTransform_GalleryOrderedByIndex(t *testing.T) {
	got := Transform(sampleAggregate())

	assert.Equal(t, []string{"a.jpg", "b1.jpg", "b2.jpg", "c.jpg"}, got.Gallery)
}

func TestTransform_Idempotent(t *testing.T) {
	agg := sampleAggregate()

	assert.Equal(t, Transform(agg), Transform(agg))
}

func TestTransform_NeverNil(t *testing.T) {
	tests := []struct {
		name string
		agg  *entity.ProfileAggregate
	}{
		{name: "nil aggregate", agg: nil},
		{name: "nil profile", agg: &entity.ProfileAggregate{}},
		{name: "nil children", agg: &entity.ProfileAggregate{
			Profile:     &entity.Profile{Name: "Solo"},
			SocialLinks: []*entity.SocialLink{nil},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.agg)

			raw, err := json.Marshal(got)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "null")
			assert.NotNil(t, got.SocialLinks)
			assert.NotNil(t, got.Services)
			assert.NotNil(t, got.BusinessHours)
			assert.NotNil(t, got.Gallery)
		})
	}
}

func TestBuildSEO(t *testing.T) {
	p := Transform(sampleAggregate())
	seo := BuildSEO(p, "https://cards.example.com/u/jane-doe", "Profile Card")

	assert.Equal(t, "Jane Doe - Photographer", seo.Title)
	assert.Equal(t, "Portraits and events.", seo.Description)
	assert.Equal(t, "Jane Doe, Photographer, Lisbon, Portraits", seo.Keywords)
	assert.Equal(t, "https://img.example.com/profiles/a.jpg", seo.Image)
	assert.Equal(t, "profile", seo.OGType)
	assert.Equal(t, "summary_large_image", seo.TwitterCard)
	assert.Equal(t, "index, follow", seo.Robots)

	var ld map[string]any
	require.NoError(t, json.Unmarshal(seo.StructuredData, &ld))
	assert.Equal(t, "Person", ld["@type"])
	assert.Equal(t, []any{"https://x.com/jane"}, ld["sameAs"])
	assert.Equal(t, "Lisbon", ld["address"].(map[string]any)["addressLocality"])
}

func TestBuildSEO_CoverImageAndLongBio(t *testing.T) {
	p := &Profile{
		Name:         "Alex",
		Bio:          strings.Repeat("x", 200),
		ProfileImage: "profile.jpg",
		CoverImage:   "cover.jpg",
	}
	seo := BuildSEO(p, "u", "Site")

	assert.Equal(t, "Alex", seo.Title)
	assert.Equal(t, "cover.jpg", seo.Image)
	assert.Len(t, seo.Description, 160)
	assert.True(t, strings.HasSuffix(seo.Description, "..."))
	assert.Equal(t, strings.Repeat("x", 157)+"...", seo.Description)

	p.Bio = strings.Repeat("y", 160)
	assert.Equal(t, p.Bio, BuildSEO(p, "u", "Site").Description)
}
