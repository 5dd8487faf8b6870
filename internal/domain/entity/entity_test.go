package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"instagram", PlatformInstagram, true},
		{"  LinkedIn ", PlatformLinkedIn, true},
		{"whatsapp", PlatformWhatsApp, true},
		{"email", PlatformEmail, true},
		{"twitter", PlatformTwitter, true},
		{"facebook", PlatformFacebook, true},
		{"youtube", PlatformYouTube, true},
		{"myspace", PlatformUnknown, false},
		{"", PlatformUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePlatform(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPlatform_InfoTableCoversEveryPlatform(t *testing.T) {
	count := 0
	for p := PlatformInstagram; p.IsValid(); p++ {
		info := p.Info()
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Icon)
		assert.NotEmpty(t, info.Style)
		assert.Equal(t, info.Name, p.String())

		parsed, ok := ParsePlatform(info.Name)
		require.True(t, ok)
		assert.Equal(t, p, parsed)
		count++
	}
	assert.Equal(t, 7, count)
	assert.False(t, PlatformUnknown.IsValid())
	assert.Equal(t, "link", Platform(200).Info().Icon)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Monday", "Monday", true},
		{"monday", "Monday", true},
		{" SUNDAY ", "Sunday", true},
		{"Funday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBusinessHours_AlwaysSevenRows(t *testing.T) {
	profileID := uuid.New()
	rows := []*BusinessHour{
		{ProfileID: profileID, Day: "Sunday", Hours: "Closed", IsOpen: false},
		{ProfileID: profileID, Day: "monday", Hours: "8:00 AM - 4:00 PM", IsOpen: true},
		{ProfileID: profileID, Day: "Monday", Hours: "duplicate", IsOpen: true},
		{ProfileID: profileID, Day: "Funday", Hours: "never", IsOpen: true},
		nil,
	}

	got := NormalizeBusinessHours(rows)

	require.Len(t, got, 7)
	for i, day := range Weekdays {
		assert.Equal(t, day, got[i].Day)
	}
	assert.Equal(t, "8:00 AM - 4:00 PM", got[0].Hours)
	assert.Equal(t, DefaultBusinessHours, got[1].Hours)
	assert.True(t, got[1].IsOpen)
	assert.Equal(t, "Closed", got[6].Hours)
	assert.False(t, got[6].IsOpen)
}

func TestNormalizeBusinessHours_Empty(t *testing.T) {
	got := NormalizeBusinessHours(nil)
	require.Len(t, got, 7)
	for _, row := range got {
		assert.Equal(t, DefaultBusinessHours, row.Hours)
		assert.True(t, row.IsOpen)
	}
}

func TestProfileAggregate_ImageURLs(t *testing.T) {
	agg := &ProfileAggregate{
		Profile: &Profile{ProfileImage: "https://img/p.jpg"},
		GalleryImages: []*GalleryImage{
			{ImageURL: "https://img/g1.jpg"},
			{ImageURL: ""},
		},
	}

	assert.Equal(t, []string{"https://img/p.jpg", "https://img/g1.jpg"}, agg.ImageURLs())
	assert.Nil(t, (*ProfileAggregate)(nil).ImageURLs())
}

func TestParseNameMatchOrder(t *testing.T) {
	for _, s := range []string{"first", "oldest", "newest", "reject"} {
		o, err := ParseNameMatchOrder(s)
		require.NoError(t, err)
		assert.Equal(t, NameMatchOrder(s), o)
	}

	_, err := ParseNameMatchOrder("random")
	assert.Error(t, err)
}
