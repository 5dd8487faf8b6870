package entity

import "strings"

// Platform is the closed set of social platforms a profile can link to.
type Platform uint8

const (
	PlatformUnknown Platform = iota
	PlatformInstagram
	PlatformLinkedIn
	PlatformWhatsApp
	PlatformEmail
	PlatformTwitter
	PlatformFacebook
	PlatformYouTube

	platformCount
)

// PlatformInfo is the presentation data attached to a platform.
type PlatformInfo struct {
	Name  string // Wire name, e.g. "instagram".
	Label string // Human label.
	Icon  string // Icon identifier understood by the page templates.
	Style string // Style token used for hover colouring.
}

var platformTable = [platformCount]PlatformInfo{
	PlatformUnknown:   {Name: "", Label: "Link", Icon: "link", Style: "neutral"},
	PlatformInstagram: {Name: "instagram", Label: "Instagram", Icon: "instagram", Style: "pink"},
	PlatformLinkedIn:  {Name: "linkedin", Label: "LinkedIn", Icon: "linkedin", Style: "blue"},
	PlatformWhatsApp:  {Name: "whatsapp", Label: "WhatsApp", Icon: "message-circle", Style: "green"},
	PlatformEmail:     {Name: "email", Label: "Email", Icon: "mail", Style: "orange"},
	PlatformTwitter:   {Name: "twitter", Label: "Twitter", Icon: "twitter", Style: "sky"},
	PlatformFacebook:  {Name: "facebook", Label: "Facebook", Icon: "facebook", Style: "blue"},
	PlatformYouTube:   {Name: "youtube", Label: "YouTube", Icon: "youtube", Style: "red"},
}

// ParsePlatform maps a wire name to a Platform. Matching ignores case and surrounding space.
func ParsePlatform(s string) (Platform, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return PlatformUnknown, false
	}
	for p := PlatformInstagram; p < platformCount; p++ {
		if platformTable[p].Name == needle {
			return p, true
		}
	}

	return PlatformUnknown, false
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	return p > PlatformUnknown && p < platformCount
}

// Info returns the associated presentation data.
func (p Platform) Info() PlatformInfo {
	if p >= platformCount {
		return platformTable[PlatformUnknown]
	}

	return platformTable[p]
}

// String returns the wire name.
func (p Platform) String() string {
	return p.Info().Name
}
