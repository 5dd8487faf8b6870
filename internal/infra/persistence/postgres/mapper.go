package postgres

import (
	"profilecard/internal/domain/entity"
	"profilecard/internal/infra/persistence/model"
)

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	var username string
	if m.Username != nil {
		username = *m.Username
	}

	return &entity.Profile{
		ID:              m.ID,
		Username:        username,
		Name:            m.Name,
		Tagline:         m.Tagline,
		Bio:             m.Bio,
		ProfileImage:    m.ProfileImage,
		CoverImage:      m.CoverImage,
		LocationAddress: m.LocationAddress,
		LocationCity:    m.LocationCity,
		LocationCountry: m.LocationCountry,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	if p == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:              p.ID,
		Username:        usernamePtr(p.Username),
		Name:            p.Name,
		Tagline:         p.Tagline,
		Bio:             p.Bio,
		ProfileImage:    p.ProfileImage,
		CoverImage:      p.CoverImage,
		LocationAddress: p.LocationAddress,
		LocationCity:    p.LocationCity,
		LocationCountry: p.LocationCountry,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// usernamePtr stores an unset username as NULL so the unique index ignores it.
func usernamePtr(username string) *string {
	if username == "" {
		return nil
	}

	return &username
}

func toAggregateDomain(m *model.ProfileModel) *entity.ProfileAggregate {
	agg := &entity.ProfileAggregate{
		Profile:       toProfileDomain(m),
		SocialLinks:   make([]*entity.SocialLink, 0, len(m.SocialLinks)),
		Services:      make([]*entity.Service, 0, len(m.Services)),
		BusinessHours: make([]*entity.BusinessHour, 0, len(m.BusinessHours)),
		GalleryImages: make([]*entity.GalleryImage, 0, len(m.GalleryImages)),
	}

	for i := range m.SocialLinks {
		agg.SocialLinks = append(agg.SocialLinks, toSocialLinkDomain(&m.SocialLinks[i]))
	}
	for i := range m.Services {
		agg.Services = append(agg.Services, toServiceDomain(&m.Services[i]))
	}
	for i := range m.BusinessHours {
		agg.BusinessHours = append(agg.BusinessHours, toBusinessHourDomain(&m.BusinessHours[i]))
	}
	for i := range m.GalleryImages {
		agg.GalleryImages = append(agg.GalleryImages, toGalleryImageDomain(&m.GalleryImages[i]))
	}

	return agg
}

func toSocialLinkDomain(m *model.SocialLinkModel) *entity.SocialLink {
	platform, _ := entity.ParsePlatform(m.Platform)

	return &entity.SocialLink{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Platform:  platform,
		URL:       m.URL,
		Username:  m.Username,
	}
}

func fromSocialLinkDomain(l *entity.SocialLink) model.SocialLinkModel {
	return model.SocialLinkModel{
		ID:        l.ID,
		ProfileID: l.ProfileID,
		Platform:  l.Platform.String(),
		URL:       l.URL,
		Username:  l.Username,
	}
}

func toServiceDomain(m *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          m.ID,
		ProfileID:   m.ProfileID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
	}
}

func fromServiceDomain(s *entity.Service) model.ServiceModel {
	return model.ServiceModel{
		ID:          s.ID,
		ProfileID:   s.ProfileID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}

func toBusinessHourDomain(m *model.BusinessHourModel) *entity.BusinessHour {
	return &entity.BusinessHour{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Day:       m.Day,
		Hours:     m.Hours,
		IsOpen:    m.IsOpen,
	}
}

func fromBusinessHourDomain(h *entity.BusinessHour) model.BusinessHourModel {
	return model.BusinessHourModel{
		ID:        h.ID,
		ProfileID: h.ProfileID,
		Day:       h.Day,
		Hours:     h.Hours,
		IsOpen:    h.IsOpen,
	}
}

func toGalleryImageDomain(m *model.GalleryImageModel) *entity.GalleryImage {
	return &entity.GalleryImage{
		ID:         m.ID,
		ProfileID:  m.ProfileID,
		ImageURL:   m.ImageURL,
		OrderIndex: m.OrderIndex,
	}
}

func fromGalleryImageDomain(g *entity.GalleryImage) model.GalleryImageModel {
	return model.GalleryImageModel{
		ID:         g.ID,
		ProfileID:  g.ProfileID,
		ImageURL:   g.ImageURL,
		OrderIndex: g.OrderIndex,
	}
}
