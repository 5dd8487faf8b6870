package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        *string   `gorm:"type:varchar(255);uniqueIndex:idx_profiles_username"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Tagline         string    `gorm:"type:varchar(255);not null;default:''"`
	Bio             string    `gorm:"type:text;not null;default:''"`
	ProfileImage    string    `gorm:"type:text;not null;default:''"`
	CoverImage      string    `gorm:"type:text;not null;default:''"`
	LocationAddress string    `gorm:"type:varchar(255);not null;default:''"`
	LocationCity    string    `gorm:"type:varchar(255);not null;default:''"`
	LocationCountry string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt       time.Time `gorm:"index:idx_profiles_created_at"`
	UpdatedAt       time.Time

	SocialLinks   []SocialLinkModel   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Services      []ServiceModel      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	BusinessHours []BusinessHourModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	GalleryImages []GalleryImageModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// BeforeCreate assigns the id on the application side.
func (m *ProfileModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// SocialLinkModel is the GORM-specific struct for the 'social_links' table.
type SocialLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_social_links_profile"`
	Platform  string    `gorm:"type:varchar(32);not null"`
	URL       string    `gorm:"type:text;not null"`
	Username  string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt time.Time
}

func (SocialLinkModel) TableName() string {
	return "social_links"
}

func (m *SocialLinkModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index:idx_services_profile"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// BusinessHourModel is the GORM-specific struct for the 'business_hours' table.
type BusinessHourModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_business_hours_profile"`
	Day       string    `gorm:"type:varchar(16);not null"`
	Hours     string    `gorm:"type:varchar(255);not null;default:''"`
	IsOpen    bool      `gorm:"not null"`
	CreatedAt time.Time
}

func (BusinessHourModel) TableName() string {
	return "business_hours"
}

func (m *BusinessHourModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// GalleryImageModel is the GORM-specific struct for the 'gallery_images' table.
type GalleryImageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;index:idx_gallery_images_profile"`
	ImageURL   string    `gorm:"type:text;not null"`
	OrderIndex int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

func (m *GalleryImageModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&ProfileModel{},
		&SocialLinkModel{},
		&ServiceModel{},
		&BusinessHourModel{},
		&GalleryImageModel{},
	}
}
