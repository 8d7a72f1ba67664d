package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is both the login account and the public artist card.
type Profile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DisplayName  string `gorm:"size:100;not null" json:"display_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Bio       string `gorm:"size:500" json:"bio"`
	Address   string `gorm:"size:255" json:"address"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	FacebookURL  string `gorm:"size:255" json:"facebook_url"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
