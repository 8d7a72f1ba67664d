package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistService struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;index;not null" json:"artist_id"`

	Name            string   `gorm:"size:100;not null" json:"name"`
	Description     string   `gorm:"size:255" json:"description"`
	DurationMinutes int      `gorm:"not null" json:"duration_minutes"`
	Price           *float64 `json:"price"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ArtistService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
