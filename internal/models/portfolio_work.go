package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioWork struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;index;not null" json:"artist_id"`

	Title       string `gorm:"size:100" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	ImageURL    string `gorm:"size:500;not null" json:"image_url"`
	Style       string `gorm:"size:50;not null" json:"style"`
	Size        string `gorm:"size:20;default:'medium'" json:"size"`

	IsFeatured         bool `gorm:"default:false" json:"is_featured"`
	IsVisibleInLanding bool `gorm:"default:true" json:"is_visible_in_landing"`
	IsApproved         bool `gorm:"default:false" json:"is_approved"`
	OrderIndex         int  `gorm:"default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *PortfolioWork) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
