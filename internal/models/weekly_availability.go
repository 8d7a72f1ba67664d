package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyAvailability is one recurring open range for a weekday.
// Several rows per weekday are allowed (a lunch break splits the day
// into two rows). Edits are delete + recreate, never update-in-place.
type WeeklyAvailability struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;index;not null" json:"artist_id"`

	Weekday   int    `gorm:"not null" json:"weekday"` // 0=Sunday ... 6=Saturday
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *WeeklyAvailability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
