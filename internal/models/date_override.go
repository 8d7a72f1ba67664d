package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateOverride adjusts one calendar date away from the weekly rule.
//
//   - IsBlocked, no times      → whole date closed.
//   - IsBlocked, times set     → only that sub-range closed.
//   - !IsBlocked, times set    → extra open range (exceptional opening).
//
// !IsBlocked without both times is invalid and must be rejected at write
// time; the resolver assumes it never sees such a row.
type DateOverride struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;index;not null" json:"artist_id"`

	Date      string  `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`
	IsBlocked bool    `gorm:"not null" json:"is_blocked"`
	Reason    string  `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (o *DateOverride) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
