package models

import "time"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleArtist     = "artist"
	RoleUser       = "user"
)

// UserRole grants one role to one profile. A profile may hold several rows.
type UserRole struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`
	Role   string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
