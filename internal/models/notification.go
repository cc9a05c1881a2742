package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is a persisted best-effort push to a member. Content and Link
// mirror what the client renders; Data carries structured context.
type Notification struct {
	BaseModel
	RecipientID string         `gorm:"not null;index" json:"recipient_id"`
	Content     string         `gorm:"not null" json:"content"`
	Link        string         `json:"link"`
	Data        datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead      bool           `gorm:"default:false" json:"is_read"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`
}
