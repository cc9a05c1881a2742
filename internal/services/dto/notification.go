package dto

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Link      string         `json:"link"`
	Data      datatypes.JSON `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
