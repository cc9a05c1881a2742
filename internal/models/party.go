package models

import "time"

// Party is a scheduled watch event. ChannelID is nullable: a party may be
// scheduled outside any channel, and the association can be cleared on update.
type Party struct {
	BaseModel
	CreatorID   string    `gorm:"not null;index" json:"creator_id"`
	ChannelID   *string   `gorm:"index" json:"channel_id"`
	Title       string    `gorm:"size:50" json:"title"`
	Description string    `gorm:"size:255" json:"description"`
	Datetime    time.Time `gorm:"not null" json:"datetime"`
	DatetimeEnd time.Time `gorm:"not null" json:"datetime_end"`
	IsPublic    bool      `gorm:"not null" json:"is_public"`

	Creator *Member  `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	Channel *Channel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"channel,omitempty"`
}
