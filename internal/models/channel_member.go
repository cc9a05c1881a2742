package models

// ChannelMember joins a Member to a Channel. The composite unique index makes
// repeated joins impossible; the source platform allowed duplicates.
type ChannelMember struct {
	BaseModel
	MemberID  string `gorm:"not null;uniqueIndex:idx_channel_membership" json:"member_id"`
	ChannelID string `gorm:"not null;uniqueIndex:idx_channel_membership" json:"channel_id"`

	Member  *Member  `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
	Channel *Channel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"channel,omitempty"`
}
