package models

// Channel is a named community that parties can be scheduled in.
type Channel struct {
	BaseModel
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Image       string `gorm:"size:400" json:"image"`
	CreatorID   string `gorm:"not null;index" json:"creator_id"`

	Creator *Member `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
}
