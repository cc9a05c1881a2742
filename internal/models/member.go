package models

import "fmt"

// Member is the domain profile, one per account. It is created at
// registration and only ever mutated through profile self-service.
type Member struct {
	BaseModel
	UserID         string `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio            string `gorm:"size:255" json:"bio"`
	Location       string `gorm:"size:50" json:"location"`
	ProfilePic     string `gorm:"size:400" json:"profile_pic"`
	TimeZoneOffset int    `json:"time_zone_offset"` // hours relative to UTC

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// FullName renders the display name from the owning account.
func (m *Member) FullName() string {
	if m.User == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", m.User.FirstName, m.User.LastName)
}
