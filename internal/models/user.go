package models

// User is the account identity. The domain profile lives on Member.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`

	Member *Member `gorm:"foreignKey:UserID" json:"member,omitempty"`
}
