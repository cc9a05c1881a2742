package models

// Reaction is a catalog entry naming an emoji-style response ("like",
// "laugh", ...). The catalog is seeded at migration and read-only via the API.
type Reaction struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}
