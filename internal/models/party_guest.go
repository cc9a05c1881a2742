package models

// PartyGuest joins a guest Member to a Party with an RSVP flag. At most one
// row per (guest, party); a repeat invite updates RSVP instead of inserting.
type PartyGuest struct {
	BaseModel
	GuestID string `gorm:"not null;uniqueIndex:idx_party_guest" json:"guest_id"`
	PartyID string `gorm:"not null;uniqueIndex:idx_party_guest" json:"party_id"`
	RSVP    bool   `gorm:"not null" json:"rsvp"`

	Guest *Member `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`
	Party *Party  `gorm:"foreignKey:PartyID;constraint:OnDelete:CASCADE" json:"party,omitempty"`
}
