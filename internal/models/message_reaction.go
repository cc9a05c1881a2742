package models

// MessageReaction records one member's use of one reaction on one chat
// message within one party. MessageID is opaque: messages live in an external
// chat store. The composite unique index is what the toggle protocol relies
// on; a losing concurrent insert fails cleanly instead of duplicating.
type MessageReaction struct {
	BaseModel
	PartyID    string `gorm:"not null;uniqueIndex:idx_message_reaction" json:"party_id"`
	ReactorID  string `gorm:"not null;uniqueIndex:idx_message_reaction" json:"reactor_id"`
	ReactionID string `gorm:"not null;uniqueIndex:idx_message_reaction" json:"reaction_id"`
	MessageID  string `gorm:"size:255;not null;uniqueIndex:idx_message_reaction" json:"message_id"`

	Party    *Party    `gorm:"foreignKey:PartyID;constraint:OnDelete:CASCADE" json:"party,omitempty"`
	Reactor  *Member   `gorm:"foreignKey:ReactorID;constraint:OnDelete:CASCADE" json:"reactor,omitempty"`
	Reaction *Reaction `gorm:"foreignKey:ReactionID;constraint:OnDelete:CASCADE" json:"reaction,omitempty"`
}
