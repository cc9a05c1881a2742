package dto

type ReactionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToggleReactionRequest carries everything but the reactor: the reactor is
// always the authenticated member, never a client-supplied id.
type ToggleReactionRequest struct {
	PartyID    string `json:"party_id" validate:"required"`
	ReactionID string `json:"reaction_id" validate:"required"`
	MessageID  string `json:"message_id" validate:"required,max=255"`
}

type MessageReactionResponse struct {
	ID        string           `json:"id"`
	MessageID string           `json:"message_id"`
	PartyID   string           `json:"party_id"`
	Reaction  ReactionResponse `json:"reaction"`
	Reactor   MemberSummary    `json:"reactor"`
}

type MessageReactionListQuery struct {
	MessageID string `form:"message_id"`
	PartyID   string `form:"party"`
}
