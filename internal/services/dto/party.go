package dto

import "time"

// PartyRequest is shared by create and update; both take the full field set.
type PartyRequest struct {
	Title       string    `json:"title" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=255"`
	Datetime    time.Time `json:"datetime" validate:"required"`
	DatetimeEnd time.Time `json:"datetime_end" validate:"required,gtefield=Datetime"`
	IsPublic    bool      `json:"is_public"`
	ChannelID   *string   `json:"channel_id"`
}

type PartyResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Datetime    time.Time       `json:"datetime"`
	DatetimeEnd time.Time       `json:"datetime_end"`
	IsPublic    bool            `json:"is_public"`
	Creator     MemberSummary   `json:"creator"`
	Channel     *ChannelSummary `json:"channel,omitempty"`
	Guests      []MemberSummary `json:"guests"`
}

// PartyWithRSVPResponse decorates a party with the calling member's own RSVP
// status. It is a personal view, distinct from the guest-list view.
type PartyWithRSVPResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Datetime    time.Time       `json:"datetime"`
	DatetimeEnd time.Time       `json:"datetime_end"`
	IsPublic    bool            `json:"is_public"`
	Creator     MemberSummary   `json:"creator"`
	Channel     *ChannelSummary `json:"channel,omitempty"`
	RSVP        bool            `json:"rsvp"`
}

type InviteGuestRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
	PartyID string `json:"party_id" validate:"required"`
	// Absent means the platform default (attending).
	RSVP *bool `json:"rsvp"`
}

type RemoveGuestRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
}

type PartyGuestResponse struct {
	ID      string        `json:"id"`
	PartyID string        `json:"party_id"`
	Guest   MemberSummary `json:"guest"`
	RSVP    bool          `json:"rsvp"`
}
