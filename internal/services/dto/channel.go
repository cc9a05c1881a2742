package dto

// ChannelSummary is the compact channel view embedded in party responses.
type ChannelSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type CreateChannelRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=255"`
	Image       string `json:"image" validate:"omitempty,url,max=400"`
}

type ChannelResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Creator     MemberSummary `json:"creator"`

	// Populated on the single-channel view only.
	Members []ChannelMemberResponse `json:"members,omitempty"`
}

type JoinChannelRequest struct {
	MemberID  string `json:"member_id" validate:"required"`
	ChannelID string `json:"channel_id" validate:"required"`
}

type LeaveChannelRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

type ChannelMemberResponse struct {
	ID         string `json:"id"`
	MemberID   string `json:"member_id"`
	FullName   string `json:"full_name"`
	ProfilePic string `json:"profile_pic,omitempty"`
}
