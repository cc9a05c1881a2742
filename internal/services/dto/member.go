package dto

// MemberSummary is the compact member view embedded in party, guest and
// reaction responses. It names exactly the fields the client renders.
type MemberSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email,omitempty"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	ProfilePic     string `json:"profile_pic"`
	TimeZoneOffset int    `json:"time_zone_offset"`
}

type UpdateProfileRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Bio            string `json:"bio" validate:"max=255"`
	Location       string `json:"location" validate:"max=50"`
	ProfilePic     string `json:"profile_pic" validate:"omitempty,url,max=400"`
	TimeZoneOffset int    `json:"time_zone_offset" validate:"min=-12,max=14"`
}

// ProfileResponse is the authenticated member's own view.
type ProfileResponse struct {
	Member        MemberResponse `json:"member"`
	UpcomingCount int            `json:"upcoming_count"`
	UnreadCount   int64          `json:"unread_count"`
}
