package dto

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Bio            string `json:"bio" validate:"max=255"`
	Location       string `json:"location" validate:"max=50"`
	ProfilePic     string `json:"profile_pic" validate:"omitempty,url,max=400"`
	TimeZoneOffset int    `json:"time_zone_offset" validate:"min=-12,max=14"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	Member      MemberResponse `json:"member"`
}
