package handlers

import (
	"watchparty_backend/internal/services"
	"watchparty_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth            *AuthHandler
	Member          *MemberHandler
	Channel         *ChannelHandler
	Party           *PartyHandler
	PartyGuest      *PartyGuestHandler
	MessageReaction *MessageReactionHandler
	Reaction        *ReactionHandler
	Notification    *NotificationHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:            NewAuthHandler(base, sc.AuthService),
		Member:          NewMemberHandler(base, sc.MemberService),
		Channel:         NewChannelHandler(base, sc.ChannelService),
		Party:           NewPartyHandler(base, sc.PartyService),
		PartyGuest:      NewPartyGuestHandler(base, sc.PartyService),
		MessageReaction: NewMessageReactionHandler(base, sc.ReactionService),
		Reaction:        NewReactionHandler(base, sc.ReactionService),
		Notification:    NewNotificationHandler(base, sc.NotificationService),
	}
}
