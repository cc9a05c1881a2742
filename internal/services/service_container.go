package services

// ServiceContainer bundles every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	MemberService       MemberService
	ChannelService      ChannelService
	PartyService        PartyService
	ReactionService     ReactionService
	NotificationService NotificationService
}
