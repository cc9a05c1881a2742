package routes

import (
	"net/http"

	"watchparty_backend/internal/handlers"
	"watchparty_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. Reads are public, mutations require a
// bearer token.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	authed := middleware.AuthMiddleware()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/register", h.Auth.Register)
	router.POST("/login", h.Auth.Login)

	router.GET("/members", h.Member.List)
	router.GET("/members/:id", h.Member.Get)
	router.PUT("/members/:id", authed, h.Member.Update)
	router.GET("/profile", authed, h.Member.MyProfile)

	router.GET("/channels", h.Channel.List)
	router.GET("/channels/:id", h.Channel.Get)
	router.POST("/channels", authed, h.Channel.Create)
	router.DELETE("/channels/:id", authed, h.Channel.Delete)
	router.POST("/channelmembers", authed, h.Channel.Join)
	router.GET("/channelmembers/:channelId", h.Channel.ListMembers)
	router.DELETE("/channelmembers/:channelId", authed, h.Channel.Leave)

	// Static segment first so gin never shadows it with the :id route.
	router.GET("/parties/myupcoming", authed, h.Party.MyUpcoming)
	router.GET("/parties", h.Party.List)
	router.GET("/parties/:id", h.Party.Get)
	router.POST("/parties", authed, h.Party.Create)
	router.PUT("/parties/:id", authed, h.Party.Update)
	router.DELETE("/parties/:id", authed, h.Party.Delete)
	router.POST("/partyguests", authed, h.PartyGuest.Invite)
	router.GET("/partyguests/:partyId", h.Party.ListGuests)
	router.DELETE("/partyguests/:partyId", authed, h.PartyGuest.Remove)

	router.GET("/reactions", h.Reaction.List)
	router.GET("/reactions/:id", h.Reaction.Get)

	router.GET("/messagereactions", h.MessageReaction.List)
	router.POST("/messagereactions", authed, h.MessageReaction.Toggle)
	router.DELETE("/messagereactions/:id", authed, h.MessageReaction.Delete)

	router.GET("/notifications", authed, h.Notification.List)
	router.GET("/notifications/unread-count", authed, h.Notification.UnreadCount)
	router.PUT("/notifications/:id/read", authed, h.Notification.MarkRead)
}
