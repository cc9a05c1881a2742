package handlers

import (
	"net/http"

	"watchparty_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

// List returns the caller's notifications, newest first. ?unread=true limits
// the result to unread ones.
func (h *NotificationHandler) List(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.notificationService.ListMyNotifications(h.GetDB(c), memberID, unreadOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(h.GetDB(c), memberID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(h.GetDB(c), memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
