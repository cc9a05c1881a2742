package handlers

import (
	"net/http"

	"watchparty_backend/internal/services"
	"watchparty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageReactionHandler struct {
	*BaseHandler
	reactionService services.ReactionService
}

func NewMessageReactionHandler(base *BaseHandler, reactionService services.ReactionService) *MessageReactionHandler {
	return &MessageReactionHandler{BaseHandler: base, reactionService: reactionService}
}

// Toggle flips the caller's reaction on a message. 201 with the created row
// when the reaction was added, 205 with no body when it was removed.
func (h *MessageReactionHandler) Toggle(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.ToggleReactionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	outcome, row, err := h.reactionService.Toggle(h.GetDB(c), memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if outcome == services.ToggleRemoved {
		c.Status(http.StatusResetContent)
		return
	}
	if row == nil {
		c.Status(http.StatusCreated)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// List filters message reactions by ?message_id= and/or ?party=.
func (h *MessageReactionHandler) List(c *gin.Context) {
	var query dto.MessageReactionListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	rows, err := h.reactionService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Delete force-removes a reaction row by id.
func (h *MessageReactionHandler) Delete(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	if err := h.reactionService.Delete(h.GetDB(c), memberID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
