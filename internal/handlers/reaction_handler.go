package handlers

import (
	"net/http"

	"watchparty_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	*BaseHandler
	reactionService services.ReactionService
}

func NewReactionHandler(base *BaseHandler, reactionService services.ReactionService) *ReactionHandler {
	return &ReactionHandler{BaseHandler: base, reactionService: reactionService}
}

// List returns the reaction catalog.
func (h *ReactionHandler) List(c *gin.Context) {
	reactions, err := h.reactionService.Catalog(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reactions)
}

func (h *ReactionHandler) Get(c *gin.Context) {
	reaction, err := h.reactionService.GetCatalogEntry(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reaction)
}
