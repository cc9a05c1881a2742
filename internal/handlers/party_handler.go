package handlers

import (
	"net/http"
	"time"

	"watchparty_backend/internal/services"
	"watchparty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PartyHandler struct {
	*BaseHandler
	partyService services.PartyService
}

func NewPartyHandler(base *BaseHandler, partyService services.PartyService) *PartyHandler {
	return &PartyHandler{BaseHandler: base, partyService: partyService}
}

func (h *PartyHandler) Create(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.PartyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	party, err := h.partyService.CreateParty(h.GetDB(c), memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

// List returns all parties, optionally scoped to one channel via ?channel_id=.
func (h *PartyHandler) List(c *gin.Context) {
	var channelID *string
	if ch := c.Query("channel_id"); ch != "" {
		channelID = &ch
	}

	parties, err := h.partyService.ListParties(h.GetDB(c), channelID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

func (h *PartyHandler) Get(c *gin.Context) {
	party, err := h.partyService.GetParty(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

func (h *PartyHandler) Update(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.PartyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	party, err := h.partyService.UpdateParty(h.GetDB(c), memberID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

func (h *PartyHandler) Delete(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	if err := h.partyService.DeleteParty(h.GetDB(c), memberID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MyUpcoming lists the parties the caller is invited to that have not yet
// ended, soonest first.
func (h *PartyHandler) MyUpcoming(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	parties, err := h.partyService.ListMyUpcoming(h.GetDB(c), memberID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

func (h *PartyHandler) ListGuests(c *gin.Context) {
	guests, err := h.partyService.ListGuests(h.GetDB(c), c.Param("partyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
