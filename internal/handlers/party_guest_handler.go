package handlers

import (
	"net/http"

	"watchparty_backend/internal/services"
	"watchparty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PartyGuestHandler struct {
	*BaseHandler
	partyService services.PartyService
}

func NewPartyGuestHandler(base *BaseHandler, partyService services.PartyService) *PartyGuestHandler {
	return &PartyGuestHandler{BaseHandler: base, partyService: partyService}
}

// Invite adds a guest to a party, or updates the RSVP when the guest is
// already on the list. Re-inviting never duplicates the row.
func (h *PartyGuestHandler) Invite(c *gin.Context) {
	if _, ok := h.MemberID(c); !ok {
		return
	}

	var req dto.InviteGuestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	guest, err := h.partyService.InviteGuest(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// Remove takes a guest off the party list. Removing a member who was never
// invited succeeds without effect.
func (h *PartyGuestHandler) Remove(c *gin.Context) {
	if _, ok := h.MemberID(c); !ok {
		return
	}

	var req dto.RemoveGuestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.partyService.RemoveGuest(h.GetDB(c), c.Param("partyId"), req.GuestID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
