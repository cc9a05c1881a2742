package handlers

import (
	"net/http"

	"watchparty_backend/internal/services"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	*BaseHandler
	channelService services.ChannelService
}

func NewChannelHandler(base *BaseHandler, channelService services.ChannelService) *ChannelHandler {
	return &ChannelHandler{BaseHandler: base, channelService: channelService}
}

func (h *ChannelHandler) Create(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.CreateChannelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	channel, err := h.channelService.CreateChannel(h.GetDB(c), memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}

func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.channelService.ListChannels(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

func (h *ChannelHandler) Get(c *gin.Context) {
	channel, err := h.channelService.GetChannel(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

func (h *ChannelHandler) Delete(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	if err := h.channelService.DeleteChannel(h.GetDB(c), memberID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Join enrolls the caller into the channel named in the body. The body's
// member_id must be the caller's own; members cannot enroll each other.
func (h *ChannelHandler) Join(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.JoinChannelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.MemberID != memberID {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Members can only join channels for themselves"))
		return
	}

	cm, err := h.channelService.JoinChannel(h.GetDB(c), memberID, req.ChannelID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// Leave removes the caller from the channel. The body's member_id must be the
// caller's own.
func (h *ChannelHandler) Leave(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.LeaveChannelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.MemberID != memberID {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Members can only leave channels for themselves"))
		return
	}

	if err := h.channelService.LeaveChannel(h.GetDB(c), memberID, c.Param("channelId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChannelHandler) ListMembers(c *gin.Context) {
	members, err := h.channelService.ListChannelMembers(h.GetDB(c), c.Param("channelId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
