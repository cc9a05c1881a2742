package handlers

import (
	"net/http"
	"time"

	"watchparty_backend/internal/services"
	"watchparty_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	*BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(base *BaseHandler, memberService services.MemberService) *MemberHandler {
	return &MemberHandler{BaseHandler: base, memberService: memberService}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.ListMembers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.GetMember(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	callerID, ok := h.MemberID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateProfile(h.GetDB(c), callerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// MyProfile returns the caller's profile with upcoming-party and unread
// notification counters.
func (h *MemberHandler) MyProfile(c *gin.Context) {
	memberID, ok := h.MemberID(c)
	if !ok {
		return
	}

	profile, err := h.memberService.GetMyProfile(h.GetDB(c), memberID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
