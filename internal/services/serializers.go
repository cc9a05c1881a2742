package services

import (
	"watchparty_backend/internal/models"
	"watchparty_backend/internal/services/dto"
)

// Explicit response assembly. Every function names exactly the fields it
// emits so no model field leaks into a response by accident.

func buildMemberSummary(m *models.Member) dto.MemberSummary {
	if m == nil {
		return dto.MemberSummary{}
	}
	return dto.MemberSummary{
		ID:         m.ID,
		FullName:   m.FullName(),
		ProfilePic: m.ProfilePic,
	}
}

func buildMemberResponse(m *models.Member) dto.MemberResponse {
	resp := dto.MemberResponse{
		ID:             m.ID,
		FullName:       m.FullName(),
		Bio:            m.Bio,
		Location:       m.Location,
		ProfilePic:     m.ProfilePic,
		TimeZoneOffset: m.TimeZoneOffset,
	}
	if m.User != nil {
		resp.FirstName = m.User.FirstName
		resp.LastName = m.User.LastName
		resp.Email = m.User.Email
	}
	return resp
}

func buildChannelSummary(c *models.Channel) *dto.ChannelSummary {
	if c == nil {
		return nil
	}
	return &dto.ChannelSummary{
		ID:    c.ID,
		Name:  c.Name,
		Image: c.Image,
	}
}

func buildPartyResponse(party *models.Party, guests []models.PartyGuest) *dto.PartyResponse {
	resp := &dto.PartyResponse{
		ID:          party.ID,
		Title:       party.Title,
		Description: party.Description,
		Datetime:    party.Datetime,
		DatetimeEnd: party.DatetimeEnd,
		IsPublic:    party.IsPublic,
		Creator:     buildMemberSummary(party.Creator),
		Channel:     buildChannelSummary(party.Channel),
		Guests:      make([]dto.MemberSummary, 0, len(guests)),
	}
	for i := range guests {
		resp.Guests = append(resp.Guests, buildMemberSummary(guests[i].Guest))
	}
	return resp
}

func buildPartyWithRSVP(party *models.Party, rsvp bool) *dto.PartyWithRSVPResponse {
	return &dto.PartyWithRSVPResponse{
		ID:          party.ID,
		Title:       party.Title,
		Description: party.Description,
		Datetime:    party.Datetime,
		DatetimeEnd: party.DatetimeEnd,
		IsPublic:    party.IsPublic,
		Creator:     buildMemberSummary(party.Creator),
		Channel:     buildChannelSummary(party.Channel),
		RSVP:        rsvp,
	}
}

func buildPartyGuestResponse(guest *models.PartyGuest) *dto.PartyGuestResponse {
	return &dto.PartyGuestResponse{
		ID:      guest.ID,
		PartyID: guest.PartyID,
		Guest:   buildMemberSummary(guest.Guest),
		RSVP:    guest.RSVP,
	}
}

func buildReactionResponse(r *models.Reaction) dto.ReactionResponse {
	if r == nil {
		return dto.ReactionResponse{}
	}
	return dto.ReactionResponse{
		ID:   r.ID,
		Name: r.Name,
	}
}

func buildMessageReactionResponse(mr *models.MessageReaction) *dto.MessageReactionResponse {
	return &dto.MessageReactionResponse{
		ID:        mr.ID,
		MessageID: mr.MessageID,
		PartyID:   mr.PartyID,
		Reaction:  buildReactionResponse(mr.Reaction),
		Reactor:   buildMemberSummary(mr.Reactor),
	}
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Content:   n.Content,
		Link:      n.Link,
		Data:      n.Data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func buildChannelMemberResponse(cm *models.ChannelMember) dto.ChannelMemberResponse {
	resp := dto.ChannelMemberResponse{
		ID:       cm.ID,
		MemberID: cm.MemberID,
	}
	if cm.Member != nil {
		resp.FullName = cm.Member.FullName()
		resp.ProfilePic = cm.Member.ProfilePic
	}
	return resp
}

func buildChannelResponse(c *models.Channel, members []models.ChannelMember) *dto.ChannelResponse {
	resp := &dto.ChannelResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Creator:     buildMemberSummary(c.Creator),
	}
	for i := range members {
		resp.Members = append(resp.Members, buildChannelMemberResponse(&members[i]))
	}
	return resp
}
