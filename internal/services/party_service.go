package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/notify"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PartyService interface {
	CreateParty(db *gorm.DB, creatorID string, req *dto.PartyRequest) (*dto.PartyResponse, error)
	UpdateParty(db *gorm.DB, callerID, partyID string, req *dto.PartyRequest) (*dto.PartyResponse, error)
	DeleteParty(db *gorm.DB, callerID, partyID string) error
	GetParty(db *gorm.DB, partyID string) (*dto.PartyResponse, error)
	ListParties(db *gorm.DB, channelID *string) ([]*dto.PartyResponse, error)
	ListMyUpcoming(db *gorm.DB, memberID string, now time.Time) ([]*dto.PartyWithRSVPResponse, error)
	InviteGuest(db *gorm.DB, req *dto.InviteGuestRequest) (*dto.PartyGuestResponse, error)
	RemoveGuest(db *gorm.DB, partyID, guestID string) error
	ListGuests(db *gorm.DB, partyID string) ([]*dto.PartyGuestResponse, error)
}

type partyService struct {
	partyRepo      repositories.PartyRepository
	partyGuestRepo repositories.PartyGuestRepository
	memberRepo     repositories.MemberRepository
	channelRepo    repositories.ChannelRepository
	notifier       *notify.Notifier

	// The source platform only checked ownership on delete; update stays open
	// unless this is switched on.
	enforceUpdateOwnership bool
}

func NewPartyService(
	partyRepo repositories.PartyRepository,
	partyGuestRepo repositories.PartyGuestRepository,
	memberRepo repositories.MemberRepository,
	channelRepo repositories.ChannelRepository,
	notifier *notify.Notifier,
	enforceUpdateOwnership bool,
) PartyService {
	return &partyService{
		partyRepo:              partyRepo,
		partyGuestRepo:         partyGuestRepo,
		memberRepo:             memberRepo,
		channelRepo:            channelRepo,
		notifier:               notifier,
		enforceUpdateOwnership: enforceUpdateOwnership,
	}
}

// CreateParty persists the party and its creator-as-guest row in one
// transaction: a party is never observable without its creator on the guest
// list with rsvp=true.
func (s *partyService) CreateParty(db *gorm.DB, creatorID string, req *dto.PartyRequest) (*dto.PartyResponse, error) {
	if _, err := s.memberRepo.FindByID(db, creatorID); err != nil {
		return nil, wrapMemberErr(err)
	}
	if err := s.checkChannel(db, req.ChannelID); err != nil {
		return nil, err
	}

	party := &models.Party{
		CreatorID:   creatorID,
		ChannelID:   req.ChannelID,
		Title:       req.Title,
		Description: req.Description,
		Datetime:    req.Datetime.UTC(),
		DatetimeEnd: req.DatetimeEnd.UTC(),
		IsPublic:    req.IsPublic,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.partyRepo.Create(tx, party); err != nil {
		return nil, apperrors.InternalError(err)
	}

	creatorGuest := &models.PartyGuest{
		GuestID: creatorID,
		PartyID: party.ID,
		RSVP:    true,
	}
	if err := s.partyGuestRepo.Create(tx, creatorGuest); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildParty(db, party.ID)
}

func (s *partyService) UpdateParty(db *gorm.DB, callerID, partyID string, req *dto.PartyRequest) (*dto.PartyResponse, error) {
	party, err := s.partyRepo.FindByID(db, partyID)
	if err != nil {
		return nil, wrapPartyErr(err)
	}
	if s.enforceUpdateOwnership && party.CreatorID != callerID {
		return nil, apperrors.ErrNotPartyCreator
	}

	// Channel is validated before any mutation; nil clears the association.
	if err := s.checkChannel(db, req.ChannelID); err != nil {
		return nil, err
	}

	party.Title = req.Title
	party.Description = req.Description
	party.Datetime = req.Datetime.UTC()
	party.DatetimeEnd = req.DatetimeEnd.UTC()
	party.IsPublic = req.IsPublic
	party.ChannelID = req.ChannelID

	if err := s.partyRepo.Update(db, party); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildParty(db, party.ID)
}

func (s *partyService) DeleteParty(db *gorm.DB, callerID, partyID string) error {
	party, err := s.partyRepo.FindByID(db, partyID)
	if err != nil {
		return wrapPartyErr(err)
	}
	if party.CreatorID != callerID {
		return apperrors.ErrNotPartyCreator
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.partyGuestRepo.RemoveByParty(tx, partyID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.partyRepo.Delete(tx, partyID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *partyService) GetParty(db *gorm.DB, partyID string) (*dto.PartyResponse, error) {
	return s.buildParty(db, partyID)
}

func (s *partyService) ListParties(db *gorm.DB, channelID *string) ([]*dto.PartyResponse, error) {
	if channelID != nil {
		if _, err := s.channelRepo.FindByID(db, *channelID); err != nil {
			return nil, wrapChannelErr(err)
		}
	}

	parties, err := s.partyRepo.FindAll(db, channelID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PartyResponse, 0, len(parties))
	for i := range parties {
		guests, err := s.partyGuestRepo.FindByParty(db, parties[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, buildPartyResponse(&parties[i], guests))
	}
	return responses, nil
}

// ListMyUpcoming returns the caller's invites whose party has not yet ended,
// one entry per party, ordered by start time. The dedup tolerates legacy
// duplicate invite rows even though the unique index forbids new ones.
func (s *partyService) ListMyUpcoming(db *gorm.DB, memberID string, now time.Time) ([]*dto.PartyWithRSVPResponse, error) {
	if _, err := s.memberRepo.FindByID(db, memberID); err != nil {
		return nil, wrapMemberErr(err)
	}

	invites, err := s.partyGuestRepo.FindByGuest(db, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now = now.UTC()
	seen := make(map[string]bool, len(invites))
	var upcoming []*dto.PartyWithRSVPResponse
	for i := range invites {
		party := invites[i].Party
		if party == nil || seen[party.ID] {
			continue
		}
		if party.DatetimeEnd.Before(now) {
			continue
		}
		seen[party.ID] = true
		upcoming = append(upcoming, buildPartyWithRSVP(party, invites[i].RSVP))
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].Datetime.Equal(upcoming[j].Datetime) {
			return upcoming[i].Datetime.Before(upcoming[j].Datetime)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	return upcoming, nil
}

// InviteGuest upserts the (guest, party) row: a repeat invite updates the
// RSVP instead of inserting a duplicate. The invite notification is
// fire-and-forget and never fails the request.
func (s *partyService) InviteGuest(db *gorm.DB, req *dto.InviteGuestRequest) (*dto.PartyGuestResponse, error) {
	if _, err := s.memberRepo.FindByID(db, req.GuestID); err != nil {
		return nil, wrapMemberErr(err)
	}
	party, err := s.partyRepo.FindByID(db, req.PartyID)
	if err != nil {
		return nil, wrapPartyErr(err)
	}

	rsvp := true
	if req.RSVP != nil {
		rsvp = *req.RSVP
	}

	guest, err := s.upsertGuest(db, req.PartyID, req.GuestID, rsvp)
	if err != nil {
		return nil, err
	}

	s.notifier.PublishAsync(
		req.GuestID,
		inviteMessage(party.Title),
		fmt.Sprintf("/parties/%s", party.ID),
		map[string]interface{}{"party_id": party.ID},
	)

	return buildPartyGuestResponse(guest), nil
}

func (s *partyService) upsertGuest(db *gorm.DB, partyID, guestID string, rsvp bool) (*models.PartyGuest, error) {
	existing, err := s.partyGuestRepo.Find(db, partyID, guestID)
	switch {
	case err == nil:
		if existing.RSVP != rsvp {
			if err := s.partyGuestRepo.UpdateRSVP(db, existing.ID, rsvp); err != nil {
				return nil, apperrors.InternalError(err)
			}
			existing.RSVP = rsvp
		}
		return existing, nil
	case errors.Is(err, repositories.ErrPartyGuestNotFound):
		guest := &models.PartyGuest{
			GuestID: guestID,
			PartyID: partyID,
			RSVP:    rsvp,
		}
		if createErr := s.partyGuestRepo.Create(db, guest); createErr != nil {
			// A concurrent invite won the insert; fall back to updating it.
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return s.upsertGuest(db, partyID, guestID, rsvp)
			}
			return nil, apperrors.InternalError(createErr)
		}
		return s.partyGuestRepo.Find(db, partyID, guestID)
	default:
		return nil, apperrors.InternalError(err)
	}
}

// RemoveGuest deletes the invite; removing a guest who was never invited is a
// clean no-op.
func (s *partyService) RemoveGuest(db *gorm.DB, partyID, guestID string) error {
	if _, err := s.partyRepo.FindByID(db, partyID); err != nil {
		return wrapPartyErr(err)
	}
	if _, err := s.memberRepo.FindByID(db, guestID); err != nil {
		return wrapMemberErr(err)
	}

	if _, err := s.partyGuestRepo.Remove(db, partyID, guestID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *partyService) ListGuests(db *gorm.DB, partyID string) ([]*dto.PartyGuestResponse, error) {
	if _, err := s.partyRepo.FindByID(db, partyID); err != nil {
		return nil, wrapPartyErr(err)
	}

	guests, err := s.partyGuestRepo.FindByParty(db, partyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PartyGuestResponse, 0, len(guests))
	for i := range guests {
		responses = append(responses, buildPartyGuestResponse(&guests[i]))
	}
	return responses, nil
}

func (s *partyService) buildParty(db *gorm.DB, partyID string) (*dto.PartyResponse, error) {
	party, err := s.partyRepo.FindByID(db, partyID)
	if err != nil {
		return nil, wrapPartyErr(err)
	}
	guests, err := s.partyGuestRepo.FindByParty(db, partyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPartyResponse(party, guests), nil
}

func (s *partyService) checkChannel(db *gorm.DB, channelID *string) error {
	if channelID == nil {
		return nil
	}
	if _, err := s.channelRepo.FindByID(db, *channelID); err != nil {
		return wrapChannelErr(err)
	}
	return nil
}

func inviteMessage(title string) string {
	if title == "" {
		return "You have been invited to a watch party"
	}
	return fmt.Sprintf("You have been invited to watch %s", title)
}

func wrapPartyErr(err error) error {
	if errors.Is(err, repositories.ErrPartyNotFound) {
		return apperrors.ErrNotFound(err, "party", "Party not found")
	}
	return apperrors.InternalError(err)
}

func wrapMemberErr(err error) error {
	if errors.Is(err, repositories.ErrMemberNotFound) {
		return apperrors.ErrNotFound(err, "member", "Member not found")
	}
	return apperrors.InternalError(err)
}

func wrapChannelErr(err error) error {
	if errors.Is(err, repositories.ErrChannelNotFound) {
		return apperrors.ErrNotFound(err, "channel", "Channel not found")
	}
	return apperrors.InternalError(err)
}
