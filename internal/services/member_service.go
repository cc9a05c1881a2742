package services

import (
	"time"

	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MemberService interface {
	GetMember(db *gorm.DB, memberID string) (*dto.MemberResponse, error)
	ListMembers(db *gorm.DB) ([]dto.MemberResponse, error)
	UpdateProfile(db *gorm.DB, callerID, memberID string, req *dto.UpdateProfileRequest) (*dto.MemberResponse, error)
	GetMyProfile(db *gorm.DB, memberID string, now time.Time) (*dto.ProfileResponse, error)
}

type memberService struct {
	memberRepo       repositories.MemberRepository
	userRepo         repositories.UserRepository
	partyGuestRepo   repositories.PartyGuestRepository
	notificationRepo repositories.NotificationRepository
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	userRepo repositories.UserRepository,
	partyGuestRepo repositories.PartyGuestRepository,
	notificationRepo repositories.NotificationRepository,
) MemberService {
	return &memberService{
		memberRepo:       memberRepo,
		userRepo:         userRepo,
		partyGuestRepo:   partyGuestRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *memberService) GetMember(db *gorm.DB, memberID string) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(db, memberID)
	if err != nil {
		return nil, wrapMemberErr(err)
	}
	resp := buildMemberResponse(member)
	return &resp, nil
}

func (s *memberService) ListMembers(db *gorm.DB) ([]dto.MemberResponse, error) {
	members, err := s.memberRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, buildMemberResponse(&members[i]))
	}
	return responses, nil
}

// UpdateProfile is self-service only: members cannot edit each other.
func (s *memberService) UpdateProfile(db *gorm.DB, callerID, memberID string, req *dto.UpdateProfileRequest) (*dto.MemberResponse, error) {
	if callerID != memberID {
		return nil, apperrors.ErrNotProfileOwner
	}

	member, err := s.memberRepo.FindByID(db, memberID)
	if err != nil {
		return nil, wrapMemberErr(err)
	}

	member.Bio = req.Bio
	member.Location = req.Location
	member.ProfilePic = req.ProfilePic
	member.TimeZoneOffset = req.TimeZoneOffset

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.memberRepo.Update(tx, member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Names live on the account record.
	if member.User != nil {
		member.User.FirstName = req.FirstName
		member.User.LastName = req.LastName
		if err := s.userRepo.Update(tx, member.User); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildMemberResponse(member)
	return &resp, nil
}

func (s *memberService) GetMyProfile(db *gorm.DB, memberID string, now time.Time) (*dto.ProfileResponse, error) {
	member, err := s.memberRepo.FindByID(db, memberID)
	if err != nil {
		return nil, wrapMemberErr(err)
	}

	invites, err := s.partyGuestRepo.FindByGuest(db, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now = now.UTC()
	seen := make(map[string]bool, len(invites))
	upcoming := 0
	for i := range invites {
		party := invites[i].Party
		if party == nil || seen[party.ID] || party.DatetimeEnd.Before(now) {
			continue
		}
		seen[party.ID] = true
		upcoming++
	}

	unread, err := s.notificationRepo.UnreadCount(db, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		Member:        buildMemberResponse(member),
		UpcomingCount: upcoming,
		UnreadCount:   unread,
	}, nil
}
