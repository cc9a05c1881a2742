package services

import (
	"errors"
	"fmt"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/notify"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ChannelService interface {
	CreateChannel(db *gorm.DB, creatorID string, req *dto.CreateChannelRequest) (*dto.ChannelResponse, error)
	GetChannel(db *gorm.DB, channelID string) (*dto.ChannelResponse, error)
	ListChannels(db *gorm.DB) ([]dto.ChannelSummary, error)
	DeleteChannel(db *gorm.DB, callerID, channelID string) error
	JoinChannel(db *gorm.DB, memberID, channelID string) (*dto.ChannelMemberResponse, error)
	LeaveChannel(db *gorm.DB, memberID, channelID string) error
	ListChannelMembers(db *gorm.DB, channelID string) ([]dto.ChannelMemberResponse, error)
}

type channelService struct {
	channelRepo       repositories.ChannelRepository
	channelMemberRepo repositories.ChannelMemberRepository
	memberRepo        repositories.MemberRepository
	notifier          *notify.Notifier
}

func NewChannelService(
	channelRepo repositories.ChannelRepository,
	channelMemberRepo repositories.ChannelMemberRepository,
	memberRepo repositories.MemberRepository,
	notifier *notify.Notifier,
) ChannelService {
	return &channelService{
		channelRepo:       channelRepo,
		channelMemberRepo: channelMemberRepo,
		memberRepo:        memberRepo,
		notifier:          notifier,
	}
}

// CreateChannel stores the channel and enrolls the creator as its first
// member in the same transaction.
func (s *channelService) CreateChannel(db *gorm.DB, creatorID string, req *dto.CreateChannelRequest) (*dto.ChannelResponse, error) {
	if _, err := s.memberRepo.FindByID(db, creatorID); err != nil {
		return nil, wrapMemberErr(err)
	}

	channel := &models.Channel{
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.channelRepo.Create(tx, channel); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.channelMemberRepo.Add(tx, &models.ChannelMember{
		ChannelID: channel.ID,
		MemberID:  creatorID,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildChannel(db, channel.ID)
}

func (s *channelService) GetChannel(db *gorm.DB, channelID string) (*dto.ChannelResponse, error) {
	return s.buildChannel(db, channelID)
}

func (s *channelService) ListChannels(db *gorm.DB) ([]dto.ChannelSummary, error) {
	channels, err := s.channelRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ChannelSummary, 0, len(channels))
	for i := range channels {
		summaries = append(summaries, *buildChannelSummary(&channels[i]))
	}
	return summaries, nil
}

// DeleteChannel is creator-only. Parties that referenced the channel keep
// existing, the reference is cleared by the foreign key.
func (s *channelService) DeleteChannel(db *gorm.DB, callerID, channelID string) error {
	channel, err := s.channelRepo.FindByID(db, channelID)
	if err != nil {
		return wrapChannelErr(err)
	}
	if channel.CreatorID != callerID {
		return apperrors.NewUnauthorizedError("Only the channel creator can delete it")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Model(&models.Party{}).
		Where("channel_id = ?", channelID).
		Update("channel_id", nil).Error; err != nil {
		return apperrors.InternalError(err)
	}
	if err := tx.Where("channel_id = ?", channelID).
		Delete(&models.ChannelMember{}).Error; err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.channelRepo.Delete(tx, channelID); err != nil {
		if errors.Is(err, repositories.ErrChannelNotFound) {
			return wrapChannelErr(err)
		}
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// JoinChannel enrolls the member. Joining twice is a conflict, surfaced by
// the unique membership index rather than a racy pre-check.
func (s *channelService) JoinChannel(db *gorm.DB, memberID, channelID string) (*dto.ChannelMemberResponse, error) {
	channel, err := s.channelRepo.FindByID(db, channelID)
	if err != nil {
		return nil, wrapChannelErr(err)
	}
	member, err := s.memberRepo.FindByID(db, memberID)
	if err != nil {
		return nil, wrapMemberErr(err)
	}

	cm := &models.ChannelMember{
		ChannelID: channelID,
		MemberID:  memberID,
	}
	if err := s.channelMemberRepo.Add(db, cm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyChannelMember
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifier.PublishAsync(
		channel.CreatorID,
		fmt.Sprintf("%s joined %s", member.FullName(), channel.Name),
		fmt.Sprintf("/channels/%s", channel.ID),
		map[string]interface{}{"channel_id": channel.ID, "member_id": memberID},
	)

	cm.Member = member
	resp := buildChannelMemberResponse(cm)
	return &resp, nil
}

// LeaveChannel removes the membership. Leaving a channel the member never
// joined is a no-op.
func (s *channelService) LeaveChannel(db *gorm.DB, memberID, channelID string) error {
	if _, err := s.channelRepo.FindByID(db, channelID); err != nil {
		return wrapChannelErr(err)
	}
	if _, err := s.channelMemberRepo.Remove(db, channelID, memberID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *channelService) ListChannelMembers(db *gorm.DB, channelID string) ([]dto.ChannelMemberResponse, error) {
	if _, err := s.channelRepo.FindByID(db, channelID); err != nil {
		return nil, wrapChannelErr(err)
	}

	members, err := s.channelMemberRepo.FindByChannel(db, channelID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ChannelMemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, buildChannelMemberResponse(&members[i]))
	}
	return responses, nil
}

func (s *channelService) buildChannel(db *gorm.DB, channelID string) (*dto.ChannelResponse, error) {
	channel, err := s.channelRepo.FindByID(db, channelID)
	if err != nil {
		return nil, wrapChannelErr(err)
	}
	members, err := s.channelMemberRepo.FindByChannel(db, channelID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildChannelResponse(channel, members), nil
}
