package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrChannelMemberNotFound = errors.New("channel member not found")

type ChannelMemberRepository interface {
	Add(db *gorm.DB, cm *models.ChannelMember) error
	Remove(db *gorm.DB, channelID, memberID string) (int64, error)
	FindByChannel(db *gorm.DB, channelID string) ([]models.ChannelMember, error)
	Exists(db *gorm.DB, channelID, memberID string) (bool, error)
}

type ChannelMemberRepositoryImpl struct{}

func NewChannelMemberRepository() ChannelMemberRepository {
	return &ChannelMemberRepositoryImpl{}
}

func (r *ChannelMemberRepositoryImpl) Add(db *gorm.DB, cm *models.ChannelMember) error {
	return db.Create(cm).Error
}

func (r *ChannelMemberRepositoryImpl) Remove(db *gorm.DB, channelID, memberID string) (int64, error) {
	result := db.Where("channel_id = ? AND member_id = ?", channelID, memberID).
		Delete(&models.ChannelMember{})
	return result.RowsAffected, result.Error
}

func (r *ChannelMemberRepositoryImpl) FindByChannel(db *gorm.DB, channelID string) ([]models.ChannelMember, error) {
	var members []models.ChannelMember
	err := db.Preload("Member.User").
		Where("channel_id = ?", channelID).
		Order("created_at").
		Find(&members).Error
	return members, err
}

func (r *ChannelMemberRepositoryImpl) Exists(db *gorm.DB, channelID, memberID string) (bool, error) {
	var count int64
	err := db.Model(&models.ChannelMember{}).
		Where("channel_id = ? AND member_id = ?", channelID, memberID).
		Count(&count).Error
	return count > 0, err
}
