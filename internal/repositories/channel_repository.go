package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrChannelNotFound = errors.New("channel not found")

type ChannelRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Channel, error)
	FindAll(db *gorm.DB) ([]models.Channel, error)
	Create(db *gorm.DB, channel *models.Channel) error
	Update(db *gorm.DB, channel *models.Channel) error
	Delete(db *gorm.DB, id string) error
}

type ChannelRepositoryImpl struct{}

func NewChannelRepository() ChannelRepository {
	return &ChannelRepositoryImpl{}
}

func (r *ChannelRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Channel, error) {
	var channel models.Channel
	err := db.Preload("Creator.User").First(&channel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return &channel, nil
}

func (r *ChannelRepositoryImpl) FindAll(db *gorm.DB) ([]models.Channel, error) {
	var channels []models.Channel
	err := db.Preload("Creator.User").Order("name").Find(&channels).Error
	return channels, err
}

func (r *ChannelRepositoryImpl) Create(db *gorm.DB, channel *models.Channel) error {
	return db.Create(channel).Error
}

func (r *ChannelRepositoryImpl) Update(db *gorm.DB, channel *models.Channel) error {
	return db.Save(channel).Error
}

func (r *ChannelRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Channel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChannelNotFound
	}
	return nil
}
