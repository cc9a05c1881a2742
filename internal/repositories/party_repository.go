package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPartyNotFound = errors.New("party not found")

type PartyRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Party, error)
	FindAll(db *gorm.DB, channelID *string) ([]models.Party, error)
	Create(db *gorm.DB, party *models.Party) error
	Update(db *gorm.DB, party *models.Party) error
	Delete(db *gorm.DB, id string) error
}

type PartyRepositoryImpl struct{}

func NewPartyRepository() PartyRepository {
	return &PartyRepositoryImpl{}
}

func (r *PartyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Party, error) {
	var party models.Party
	err := db.Preload("Creator.User").Preload("Channel").First(&party, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyNotFound
		}
		return nil, err
	}
	return &party, nil
}

func (r *PartyRepositoryImpl) FindAll(db *gorm.DB, channelID *string) ([]models.Party, error) {
	query := db.Preload("Creator.User").Preload("Channel")
	if channelID != nil {
		query = query.Where("channel_id = ?", *channelID)
	}

	var parties []models.Party
	err := query.Order("datetime, id").Find(&parties).Error
	return parties, err
}

func (r *PartyRepositoryImpl) Create(db *gorm.DB, party *models.Party) error {
	return db.Create(party).Error
}

func (r *PartyRepositoryImpl) Update(db *gorm.DB, party *models.Party) error {
	// Save writes every column, so a nil ChannelID clears the association.
	return db.Omit("Creator", "Channel").Save(party).Error
}

func (r *PartyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Party{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartyNotFound
	}
	return nil
}
