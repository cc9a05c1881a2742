package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPartyGuestNotFound = errors.New("party guest not found")

type PartyGuestRepository interface {
	Create(db *gorm.DB, guest *models.PartyGuest) error
	Find(db *gorm.DB, partyID, guestID string) (*models.PartyGuest, error)
	FindByParty(db *gorm.DB, partyID string) ([]models.PartyGuest, error)
	FindByGuest(db *gorm.DB, guestID string) ([]models.PartyGuest, error)
	UpdateRSVP(db *gorm.DB, id string, rsvp bool) error
	Remove(db *gorm.DB, partyID, guestID string) (int64, error)
	RemoveByParty(db *gorm.DB, partyID string) error
}

type PartyGuestRepositoryImpl struct{}

func NewPartyGuestRepository() PartyGuestRepository {
	return &PartyGuestRepositoryImpl{}
}

func (r *PartyGuestRepositoryImpl) Create(db *gorm.DB, guest *models.PartyGuest) error {
	return db.Create(guest).Error
}

func (r *PartyGuestRepositoryImpl) Find(db *gorm.DB, partyID, guestID string) (*models.PartyGuest, error) {
	var guest models.PartyGuest
	err := db.Preload("Guest.User").
		First(&guest, "party_id = ? AND guest_id = ?", partyID, guestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (r *PartyGuestRepositoryImpl) FindByParty(db *gorm.DB, partyID string) ([]models.PartyGuest, error) {
	var guests []models.PartyGuest
	err := db.Preload("Guest.User").
		Where("party_id = ?", partyID).
		Order("created_at").
		Find(&guests).Error
	return guests, err
}

func (r *PartyGuestRepositoryImpl) FindByGuest(db *gorm.DB, guestID string) ([]models.PartyGuest, error) {
	var guests []models.PartyGuest
	err := db.Preload("Party.Creator.User").Preload("Party.Channel").
		Where("guest_id = ?", guestID).
		Find(&guests).Error
	return guests, err
}

func (r *PartyGuestRepositoryImpl) UpdateRSVP(db *gorm.DB, id string, rsvp bool) error {
	return db.Model(&models.PartyGuest{}).Where("id = ?", id).Update("rsvp", rsvp).Error
}

func (r *PartyGuestRepositoryImpl) Remove(db *gorm.DB, partyID, guestID string) (int64, error) {
	result := db.Where("party_id = ? AND guest_id = ?", partyID, guestID).
		Delete(&models.PartyGuest{})
	return result.RowsAffected, result.Error
}

func (r *PartyGuestRepositoryImpl) RemoveByParty(db *gorm.DB, partyID string) error {
	return db.Where("party_id = ?", partyID).Delete(&models.PartyGuest{}).Error
}
