package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReactionNotFound = errors.New("reaction not found")

// ReactionRepository serves the fixed reaction catalog.
type ReactionRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Reaction, error)
	FindByName(db *gorm.DB, name string) (*models.Reaction, error)
	FindAll(db *gorm.DB) ([]models.Reaction, error)
	Create(db *gorm.DB, reaction *models.Reaction) error
}

type ReactionRepositoryImpl struct{}

func NewReactionRepository() ReactionRepository {
	return &ReactionRepositoryImpl{}
}

func (r *ReactionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Reaction, error) {
	var reaction models.Reaction
	err := db.First(&reaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReactionNotFound
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *ReactionRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Reaction, error) {
	var reaction models.Reaction
	err := db.First(&reaction, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReactionNotFound
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *ReactionRepositoryImpl) FindAll(db *gorm.DB) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := db.Order("name").Find(&reactions).Error
	return reactions, err
}

func (r *ReactionRepositoryImpl) Create(db *gorm.DB, reaction *models.Reaction) error {
	return db.Create(reaction).Error
}
