package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageReactionNotFound = errors.New("message reaction not found")

// MessageReactionFilter narrows List; nil fields are ignored and present
// fields AND-combine.
type MessageReactionFilter struct {
	MessageID *string
	PartyID   *string
}

type MessageReactionRepository interface {
	Create(db *gorm.DB, reaction *models.MessageReaction) error
	FindByID(db *gorm.DB, id string) (*models.MessageReaction, error)
	Find(db *gorm.DB, filter MessageReactionFilter) ([]models.MessageReaction, error)
	// DeleteTuple removes the row matching the full toggle tuple and reports
	// how many rows went away (0 or 1 given the unique index).
	DeleteTuple(db *gorm.DB, partyID, reactorID, reactionID, messageID string) (int64, error)
	Delete(db *gorm.DB, id string) error
}

type MessageReactionRepositoryImpl struct{}

func NewMessageReactionRepository() MessageReactionRepository {
	return &MessageReactionRepositoryImpl{}
}

func (r *MessageReactionRepositoryImpl) Create(db *gorm.DB, reaction *models.MessageReaction) error {
	return db.Create(reaction).Error
}

func (r *MessageReactionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MessageReaction, error) {
	var reaction models.MessageReaction
	err := db.Preload("Reaction").Preload("Reactor.User").Preload("Party").
		First(&reaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageReactionNotFound
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *MessageReactionRepositoryImpl) Find(db *gorm.DB, filter MessageReactionFilter) ([]models.MessageReaction, error) {
	query := db.Preload("Reaction").Preload("Reactor.User")
	if filter.PartyID != nil {
		query = query.Where("party_id = ?", *filter.PartyID)
	}
	if filter.MessageID != nil {
		query = query.Where("message_id = ?", *filter.MessageID)
	}

	var reactions []models.MessageReaction
	err := query.Order("created_at").Find(&reactions).Error
	return reactions, err
}

func (r *MessageReactionRepositoryImpl) DeleteTuple(db *gorm.DB, partyID, reactorID, reactionID, messageID string) (int64, error) {
	result := db.Where(
		"party_id = ? AND reactor_id = ? AND reaction_id = ? AND message_id = ?",
		partyID, reactorID, reactionID, messageID,
	).Delete(&models.MessageReaction{})
	return result.RowsAffected, result.Error
}

func (r *MessageReactionRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.MessageReaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageReactionNotFound
	}
	return nil
}
