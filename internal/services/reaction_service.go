package services

import (
	"errors"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ToggleOutcome reports which side of the toggle ran.
type ToggleOutcome string

const (
	ToggleAdded   ToggleOutcome = "added"
	ToggleRemoved ToggleOutcome = "removed"
)

// toggleRetries bounds how often a toggle re-runs after losing an insert race.
const toggleRetries = 3

type ReactionService interface {
	// Toggle flips the (party, reactor, reaction, message) tuple between
	// absent and present. The reaction response is set on ToggleAdded only.
	Toggle(db *gorm.DB, reactorID string, req *dto.ToggleReactionRequest) (ToggleOutcome, *dto.MessageReactionResponse, error)
	List(db *gorm.DB, query *dto.MessageReactionListQuery) ([]*dto.MessageReactionResponse, error)
	Delete(db *gorm.DB, callerID, reactionRowID string) error
	Catalog(db *gorm.DB) ([]dto.ReactionResponse, error)
	GetCatalogEntry(db *gorm.DB, id string) (*dto.ReactionResponse, error)
}

type reactionService struct {
	messageReactionRepo repositories.MessageReactionRepository
	reactionRepo        repositories.ReactionRepository
	partyRepo           repositories.PartyRepository
	memberRepo          repositories.MemberRepository
}

func NewReactionService(
	messageReactionRepo repositories.MessageReactionRepository,
	reactionRepo repositories.ReactionRepository,
	partyRepo repositories.PartyRepository,
	memberRepo repositories.MemberRepository,
) ReactionService {
	return &reactionService{
		messageReactionRepo: messageReactionRepo,
		reactionRepo:        reactionRepo,
		partyRepo:           partyRepo,
		memberRepo:          memberRepo,
	}
}

// Toggle is delete-first: removing the tuple in a transaction both handles
// the present case and locks the row against concurrent togglers. When the
// tuple is absent the insert relies on the composite unique index: a losing
// concurrent insert surfaces as a duplicate-key error and the toggle re-runs,
// now observing the winner's row. At most one row per tuple ever persists.
func (s *reactionService) Toggle(db *gorm.DB, reactorID string, req *dto.ToggleReactionRequest) (ToggleOutcome, *dto.MessageReactionResponse, error) {
	if _, err := s.partyRepo.FindByID(db, req.PartyID); err != nil {
		return "", nil, wrapPartyErr(err)
	}
	if _, err := s.reactionRepo.FindByID(db, req.ReactionID); err != nil {
		return "", nil, wrapReactionErr(err)
	}
	if _, err := s.memberRepo.FindByID(db, reactorID); err != nil {
		return "", nil, wrapMemberErr(err)
	}

	for attempt := 0; attempt < toggleRetries; attempt++ {
		outcome, rowID, err := s.toggleOnce(db, reactorID, req)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return "", nil, apperrors.InternalError(err)
		}
		if outcome == ToggleRemoved {
			return ToggleRemoved, nil, nil
		}

		row, err := s.messageReactionRepo.FindByID(db, rowID)
		if err != nil {
			// The row can be toggled off again between commit and read; the
			// add still happened.
			if errors.Is(err, repositories.ErrMessageReactionNotFound) {
				return ToggleAdded, nil, nil
			}
			return "", nil, apperrors.InternalError(err)
		}
		return ToggleAdded, buildMessageReactionResponse(row), nil
	}

	return "", nil, apperrors.ErrConflict(nil, "reaction", "Reaction is being toggled concurrently, retry")
}

func (s *reactionService) toggleOnce(db *gorm.DB, reactorID string, req *dto.ToggleReactionRequest) (ToggleOutcome, string, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return "", "", tx.Error
	}
	defer tx.Rollback()

	removed, err := s.messageReactionRepo.DeleteTuple(tx, req.PartyID, reactorID, req.ReactionID, req.MessageID)
	if err != nil {
		return "", "", err
	}
	if removed > 0 {
		if err := tx.Commit().Error; err != nil {
			return "", "", err
		}
		return ToggleRemoved, "", nil
	}

	row := &models.MessageReaction{
		PartyID:    req.PartyID,
		ReactorID:  reactorID,
		ReactionID: req.ReactionID,
		MessageID:  req.MessageID,
	}
	if err := s.messageReactionRepo.Create(tx, row); err != nil {
		return "", "", err
	}
	if err := tx.Commit().Error; err != nil {
		return "", "", err
	}
	return ToggleAdded, row.ID, nil
}

func (s *reactionService) List(db *gorm.DB, query *dto.MessageReactionListQuery) ([]*dto.MessageReactionResponse, error) {
	filter := repositories.MessageReactionFilter{}
	if query.MessageID != "" {
		filter.MessageID = &query.MessageID
	}
	if query.PartyID != "" {
		filter.PartyID = &query.PartyID
	}

	rows, err := s.messageReactionRepo.Find(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.MessageReactionResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, buildMessageReactionResponse(&rows[i]))
	}
	return responses, nil
}

// Delete force-removes a reaction row. Only the original reactor or the
// creator of the party the message belongs to may do this.
func (s *reactionService) Delete(db *gorm.DB, callerID, reactionRowID string) error {
	row, err := s.messageReactionRepo.FindByID(db, reactionRowID)
	if err != nil {
		return wrapMessageReactionErr(err)
	}

	if row.ReactorID != callerID {
		party, err := s.partyRepo.FindByID(db, row.PartyID)
		if err != nil {
			return wrapPartyErr(err)
		}
		if party.CreatorID != callerID {
			return apperrors.ErrNotReactionOwner
		}
	}

	if err := s.messageReactionRepo.Delete(db, reactionRowID); err != nil {
		// Already toggled off by its owner; the force-delete has nothing to do.
		if errors.Is(err, repositories.ErrMessageReactionNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *reactionService) Catalog(db *gorm.DB) ([]dto.ReactionResponse, error) {
	reactions, err := s.reactionRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ReactionResponse, 0, len(reactions))
	for i := range reactions {
		responses = append(responses, buildReactionResponse(&reactions[i]))
	}
	return responses, nil
}

func (s *reactionService) GetCatalogEntry(db *gorm.DB, id string) (*dto.ReactionResponse, error) {
	reaction, err := s.reactionRepo.FindByID(db, id)
	if err != nil {
		return nil, wrapReactionErr(err)
	}
	resp := buildReactionResponse(reaction)
	return &resp, nil
}

func wrapReactionErr(err error) error {
	if errors.Is(err, repositories.ErrReactionNotFound) {
		return apperrors.ErrNotFound(err, "reaction", "Reaction not found")
	}
	return apperrors.InternalError(err)
}

func wrapMessageReactionErr(err error) error {
	if errors.Is(err, repositories.ErrMessageReactionNotFound) {
		return apperrors.ErrNotFound(err, "reaction", "Message reaction not found")
	}
	return apperrors.InternalError(err)
}
