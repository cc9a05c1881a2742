package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StorePublisher persists notifications in the relational store, one row per
// recipient, where the client application polls them. It holds the pool
// handle directly because publishing runs after the triggering request's
// transaction has committed.
type StorePublisher struct {
	db   *gorm.DB
	repo repositories.NotificationRepository
}

func NewStorePublisher(db *gorm.DB, repo repositories.NotificationRepository) *StorePublisher {
	return &StorePublisher{
		db:   db,
		repo: repo,
	}
}

func (p *StorePublisher) Publish(ctx context.Context, recipientID, content, link string, data map[string]interface{}) error {
	var dataJSON datatypes.JSON
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		dataJSON = datatypes.JSON(raw)
	}

	notification := &models.Notification{
		RecipientID: recipientID,
		Content:     content,
		Link:        link,
		Data:        dataJSON,
	}
	return p.repo.Create(p.db.WithContext(ctx), notification)
}
