package services

import (
	"errors"

	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService interface {
	ListMyNotifications(db *gorm.DB, memberID string, unreadOnly bool) ([]*dto.NotificationResponse, error)
	MarkRead(db *gorm.DB, memberID, notificationID string) error
	UnreadCount(db *gorm.DB, memberID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListMyNotifications(db *gorm.DB, memberID string, unreadOnly bool) ([]*dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByRecipient(db, memberID, unreadOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

// MarkRead only works on the caller's own notifications. Foreign IDs come
// back as not found so existence is not leaked.
func (s *notificationService) MarkRead(db *gorm.DB, memberID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		return wrapNotificationErr(err)
	}
	if notification.RecipientID != memberID {
		return apperrors.ErrNotFound(repositories.ErrNotificationNotFound, "notification", "Notification not found")
	}

	if err := s.notificationRepo.MarkRead(db, notificationID); err != nil {
		return wrapNotificationErr(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(db *gorm.DB, memberID string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(db, memberID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func wrapNotificationErr(err error) error {
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return apperrors.ErrNotFound(err, "notification", "Notification not found")
	}
	return apperrors.InternalError(err)
}
