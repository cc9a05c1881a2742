package workers

import (
	"context"
	"time"

	"watchparty_backend/internal/logger"
	"watchparty_backend/internal/repositories"

	"gorm.io/gorm"
)

// NotificationWorker periodically prunes read notifications past their
// retention window so the table does not grow without bound.
type NotificationWorker struct {
	db        *gorm.DB
	repo      repositories.NotificationRepository
	retention time.Duration
	interval  time.Duration
}

func NewNotificationWorker(db *gorm.DB, repo repositories.NotificationRepository, retentionDays int) *NotificationWorker {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &NotificationWorker{
		db:        db,
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  time.Hour,
	}
}

// Run blocks until ctx is cancelled, pruning once immediately and then on
// every tick.
func (w *NotificationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopping")
			return
		case <-ticker.C:
			w.prune(ctx)
		}
	}
}

func (w *NotificationWorker) prune(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.repo.DeleteReadOlderThan(w.db.WithContext(ctx), cutoff)
	if err != nil {
		logger.Error("notification prune failed", "error", err.Error())
		return
	}
	if deleted > 0 {
		logger.Info("pruned read notifications", "deleted", deleted, "cutoff", cutoff)
	}
}
