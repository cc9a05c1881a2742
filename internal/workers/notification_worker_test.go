package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupWorkerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return db
}

func TestPruneDeletesOnlyOldReadNotifications(t *testing.T) {
	db := setupWorkerDB(t)
	repo := repositories.NewNotificationRepository()
	worker := NewNotificationWorker(db, repo, 30)

	old := time.Now().UTC().Add(-60 * 24 * time.Hour)

	oldRead := &models.Notification{RecipientID: "m1", Content: "old read", IsRead: true}
	oldUnread := &models.Notification{RecipientID: "m1", Content: "old unread"}
	freshRead := &models.Notification{RecipientID: "m1", Content: "fresh read", IsRead: true}
	for _, n := range []*models.Notification{oldRead, oldUnread, freshRead} {
		require.NoError(t, db.Create(n).Error)
	}
	for _, id := range []string{oldRead.ID, oldUnread.ID} {
		require.NoError(t, db.Model(&models.Notification{}).
			Where("id = ?", id).
			Update("created_at", old).Error)
	}

	worker.prune(context.Background())

	var remaining []models.Notification
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, n := range remaining {
		assert.NotEqual(t, "old read", n.Content)
	}
}
