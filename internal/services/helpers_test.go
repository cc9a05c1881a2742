package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"watchparty_backend/internal/config"
	"watchparty_backend/internal/models"
	"watchparty_backend/internal/notify"
	"watchparty_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Notify.Timeout = time.Second
	config.AppConfig = cfg
}

// setupTestDB opens a per-test in-memory database with the full schema.
// TranslateError matches production so duplicate-key paths behave the same.
func setupTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Channel{},
		&models.ChannelMember{},
		&models.Party{},
		&models.PartyGuest{},
		&models.Reaction{},
		&models.MessageReaction{},
		&models.Notification{},
	))
	return db
}

func createTestMember(t *testing.T, db *gorm.DB, email, firstName string) *models.Member {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    firstName,
		LastName:     "Tester",
	}
	require.NoError(t, db.Create(user).Error)

	member := &models.Member{UserID: user.ID}
	require.NoError(t, db.Create(member).Error)
	member.User = user
	return member
}

func createTestChannel(t *testing.T, db *gorm.DB, creatorID, name string) *models.Channel {
	t.Helper()

	channel := &models.Channel{CreatorID: creatorID, Name: name}
	require.NoError(t, db.Create(channel).Error)
	return channel
}

func createTestReaction(t *testing.T, db *gorm.DB, name string) *models.Reaction {
	t.Helper()

	reaction := &models.Reaction{Name: name}
	require.NoError(t, db.Create(reaction).Error)
	return reaction
}

// capturePublisher records published notifications and signals each delivery
// so tests can wait for the async publish to land.
type capturePublisher struct {
	mu        sync.Mutex
	published []capturedNotification
	delivered chan struct{}
}

type capturedNotification struct {
	RecipientID string
	Content     string
	Link        string
	Data        map[string]interface{}
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{delivered: make(chan struct{}, 16)}
}

func (p *capturePublisher) Publish(ctx context.Context, recipientID, content, link string, data map[string]interface{}) error {
	p.mu.Lock()
	p.published = append(p.published, capturedNotification{
		RecipientID: recipientID,
		Content:     content,
		Link:        link,
		Data:        data,
	})
	p.mu.Unlock()
	p.delivered <- struct{}{}
	return nil
}

func (p *capturePublisher) waitForDelivery(t *testing.T) capturedNotification {
	t.Helper()

	select {
	case <-p.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification delivery")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.published[len(p.published)-1]
}

func newTestNotifier() (*notify.Notifier, *capturePublisher) {
	pub := newCapturePublisher()
	return notify.NewNotifier(pub, time.Second), pub
}

func newTestPartyService(enforceUpdateOwnership bool) (PartyService, *capturePublisher) {
	notifier, pub := newTestNotifier()
	svc := NewPartyService(
		repositories.NewPartyRepository(),
		repositories.NewPartyGuestRepository(),
		repositories.NewMemberRepository(),
		repositories.NewChannelRepository(),
		notifier,
		enforceUpdateOwnership,
	)
	return svc, pub
}

func newTestReactionService() ReactionService {
	return NewReactionService(
		repositories.NewMessageReactionRepository(),
		repositories.NewReactionRepository(),
		repositories.NewPartyRepository(),
		repositories.NewMemberRepository(),
	)
}
