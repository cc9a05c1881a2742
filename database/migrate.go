package database

import (
	"errors"
	"fmt"

	"watchparty_backend/internal/logger"
	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the postgres pool. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey, which the toggle and
// membership paths depend on.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Channel{},
		&models.ChannelMember{},
		&models.Party{},
		&models.PartyGuest{},
		&models.Reaction{},
		&models.MessageReaction{},
		&models.Notification{},
	)
}

// DefaultReactions is the seed catalog. Names are stable identifiers the
// client maps to artwork.
var DefaultReactions = []string{"like", "love", "laugh", "wow", "sad", "angry"}

// SeedReactions inserts any catalog entries that do not exist yet. Safe to
// run on every startup.
func SeedReactions(db *gorm.DB) error {
	repo := repositories.NewReactionRepository()
	for _, name := range DefaultReactions {
		_, err := repo.FindByName(db, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrReactionNotFound) {
			return err
		}
		if err := repo.Create(db, &models.Reaction{Name: name}); err != nil {
			return err
		}
		logger.Info("seeded reaction", "name", name)
	}
	return nil
}
