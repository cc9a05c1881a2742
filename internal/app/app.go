package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watchparty_backend/database"
	"watchparty_backend/internal/config"
	"watchparty_backend/internal/email"
	"watchparty_backend/internal/handlers"
	"watchparty_backend/internal/logger"
	"watchparty_backend/internal/middleware"
	"watchparty_backend/internal/notify"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/routes"
	"watchparty_backend/internal/services"
	"watchparty_backend/internal/validator"
	"watchparty_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole service: config, logging, database, router, background
// workers, then blocks serving HTTP until SIGINT or SIGTERM.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := database.SeedReactions(db); err != nil {
		return fmt.Errorf("reaction seeding failed: %w", err)
	}

	router := SetupRouter(cfg, db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notificationRepo := repositories.NewNotificationRepository()
	worker := workers.NewNotificationWorker(db, notificationRepo, cfg.Notify.RetentionDays)
	go worker.Run(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// SetupRouter builds the gin engine with the full middleware chain and every
// route registered. Tests call this directly with their own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	sc := initializeServices(cfg, db)
	appHandlers := handlers.NewAppHandlers(validator.New(), sc)
	routes.RegisterRoutes(router, appHandlers)

	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	memberRepo := repositories.NewMemberRepository()
	channelRepo := repositories.NewChannelRepository()
	channelMemberRepo := repositories.NewChannelMemberRepository()
	partyRepo := repositories.NewPartyRepository()
	partyGuestRepo := repositories.NewPartyGuestRepository()
	reactionRepo := repositories.NewReactionRepository()
	messageReactionRepo := repositories.NewMessageReactionRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notifier := notify.NewNotifier(
		notify.NewStorePublisher(db, notificationRepo),
		cfg.Notify.Timeout,
	)

	var emailProv email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled {
		smtp, err := email.NewSMTPProvider(cfg)
		if err != nil {
			logger.Warn("email disabled, smtp misconfigured", "error", err.Error())
		} else {
			emailProv = smtp
		}
	}

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, memberRepo, emailProv),
		MemberService: services.NewMemberService(memberRepo, userRepo, partyGuestRepo, notificationRepo),
		ChannelService: services.NewChannelService(
			channelRepo, channelMemberRepo, memberRepo, notifier,
		),
		PartyService: services.NewPartyService(
			partyRepo, partyGuestRepo, memberRepo, channelRepo, notifier,
			cfg.Party.EnforceUpdateOwnership,
		),
		ReactionService: services.NewReactionService(
			messageReactionRepo, reactionRepo, partyRepo, memberRepo,
		),
		NotificationService: services.NewNotificationService(notificationRepo),
	}
}

// exit is split out for tests.
var exit = os.Exit

// RunOrDie is the cmd entrypoint.
func RunOrDie() {
	if err := Run(); err != nil {
		logger.Error("server exited with error", "error", err.Error())
		exit(1)
	}
}
