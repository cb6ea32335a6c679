package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/api"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/service"
	googleauth "github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/infrastructure/auth"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/infrastructure/config"
	mongodb "github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/infrastructure/db/redis"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/infrastructure/notify"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/pkg/logger"
)

const (
	sessionTTL      = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	submissionRepo := mongodb.NewSubmissionRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := submissionRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("submission index creation failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user index creation failed")
	}

	statusStore := redisdb.NewNotificationStatusStore(rdb)

	// --- Services ---
	notifier := notify.NewDiscordNotifier(cfg.Discord.WebhookURL, cfg.Discord.MentionID, log)
	verifier := googleauth.NewGoogleVerifier(cfg.GoogleClientID)

	submissionService := service.NewSubmissionService(submissionRepo, userRepo, notifier, statusStore, log)
	accountService := service.NewAccountService(
		userRepo, verifier, cfg.JWTSecret, sessionTTL, cfg.SuperAdminEmail, cfg.AllowedDomain, log)

	dashboard := service.NewDashboardService(submissionRepo, userRepo, cfg.SuperAdminEmail, log)
	if err := dashboard.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("dashboard subscriptions failed")
	}
	defer dashboard.Close()

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Submissions: submissionService,
		Accounts:    accountService,
		Dashboard:   dashboard,
		Status:      statusStore,
		Mongo:       db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
