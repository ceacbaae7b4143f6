package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/giladbarnea/assetvista-core/internal/config"
	"github.com/giladbarnea/assetvista-core/internal/observability"
	"github.com/giladbarnea/assetvista-core/internal/repository"
	"github.com/giladbarnea/assetvista-core/internal/security"
	"github.com/giladbarnea/assetvista-core/internal/service"
	"github.com/giladbarnea/assetvista-core/internal/session"
	"github.com/giladbarnea/assetvista-core/internal/storage"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Server *http.Server
}

// New loads configuration and assembles the full dependency graph:
// Redis-backed sessions, MinIO-backed documents, repositories, handlers.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := observability.NewLogger(cfg.LogLevel)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	docs, err := storage.NewMinIODocumentStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := docs.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	sessions := session.NewRedisStore(redisClient)
	auth := service.NewAuthService(sessions, cfg.PasswordHash, cfg.PasswordSalt, cfg.SessionTTL)
	if cfg.PasswordHash == "" || cfg.PasswordSalt == "" {
		logger.Warn("APP_PASSWORD_HASH or PASSWORD_SALT not set; logins will fail with a configuration error")
	}

	router := NewRouter(RouterConfig{
		Logger:               logger,
		Auth:                 auth,
		Cookies:              security.NewCookieManager(cfg.IsProduction()),
		SessionTTL:           cfg.SessionTTL,
		Redis:                redisClient,
		LoginRateLimitPerMin: cfg.LoginRateLimitPerMin,
		Assets:               repository.NewAssetRepository(docs),
		Snapshots:            repository.NewSnapshotRepository(docs),
		FXRates:              repository.NewFXRateRepository(docs),
		Liquidation:          repository.NewLiquidationSettingsRepository(docs),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &App{Config: cfg, Logger: logger, Server: server}, nil
}
