package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/assoimpresa360/client-portal/internal/api"
	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
	"github.com/assoimpresa360/client-portal/internal/core/service"
	"github.com/assoimpresa360/client-portal/internal/infrastructure/assistant"
	"github.com/assoimpresa360/client-portal/internal/infrastructure/config"
	"github.com/assoimpresa360/client-portal/internal/infrastructure/db/mongo"
	"github.com/assoimpresa360/client-portal/internal/infrastructure/db/redis"
	"github.com/assoimpresa360/client-portal/internal/infrastructure/session"
	"github.com/assoimpresa360/client-portal/pkg/logger"
)

func main() {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Record store. Unconfigured is a supported state: the login procedure
	// falls back to the demo credentials and the admin panel is read-only
	// empty, which is exactly how the portal behaves before provisioning.
	var db *gomongo.Database
	var clientRepo ports.ClientRepository
	if cfg.Mongo.Configured() {
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("record store connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := mongo.NewClientRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("record store index creation failed")
		}
		db = database
		clientRepo = repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("record store connected")
	} else {
		log.Warn().Msg("record store unconfigured, demo login enabled")
	}

	// Chat guard backend, optional.
	var rdb *goredis.Client
	var guard ports.ChatGuard = redis.NoopChatGuard{}
	if cfg.Redis.Configured() {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		rdb = client
		guard = redis.NewChatGuard(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("chat guard connected")
	}

	gateway := assistant.NewGateway(ctx, assistant.Config{
		APIKey: cfg.Assistant.APIKey,
		Model:  cfg.Assistant.Model,
	}, logger.With("assistant"))

	sessions := session.NewRegistry(logger.With("session"))

	authService := service.NewAuthService(clientRepo, sessions, service.AuthConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		DemoLoginDelay:    cfg.DemoLoginDelay,
	}, logger.With("auth"))

	var clientService ports.ClientService
	if clientRepo != nil {
		clientService = service.NewClientService(clientRepo, logger.With("clients"))
	} else {
		clientService = service.NewClientService(unconfiguredRepo{}, logger.With("clients"))
	}

	chatService := service.NewChatService(sessions, gateway, guard, logger.With("chat"))

	e := api.NewRouter(api.Deps{
		AuthService:   authService,
		ClientService: clientService,
		ChatService:   chatService,
		Sessions:      sessions,
		JWTSecret:     cfg.JWTSecret,
		Mongo:         db,
		Redis:         rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("client portal listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("bye")
}

// unconfiguredRepo backs the admin panel when no record store was
// provided: every operation reports the store as unavailable instead of
// crashing the panel.
type unconfiguredRepo struct{}

func (unconfiguredRepo) List(context.Context) ([]domain.Client, error) {
	return nil, domain.ErrStoreUnavailable
}

func (unconfiguredRepo) FindByCredentials(context.Context, string, string) (*domain.Client, error) {
	return nil, domain.ErrStoreUnavailable
}

func (unconfiguredRepo) Insert(context.Context, *domain.Client) (*domain.Client, error) {
	return nil, domain.ErrStoreUnavailable
}

func (unconfiguredRepo) Update(context.Context, string, *domain.Client) error {
	return domain.ErrStoreUnavailable
}

func (unconfiguredRepo) Delete(context.Context, string) error {
	return domain.ErrStoreUnavailable
}
