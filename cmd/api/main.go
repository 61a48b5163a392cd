package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/postboard/postboard-api/docs" // swagger docs

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/postboard/postboard-api/internal/api"
	"github.com/postboard/postboard-api/internal/api/handler"
	"github.com/postboard/postboard-api/internal/core/service"
	mongodb "github.com/postboard/postboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/postboard/postboard-api/internal/infrastructure/db/redis"
	"github.com/postboard/postboard-api/internal/infrastructure/queue"
	"github.com/postboard/postboard-api/internal/pkg/config"
	"github.com/postboard/postboard-api/pkg/logger"
)

// @title                       Postboard API
// @version                     1.0
// @description                 User registration, bearer-token authentication and posts.
// @BasePath                    /
// @schemes                     http
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "postboard-api",
		Env:     cfg.Env,
	})

	insecureLevel := zerolog.WarnLevel
	if cfg.IsProduction() {
		insecureLevel = zerolog.ErrorLevel
	}
	for _, name := range cfg.InsecureDefaults() {
		log.WithLevel(insecureLevel).Str("variable", name).Msg("secret is using its insecure default value")
	}

	if cfg.ThreadCount > 0 {
		runtime.GOMAXPROCS(cfg.ThreadCount)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Redis only backs idempotency keys; the API runs without it.
	var rdb *redis.Client
	if client, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, idempotency keys disabled")
	} else {
		rdb = client
		defer rdb.Close()
	}

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	credentials := mongodb.NewCredentialRepository(db)
	posts := mongodb.NewPostRepository(db)
	authEvents := mongodb.NewAuthEventRepository(db)

	// --- Services ---
	tokens := service.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := service.NewHasher(cfg.Auth.HashSalt)
	authService := service.NewAuthService(users, credentials, hasher, tokens, log)
	resolver := service.NewIdentityResolver(tokens, users, log)
	userService := service.NewUserService(users)
	postService := service.NewPostService(posts, redisdb.NewIdempotencyStore(rdb), log)

	// Workers outlive the signal so events from draining requests are recorded.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher := queue.NewDispatcher(cfg.Auth.EventWorkers, service.NewAuthEventService(authEvents, log), log)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Dependencies{
		Log:      log,
		Resolver: resolver,
		Auth:     handler.NewAuthHandler(authService, dispatcher),
		Users:    handler.NewUserHandler(userService),
		Posts:    handler.NewPostHandler(postService),
		Health:   handler.NewHealthHandler(db, rdb),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("auth event queue not drained")
	}
	log.Info().Msg("graceful shutdown completed")
}
