// Package main is the entry point for the catalog-search-service API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"catalog-search-service/internal/app/service"
	"catalog-search-service/internal/config"
	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/infra/provider"
	"catalog-search-service/internal/infra/provider/itunes"
	rediscache "catalog-search-service/internal/infra/redis"
	"catalog-search-service/internal/logger"
	"catalog-search-service/internal/transport/httpserver"
	"catalog-search-service/internal/transport/httpserver/middleware"
	"catalog-search-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("APP_CONFIG_FILE"))
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting catalog-search-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
		zap.String("country", cfg.ITunes.Country),
	)

	// Catalog client and decoder
	client := itunes.New(
		provider.ClientConfig{
			BaseURL:   cfg.ITunes.BaseURL,
			Timeout:   cfg.ITunes.Timeout,
			UserAgent: cfg.ITunes.UserAgent,
			CB: provider.CBConfig{
				Enabled:      cfg.ITunes.CB.Enabled,
				MaxRequests:  cfg.ITunes.CB.MaxRequests,
				MinRequests:  cfg.ITunes.CB.MinRequests,
				Interval:     cfg.ITunes.CB.Interval,
				Timeout:      cfg.ITunes.CB.Timeout,
				FailureRatio: cfg.ITunes.CB.FailureRatio,
			},
		},
		log.Logger,
	)
	decoder := itunes.NewDecoder(log.Logger)

	// Response cache (optional, based on config)
	var (
		cache   domain.Cache
		pingers []middleware.Pinger
	)
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}

		responseCache := rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		cache = responseCache
		pingers = append(pingers, responseCache)

		log.Info("cache enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Duration("ttl", cfg.Cache.TTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("cache disabled")
	}

	catalogSvc := service.NewCatalogService(
		domain.NewQueryBuilder(cfg.ITunes.Country),
		client,
		decoder,
		cache,
		service.Config{
			Timeout:  cfg.ITunes.Timeout,
			CacheTTL: cfg.Cache.TTL,
		},
		log.Logger,
	)

	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Name:      cfg.App.Name,
			Port:      cfg.App.Port,
			BodyLimit: 64 * 1024,
		},
		catalogSvc,
		validator.New(),
		log.Logger,
		pingers...,
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
