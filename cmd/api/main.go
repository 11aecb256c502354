package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartchef/smartchef-v4/backend/config"
	"github.com/smartchef/smartchef-v4/backend/internal/database"
	"github.com/smartchef/smartchef-v4/backend/internal/logger"
	"github.com/smartchef/smartchef-v4/backend/internal/server"
)

func main() {
	// .env is optional; real deployments configure the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		panic(err)
	}

	log := logger.New(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using built-in fallback secret")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database connected")

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Warn("redis unavailable, scan rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	var storage *config.S3Storage
	if cfg.S3Bucket != "" {
		storage, err = config.NewS3Storage(context.Background(), cfg)
		if err != nil {
			log.Warn("S3 unavailable, scan photo storage disabled", zap.Error(err))
			storage = nil
		}
	}

	srv := server.New(cfg, db, storage, redisClient, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
