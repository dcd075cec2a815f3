package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/koobs97/BonsCore-sub000/cache"
	"github.com/koobs97/BonsCore-sub000/config"
	"github.com/koobs97/BonsCore-sub000/db"
	"github.com/koobs97/BonsCore-sub000/internal/auth/handler"
	repo "github.com/koobs97/BonsCore-sub000/internal/auth/repository/postgres"
	"github.com/koobs97/BonsCore-sub000/internal/auth/repository/rediscache"
	"github.com/koobs97/BonsCore-sub000/internal/auth/service"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer dbPool.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer redisClient.Close()

	accountRepo := repo.NewPostgresRepository(dbPool)
	throttle := rediscache.NewAttemptThrottle(redisClient)
	locations := rediscache.NewLocationCache(redisClient)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	registry := service.NewSessionRegistry(tokenService, log)
	registry.StartCompaction(ctx, time.Duration(cfg.CompactionHours)*time.Hour)

	detector := service.NewAnomalyDetector(accountRepo, accountRepo, locations, log)
	loginService := service.NewLoginService(accountRepo, accountRepo, throttle, locations,
		registry, tokenService, detector, log)
	authHandler := handler.NewAuthHandler(loginService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, loginService)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
