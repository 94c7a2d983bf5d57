package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/firepost/backend/internal/auth"
	"github.com/firepost/backend/internal/config"
	"github.com/firepost/backend/internal/handler"
	"github.com/firepost/backend/internal/logging"
	"github.com/firepost/backend/internal/repository"
	"github.com/firepost/backend/internal/service"
	"github.com/firepost/backend/internal/store"
)

const devJWTSecret = "dev-secret-change-in-production"

// @title Firepost API
// @version 1.0
// @description REST API for posts with email/password authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	ctx := context.Background()

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			log.Error(ctx, "JWT_SECRET is required in production")
			os.Exit(1)
		}
		log.Warn(ctx, "JWT_SECRET not set, using insecure development default")
		secret = devJWTSecret
	}

	ttl, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.Error(ctx, "invalid TOKEN_TTL", "value", cfg.Auth.TokenTTL)
		os.Exit(1)
	}

	var st store.Store
	if cfg.HasPostgres() {
		pg, err := store.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Error(ctx, "failed to connect to postgres", "error", err.Error())
			os.Exit(1)
		}
		defer pg.Close()

		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error(ctx, "failed to ensure schema", "error", err.Error())
			os.Exit(1)
		}
		st = pg
	} else {
		log.Warn(ctx, "no database configured, using in-memory store")
		st = store.NewMemory()
	}

	tokens := auth.NewTokenService(secret, ttl)
	posts := service.NewPostService(repository.NewPostRepository(st))
	users := service.NewUserService(repository.NewUserRepository(st), tokens)

	verbose := !cfg.IsProduction()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.CORSAllowedOrigins, ",")))
	handler.RegisterRoutes(router,
		handler.NewPostHandler(posts, log, verbose),
		handler.NewUserHandler(users, log, verbose),
		users,
	)

	log.Info(ctx, "starting server", "port", cfg.Server.Port, "env", cfg.Env)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Error(ctx, "server stopped", "error", err.Error())
		os.Exit(1)
	}
}
