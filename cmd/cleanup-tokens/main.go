// Command cleanup-tokens deletes expired and revoked refresh tokens and
// expired email confirmations.
//
// Usage:
//
//	cleanup-tokens
//
// Uses the same configuration as the server (CONFIG_PATH, .env, environment).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/confirmation"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsqa-backend/internal/app"
	authpkg "github.com/heartmarshall/newsqa-backend/internal/auth"
	"github.com/heartmarshall/newsqa-backend/internal/config"
	authsvc "github.com/heartmarshall/newsqa-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		user.New(pool),
		profile.New(pool),
		token.New(pool),
		confirmation.New(pool),
		postgres.NewTxManager(pool),
		authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
		cfg.Server.PublicURL,
	)

	tokens, confirmations, err := svc.CleanupExpired(ctx)
	if err != nil {
		logger.Error("cleanup", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("cleanup finished",
		slog.Int("refresh_tokens", tokens),
		slog.Int("confirmations", confirmations),
	)
}
