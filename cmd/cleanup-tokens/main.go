// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is intended to be invoked by an external cron job.
//
// Usage:
//
//	cleanup-tokens
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/email"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/student"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/mudhakir-backend/internal/app"
	"github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	authsvc "github.com/heartmarshall/mudhakir-backend/internal/service/auth"
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
		student.New(pool),
		token.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		auth.NewHasher(cfg.Auth.PasswordHashCost),
		nil,
		email.NewLogMailer(logger),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("cleanup tokens completed", slog.Int("deleted", deleted))
}
