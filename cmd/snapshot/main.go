// Command snapshot writes today's progress snapshot for every student.
// It is intended to be invoked by an external cron job shortly before
// midnight in the configured progress timezone.
//
// Exit codes: 0 = success, 1 = every snapshot failed or setup error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/quiz"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/student"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/app"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/service/progress"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := progress.NewService(
		logger,
		studyplan.New(pool),
		session.New(pool),
		quiz.New(pool),
		progressrepo.New(pool),
		student.New(pool),
		cfg.Progress,
	)

	start := time.Now()
	written, failed, err := svc.SnapshotAll(ctx)
	if err != nil {
		logger.Error("snapshot failed",
			slog.String("error", err.Error()),
			slog.Int("failed", failed),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("snapshot completed",
		slog.Int("written", written),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)),
	)
}
