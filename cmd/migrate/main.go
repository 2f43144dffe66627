// Command migrate applies the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/app"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(command, cfg, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(command string, cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		logger.Info("rolled back one migration")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Source)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}
