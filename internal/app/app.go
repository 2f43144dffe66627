package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/dataloader"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/middleware"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/rest"
)

// Run is the API server entry point. It blocks until ctx is cancelled and
// the server has shut down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	c, err := build(ctx, cfg, logger, pool)
	if err != nil {
		return err
	}
	defer c.close()

	health := rest.NewHealthHandler(pool, BuildVersion())
	if c.resets != nil {
		health.WithComponent("redis", c.resets)
	}

	var authLimit func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupEvery)
		defer limiter.Stop()
		authLimit = limiter.Limit(cfg.RateLimit.AuthPerMinute)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:    health,
		Auth:      rest.NewAuthHandler(c.auth, logger),
		StudyPlan: rest.NewStudyPlanHandler(c.studyPlan, cfg.Progress.Location, logger),
		Document:  rest.NewDocumentHandler(c.document, cfg.Upload.MaxSizeBytes, logger).WithReadTimeout(cfg.Upload.ReadTimeout),
		Flashcard: rest.NewFlashcardHandler(c.flashcard, logger),
		Quiz:      rest.NewQuizHandler(c.quiz, logger),
		Session:   rest.NewSessionHandler(c.session, logger),
		Progress:  rest.NewProgressHandler(c.progress, logger),
	}, authLimit)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(c.auth),
		dataloader.Middleware(c.loaders),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
