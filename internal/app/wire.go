package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/email"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/llm"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/modelapi"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/pdf"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	documentrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/document"
	flashcardrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/flashcard"
	progressrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/progress"
	quizrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/quiz"
	sessionrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/student"
	studyplanrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/resetstore"
	"github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	authsvc "github.com/heartmarshall/mudhakir-backend/internal/service/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/service/document"
	"github.com/heartmarshall/mudhakir-backend/internal/service/flashcard"
	"github.com/heartmarshall/mudhakir-backend/internal/service/progress"
	"github.com/heartmarshall/mudhakir-backend/internal/service/quiz"
	"github.com/heartmarshall/mudhakir-backend/internal/service/session"
	"github.com/heartmarshall/mudhakir-backend/internal/service/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/dataloader"
	"github.com/heartmarshall/mudhakir-backend/migrations"
)

// container holds the wired services of one process.
type container struct {
	auth      *authsvc.Service
	studyPlan *studyplan.Service
	document  *document.Service
	flashcard *flashcard.Service
	quiz      *quiz.Service
	session   *session.Service
	progress  *progress.Service

	loaders *dataloader.Repos
	redis   *redis.Client
	resets  *resetstore.Store
}

// close releases optional connections opened by build.
func (c *container) close() {
	if c.redis != nil {
		_ = c.redis.Close()
	}
}

// openDatabase connects to PostgreSQL and applies migrations when
// auto-migrate is on.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("database connected", slog.Int("max_conns", int(cfg.Database.MaxConns)))

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", n))
	return nil
}

// build wires repositories, adapters and services.
func build(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*container, error) {
	c := &container{}
	txm := postgres.NewTxManager(pool)

	students := student.New(pool)
	tokens := token.New(pool)
	plans := studyplanrepo.New(pool)
	docs := documentrepo.New(pool)
	decks := flashcardrepo.New(pool)
	quizzes := quizrepo.New(pool)
	sessions := sessionrepo.New(pool)
	snapshots := progressrepo.New(pool)

	// auth
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.PasswordHashCost)

	var mail interface {
		Send(ctx context.Context, msg email.Message) error
	}
	if cfg.Email.SendGridAPIKey != "" {
		mail = email.NewSendGrid(cfg.Email.SendGridAPIKey, cfg.Email.SendGridHost,
			cfg.Email.FromName, cfg.Email.FromAddress, logger)
	} else {
		logger.Warn("email: no SendGrid key configured, reset links are logged")
		mail = email.NewLogMailer(logger)
	}

	var resets interface {
		Save(ctx context.Context, tokenHash string, studentID uuid.UUID, ttl time.Duration) error
		Consume(ctx context.Context, tokenHash string) (uuid.UUID, error)
	}
	if cfg.Redis.Enabled() {
		client, err := resetstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.DialTimeout)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.redis = client
		c.resets = resetstore.New(client)
		resets = c.resets
	} else {
		logger.Warn("redis: not configured, password reset is disabled")
	}
	c.auth = authsvc.NewService(logger, students, tokens, txm, jwtMgr, hasher, resets, mail, cfg.Auth)

	c.studyPlan = studyplan.NewService(logger, plans, txm)
	c.session = session.NewService(logger, sessions)

	// AI generation: the model service is tried first for quizzes, the LLM
	// serves flashcards and the quiz fallback.
	var (
		forwarder interface {
			ForwardDocument(ctx context.Context, doc *domain.Document) error
		}
		modelQuiz, llmQuiz interface {
			GenerateQuiz(ctx context.Context, text string, level domain.QuizLevel, count int) ([]domain.QuizQuestion, error)
		}
		llmCards interface {
			GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashcardDraft, error)
		}
	)
	if cfg.ModelAPI.Enabled() {
		client := modelapi.New(cfg.ModelAPI.BaseURL, cfg.ModelAPI.Timeout, logger)
		forwarder, modelQuiz = client, client
	} else {
		logger.Warn("model api: not configured, documents are not forwarded")
	}
	gen, err := newGenerator(cfg.LLM, logger)
	if err != nil {
		c.close()
		return nil, err
	}
	if gen != nil {
		llmQuiz, llmCards = gen, gen
	}

	c.document = newDocumentService(cfg.Upload, logger, docs, forwarder)
	c.flashcard = flashcard.NewService(logger, decks, docs, llmCards, txm)
	c.quiz = quiz.NewService(logger, quizzes, docs, modelQuiz, llmQuiz)
	c.progress = progress.NewService(logger, plans, sessions, quizzes, snapshots, students, cfg.Progress)

	c.loaders = &dataloader.Repos{Task: plans, Card: decks}
	return c, nil
}

// newGenerator returns the LLM generator for the configured provider, or nil
// when no API key is set.
func newGenerator(cfg config.LLMConfig, logger *slog.Logger) (*llm.Generator, error) {
	if !cfg.Enabled() {
		logger.Warn("llm: no API key configured, AI generation falls back to the model service only")
		return nil, nil
	}

	var completer llm.Completer
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		completer = llm.NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens, cfg.Timeout)
	case "anthropic":
		completer = llm.NewAnthropic(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens, cfg.Timeout)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	logger.Info("llm configured", slog.String("provider", cfg.Provider), slog.String("model", cfg.Model))
	return llm.NewGenerator(completer, cfg.MaxInputChars, logger), nil
}

// newDocumentService assembles the upload pipeline. Disabled stages stay nil
// and are skipped by the service.
func newDocumentService(
	cfg config.UploadConfig,
	logger *slog.Logger,
	docs *documentrepo.Repo,
	forwarder interface {
		ForwardDocument(ctx context.Context, doc *domain.Document) error
	},
) *document.Service {
	var scanner interface {
		Scan(ctx context.Context, path string) error
	}
	if cfg.ScanEnabled {
		scanner = pdf.NewScanner(cfg.ScanCommand, cfg.ProcessTimeout)
	} else {
		logger.Warn("upload: antivirus scan is disabled")
	}

	var sanitizer interface {
		Sanitize(ctx context.Context, in, out string) error
	}
	if cfg.SanitizeEnabled {
		sanitizer = pdf.NewSanitizer(cfg.SanitizeCommand, cfg.ProcessTimeout)
	}

	return document.NewService(logger, docs, scanner, sanitizer,
		pdf.NewExtractor(cfg.MaxExtractedChars), forwarder, cfg)
}
