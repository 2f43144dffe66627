// Package progress computes the weighted progress dashboard and keeps one
// snapshot per student and day.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type taskCounter interface {
	CountTasks(ctx context.Context, ownerID uuid.UUID) (total, completed int, err error)
}

type sessionCounter interface {
	CountSessions(ctx context.Context, ownerID uuid.UUID) (total, completed int, err error)
}

type quizStats interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (count int, ratioSum float64, err error)
}

type snapshotRepo interface {
	Upsert(ctx context.Context, s *domain.ProgressSnapshot) error
	History(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]domain.ProgressSnapshot, error)
}

type studentLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Service provides progress operations.
type Service struct {
	tasks     taskCounter
	sessions  sessionCounter
	quizzes   quizStats
	snapshots snapshotRepo
	students  studentLister
	cfg       config.ProgressConfig
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new progress service. cfg.Location must be resolved.
func NewService(
	log *slog.Logger,
	tasks taskCounter,
	sessions sessionCounter,
	quizzes quizStats,
	snapshots snapshotRepo,
	students studentLister,
	cfg config.ProgressConfig,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		tasks:     tasks,
		sessions:  sessions,
		quizzes:   quizzes,
		snapshots: snapshots,
		students:  students,
		cfg:       cfg,
		log:       log.With("service", "progress"),
		now:       time.Now,
	}
}

// Compute returns the caller's current progress.
func (s *Service) Compute(ctx context.Context) (*domain.Progress, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.compute(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("progress.Compute: %w", err)
	}
	return p, nil
}

// Snapshot computes the caller's progress and stores it as today's snapshot.
func (s *Service) Snapshot(ctx context.Context) (*domain.ProgressSnapshot, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("progress.Snapshot: %w", err)
	}
	return snap, nil
}

// History returns the caller's snapshots of the last days days, today included.
// days 0 means the configured default.
func (s *Service) History(ctx context.Context, days int) ([]domain.ProgressSnapshot, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if days == 0 {
		days = s.cfg.DefaultHistoryDays
	}
	if days < 1 || days > s.cfg.MaxHistoryDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", s.cfg.MaxHistoryDays))
	}

	from := s.today().AddDate(0, 0, -(days - 1))
	snaps, err := s.snapshots.History(ctx, ownerID, from)
	if err != nil {
		return nil, fmt.Errorf("progress.History: %w", err)
	}
	return snaps, nil
}

// SnapshotAll writes today's snapshot for every student. Failures for one
// student are logged and do not stop the run.
func (s *Service) SnapshotAll(ctx context.Context) (written, failed int, err error) {
	ids, err := s.students.ListIDs(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("progress.SnapshotAll list students: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return written, failed, err
		}
		if _, err := s.snapshot(ctx, id); err != nil {
			failed++
			s.log.ErrorContext(ctx, "snapshot failed",
				slog.String("student_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		written++
	}

	s.log.InfoContext(ctx, "progress snapshots written",
		slog.Int("written", written),
		slog.Int("failed", failed),
	)
	if failed > 0 && written == 0 {
		return written, failed, errors.New("progress.SnapshotAll: every snapshot failed")
	}
	return written, failed, nil
}

func (s *Service) compute(ctx context.Context, ownerID uuid.UUID) (*domain.Progress, error) {
	var (
		c   domain.ProgressCounts
		err error
	)
	if c.TotalTasks, c.CompletedTasks, err = s.tasks.CountTasks(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if c.TotalSessions, c.CompletedSessions, err = s.sessions.CountSessions(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	if c.QuizResults, c.QuizScoreSum, err = s.quizzes.Stats(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("quiz stats: %w", err)
	}

	p := domain.ComputeProgress(c)
	return &p, nil
}

func (s *Service) snapshot(ctx context.Context, ownerID uuid.UUID) (*domain.ProgressSnapshot, error) {
	p, err := s.compute(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	snap := &domain.ProgressSnapshot{
		OwnerID:         ownerID,
		Date:            s.today(),
		Percent:         p.Percent,
		TasksPercent:    p.TasksPercent,
		SessionsPercent: p.SessionsPercent,
		QuizzesPercent:  p.QuizzesPercent,
	}
	if err := s.snapshots.Upsert(ctx, snap); err != nil {
		return nil, fmt.Errorf("upsert snapshot: %w", err)
	}
	return snap, nil
}

// today is midnight of the current date in the configured zone.
func (s *Service) today() time.Time {
	y, m, d := s.now().In(s.cfg.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.cfg.Location)
}
