// Package session runs study-session timers. A student has at most one open
// session; starting again returns it.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	GetOpen(ctx context.Context, ownerID uuid.UUID) (*domain.StudySession, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error)
	Create(ctx context.Context, ownerID uuid.UUID, title string, startedAt time.Time) (*domain.StudySession, error)
	Update(ctx context.Context, s *domain.StudySession, from domain.SessionState) (*domain.StudySession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	DefaultTitle = "جلسة مذاكرة"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service provides study session operations.
type Service struct {
	sessions sessionRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new session service.
func NewService(log *slog.Logger, sessions sessionRepo) *Service {
	return &Service{
		sessions: sessions,
		log:      log.With("service", "session"),
		now:      time.Now,
	}
}

// StartResult is the caller's open session; Created is false when an
// already running session was returned.
type StartResult struct {
	Session *domain.StudySession
	Created bool
}

// ListResult is a page of sessions with the total count.
type ListResult struct {
	Sessions []domain.StudySession
	Total    int
}
