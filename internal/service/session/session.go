package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// ListSessions returns a page of the caller's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListInput) (*ListResult, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	sessions, total, err := s.sessions.List(ctx, ownerID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("session.ListSessions: %w", err)
	}
	return &ListResult{Sessions: sessions, Total: total}, nil
}

// GetSession returns one session.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return authz.Load(ctx, id, s.sessions.GetByID)
}

// DeleteSession removes a session.
func (s *Service) DeleteSession(ctx context.Context, id uuid.UUID) error {
	sess, err := authz.Load(ctx, id, s.sessions.GetByID)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("session.DeleteSession: %w", err)
	}
	return nil
}

// Now returns the service clock, used to render running totals.
func (s *Service) Now() time.Time { return s.now() }
