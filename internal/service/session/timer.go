package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// StartSession starts a study session or returns the caller's open one.
func (s *Service) StartSession(ctx context.Context, input StartInput) (*StartResult, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	open, err := s.sessions.GetOpen(ctx, ownerID)
	switch {
	case err == nil:
		return &StartResult{Session: open}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("session.StartSession get open: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultTitle
	}

	created, err := s.sessions.Create(ctx, ownerID, title, s.now())
	if err != nil {
		// A concurrent start won the open-session index.
		if errors.Is(err, domain.ErrAlreadyExists) {
			open, getErr := s.sessions.GetOpen(ctx, ownerID)
			if getErr != nil {
				return nil, fmt.Errorf("session.StartSession get open: %w", getErr)
			}
			return &StartResult{Session: open}, nil
		}
		return nil, fmt.Errorf("session.StartSession: %w", err)
	}

	s.log.InfoContext(ctx, "study session started",
		slog.String("student_id", ownerID.String()),
		slog.String("session_id", created.ID.String()),
	)
	return &StartResult{Session: created, Created: true}, nil
}

// PauseSession starts a break.
func (s *Service) PauseSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return s.transition(ctx, id, "pause", (*domain.StudySession).Pause)
}

// ResumeSession ends a break.
func (s *Service) ResumeSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return s.transition(ctx, id, "resume", (*domain.StudySession).Resume)
}

// FinishSession completes an open session.
func (s *Service) FinishSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	sess, err := s.transition(ctx, id, "finish", (*domain.StudySession).Finish)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "study session finished",
		slog.String("session_id", sess.ID.String()),
		slog.Int64("study_seconds", sess.TotalStudySeconds),
		slog.Int64("break_seconds", sess.TotalBreakSeconds),
	)
	return sess, nil
}

func (s *Service) transition(
	ctx context.Context,
	id uuid.UUID,
	op string,
	apply func(*domain.StudySession, time.Time) error,
) (*domain.StudySession, error) {
	sess, err := authz.Load(ctx, id, s.sessions.GetByID)
	if err != nil {
		return nil, err
	}

	from := sess.State()
	if err := apply(sess, s.now()); err != nil {
		return nil, fmt.Errorf("session %s: cannot %s a %s session: %w", id, op, sess.Status, err)
	}

	// The write only lands if the stored row is still in the state read
	// above; a concurrent transition makes it fail with ErrConflict.
	updated, err := s.sessions.Update(ctx, sess, from)
	if err != nil {
		return nil, fmt.Errorf("session.%s: %w", op, err)
	}
	return updated, nil
}
