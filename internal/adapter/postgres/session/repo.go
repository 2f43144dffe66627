// Package session implements the StudySession repository using PostgreSQL.
// Queries are plain SQL constants; the state machine lives in the domain type
// and the repo only persists its fields.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// OpenSessionConstraint guards the single open session per student.
const OpenSessionConstraint = "ux_study_sessions_open"

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, owner_id, title, status, total_study_seconds, total_break_seconds,
	segment_started_at, started_at, ended_at`

const createSQL = `
INSERT INTO study_sessions (owner_id, title, status, segment_started_at, started_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1`

const getOpenSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE owner_id = $1 AND status <> 'completed'`

const updateSQL = `
UPDATE study_sessions
SET status = $2, total_study_seconds = $3, total_break_seconds = $4,
    segment_started_at = $5, ended_at = $6
WHERE id = $1 AND status = $7 AND segment_started_at IS NOT DISTINCT FROM $8
RETURNING ` + sessionColumns

const countByOwnerSQL = `
SELECT count(*) FROM study_sessions WHERE owner_id = $1`

const listByOwnerSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE owner_id = $1
ORDER BY started_at DESC, id
LIMIT $2 OFFSET $3`

const deleteSQL = `
DELETE FROM study_sessions WHERE id = $1`

const countSessionsSQL = `
SELECT count(*), count(*) FILTER (WHERE status = 'completed')
FROM study_sessions
WHERE owner_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// GetOpen returns the active or on-break session of a student.
// Returns domain.ErrNotFound if none is open.
func (r *Repo) GetOpen(ctx context.Context, ownerID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getOpenSQL, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}
	return s, nil
}

// List returns a page of sessions, newest first, and the total count.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.StudySession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions by owner_id: %w", err)
	}

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions by owner_id: %w", err)
	}
	sessions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StudySession, error) {
		s, err := scanSession(row)
		if err != nil {
			return domain.StudySession{}, err
		}
		return *s, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions by owner_id: %w", err)
	}
	if sessions == nil {
		sessions = []domain.StudySession{}
	}
	return sessions, total, nil
}

// CountSessions returns the total and completed session counts of a student.
func (r *Repo) CountSessions(ctx context.Context, ownerID uuid.UUID) (total, completed int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countSessionsSQL, ownerID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("count sessions: %w", err)
	}
	return total, completed, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create starts a new active session at startedAt.
// A second open session for the same student yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, title string, startedAt time.Time) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	startedAt = startedAt.UTC().Truncate(time.Microsecond)
	s, err := scanSession(querier.QueryRow(ctx, createSQL,
		ownerID, title, string(domain.SessionStatusActive), startedAt))
	if err != nil {
		if postgres.IsUniqueViolation(err, OpenSessionConstraint) {
			return nil, fmt.Errorf("session: student %s already has an open session: %w", ownerID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}
	return s, nil
}

// Update persists the timer fields of s if the stored row is still in state
// from, and returns the stored row. A row that moved on yields
// domain.ErrConflict; a missing row yields domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, s *domain.StudySession, from domain.SessionState) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanSession(querier.QueryRow(ctx, updateSQL,
		s.ID,
		string(s.Status),
		s.TotalStudySeconds,
		s.TotalBreakSeconds,
		s.SegmentStartedAt,
		s.EndedAt,
		string(from.Status),
		from.SegmentStartedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, s.ID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("session %s: changed by another request: %w", s.ID, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return updated, nil
}

// Delete removes a session.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		s      domain.StudySession
		status string
	)
	if err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Title,
		&status,
		&s.TotalStudySeconds,
		&s.TotalBreakSeconds,
		&s.SegmentStartedAt,
		&s.StartedAt,
		&s.EndedAt,
	); err != nil {
		return nil, err
	}
	s.Status = domain.SessionStatus(status)
	return &s, nil
}
