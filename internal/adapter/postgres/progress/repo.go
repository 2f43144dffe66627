// Package progress stores daily progress snapshots in PostgreSQL.
package progress

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const table = "progress_snapshots"

var columns = []string{
	"id", "owner_id", "date", "percent", "tasks_percent", "sessions_percent", "quizzes_percent",
	"created_at", "updated_at",
}

// Repo provides snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert writes the snapshot for (OwnerID, Date), replacing an existing one.
// ID, CreatedAt and UpdatedAt are filled from the stored row.
func (r *Repo) Upsert(ctx context.Context, s *domain.ProgressSnapshot) error {
	b := postgres.Builder().
		Insert(table).
		Columns("owner_id", "date", "percent", "tasks_percent", "sessions_percent", "quizzes_percent").
		Values(s.OwnerID, dateOnly(s.Date), s.Percent, s.TasksPercent, s.SessionsPercent, s.QuizzesPercent).
		Suffix(`ON CONFLICT (owner_id, date) DO UPDATE SET
			percent = EXCLUDED.percent,
			tasks_percent = EXCLUDED.tasks_percent,
			sessions_percent = EXCLUDED.sessions_percent,
			quizzes_percent = EXCLUDED.quizzes_percent,
			updated_at = now()`).
		Suffix(postgres.Returning("id", "date", "created_at", "updated_at"))

	err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).
		Scan(&s.ID, &s.Date, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "progress_snapshot", s.OwnerID)
	}
	return nil
}

// History returns the snapshots of an owner dated on or after from, oldest first.
func (r *Repo) History(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]domain.ProgressSnapshot, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"date": dateOnly(from)}).
		OrderBy("date")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "progress_snapshot", ownerID)
	}
	snaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProgressSnapshot, error) {
		var s domain.ProgressSnapshot
		err := row.Scan(&s.ID, &s.OwnerID, &s.Date, &s.Percent,
			&s.TasksPercent, &s.SessionsPercent, &s.QuizzesPercent, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "progress_snapshot", ownerID)
	}
	if snaps == nil {
		snaps = []domain.ProgressSnapshot{}
	}
	return snaps, nil
}

// dateOnly keeps the calendar date of t as seen in its own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
