// Package student implements the Student repository using PostgreSQL.
package student

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const table = "students"

var columns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

// Repo provides student persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new student repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a student and fills in ID and timestamps.
// A taken email returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Student) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Insert(table).
		Columns("email", "password_hash", "first_name", "last_name").
		Values(s.Email, s.PasswordHash, s.FirstName, s.LastName).
		Suffix("RETURNING id, created_at, updated_at")

	if err := postgres.QueryRow(ctx, q, b).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return postgres.MapError(err, "student", uuid.Nil)
	}
	return nil
}

// GetByID returns a student by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	s, err := scan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "student", id)
	}
	return s, nil
}

// GetByEmail returns a student by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"email": email})

	s, err := scan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "student", uuid.Nil)
	}
	return s, nil
}

// UpdatePassword replaces the password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	b := postgres.Builder().
		Update(table).
		Set("password_hash", hash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return postgres.MapError(err, "student", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "student", id)
	}
	return nil
}

// ListIDs returns all student IDs in creation order, used by batch jobs.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	b := postgres.Builder().Select("id").From(table).OrderBy("created_at")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "student", uuid.Nil)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "student", uuid.Nil)
	}
	return ids, nil
}

func scan(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	if err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
