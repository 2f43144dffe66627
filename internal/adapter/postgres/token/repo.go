// Package token implements the RefreshToken repository using PostgreSQL.
package token

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

const table = "refresh_tokens"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores the hash of a new refresh token.
func (r *Repo) Create(ctx context.Context, studentID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	t := domain.RefreshToken{StudentID: studentID, TokenHash: tokenHash, ExpiresAt: expiresAt}

	b := postgres.Builder().
		Insert(table).
		Columns("student_id", "token_hash", "expires_at").
		Values(studentID, tokenHash, expiresAt).
		Suffix("RETURNING id, created_at")

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// GetByHash returns an active (not revoked, not expired) token by its hash.
// Inactive tokens return domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	b := postgres.Builder().
		Select("id", "student_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()")

	var t domain.RefreshToken
	err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).
		Scan(&t.ID, &t.StudentID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// RevokeByID revokes one active token. A token that is unknown or already
// revoked returns domain.ErrNotFound, so only one caller can revoke it.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "refresh_token", id)
	}
	return nil
}

// RevokeAllByStudent revokes every active token of a student.
func (r *Repo) RevokeAllByStudent(ctx context.Context, studentID uuid.UUID) error {
	b := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"student_id": studentID, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), b); err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return nil
}

// DeleteExpired removes expired or revoked tokens and returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	b := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
		})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
