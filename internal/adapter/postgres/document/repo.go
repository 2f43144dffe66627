// Package document implements persistence of extracted PDF documents.
package document

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const table = "documents"

var columns = []string{"id", "owner_id", "original_name", "size_bytes", "page_count", "text", "forwarded", "created_at"}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a document and fills in ID and CreatedAt.
func (r *Repo) Create(ctx context.Context, d *domain.Document) error {
	b := postgres.Builder().
		Insert(table).
		Columns("owner_id", "original_name", "size_bytes", "page_count", "text", "forwarded").
		Values(d.OwnerID, d.OriginalName, d.SizeBytes, d.PageCount, d.Text, d.Forwarded).
		Suffix(postgres.Returning("id", "created_at"))

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&d.ID, &d.CreatedAt); err != nil {
		return postgres.MapError(err, "document", uuid.Nil)
	}
	return nil
}

// GetByID returns a document including its text.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var d domain.Document
	err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).
		Scan(&d.ID, &d.OwnerID, &d.OriginalName, &d.SizeBytes, &d.PageCount, &d.Text, &d.Forwarded, &d.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return &d, nil
}

// ListByOwner returns document summaries of an owner, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.DocumentSummary, error) {
	b := postgres.Builder().
		Select("id", "owner_id", "original_name", "size_bytes", "page_count", "char_length(text)", "forwarded", "created_at").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "document", uuid.Nil)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DocumentSummary, error) {
		var s domain.DocumentSummary
		err := row.Scan(&s.ID, &s.OwnerID, &s.OriginalName, &s.SizeBytes, &s.PageCount, &s.TextLength, &s.Forwarded, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "document", uuid.Nil)
	}
	return docs, nil
}

// SetForwarded records whether the text reached the model service.
func (r *Repo) SetForwarded(ctx context.Context, id uuid.UUID, forwarded bool) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Update(table).Set("forwarded", forwarded).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "document", id)
	}
	return nil
}

// Delete removes a document. Decks and quizzes generated from it keep
// existing with a null document reference.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "document", id)
	}
	return nil
}
