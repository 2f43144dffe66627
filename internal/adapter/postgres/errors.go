package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeInvalidTextRepr      = "22P02"
	codeSerializationFailure = "40001"
)

// pgCodeErrors maps SQLSTATE codes to domain errors.
var pgCodeErrors = map[string]error{
	codeUniqueViolation:      domain.ErrAlreadyExists,
	codeForeignKeyViolation:  domain.ErrNotFound,
	codeCheckViolation:       domain.ErrValidation,
	codeNotNullViolation:     domain.ErrValidation,
	codeInvalidTextRepr:      domain.ErrValidation,
	codeSerializationFailure: domain.ErrConflict,
}

// MapError converts a pgx error on entity id into a domain error. Context
// errors are wrapped unchanged; unknown database errors keep the *pgconn.PgError.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s (%s): %w", entity, id, pgErr.ConstraintName, mapped)
			}
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// IsUniqueViolation reports whether err is a unique violation on constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
