// Package authz holds the single ownership check every service applies
// before reading or changing a student's resource.
package authz

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/pkg/ctxutil"
)

// Owned is implemented by every resource that belongs to a student.
type Owned interface {
	Owner() uuid.UUID
}

// Caller returns the authenticated student ID or ErrUnauthorized.
func Caller(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// Check verifies that the caller owns res.
func Check(ctx context.Context, res Owned) error {
	caller, err := Caller(ctx)
	if err != nil {
		return err
	}
	if res.Owner() != caller {
		return domain.ErrForbidden
	}
	return nil
}

// Load fetches a resource with get and checks ownership in one step.
// Errors from get are returned unchanged.
func Load[T Owned](ctx context.Context, id uuid.UUID, get func(context.Context, uuid.UUID) (T, error)) (T, error) {
	var zero T
	if _, err := Caller(ctx); err != nil {
		return zero, err
	}
	res, err := get(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := Check(ctx, res); err != nil {
		return zero, err
	}
	return res, nil
}
