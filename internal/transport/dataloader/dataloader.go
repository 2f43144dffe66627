// Package dataloader provides per-request DataLoaders that batch the child
// rows of ?include= listings into single SQL calls. Loaders call repositories
// directly; handlers only pass keys of parents the service already returned
// to the caller, so ownership is checked before loading.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type taskRepo interface {
	ListTasksByPlanIDs(ctx context.Context, planIDs []uuid.UUID) ([]domain.Task, error)
}

type cardRepo interface {
	ListCardsByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) ([]domain.Flashcard, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Task taskRepo
	Card cardRepo
}

// Loaders is created per request via NewLoaders.
type Loaders struct {
	TasksByPlanID *dataloader.Loader[uuid.UUID, []domain.Task]
	CardsByDeckID *dataloader.Loader[uuid.UUID, []domain.Flashcard]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TasksByPlanID: newLoader(newTasksBatchFn(repos.Task)),
		CardsByDeckID: newLoader(newCardsBatchFn(repos.Card)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// LoadGrouped loads the children of every key and returns them grouped by key.
// The first error wins.
func LoadGrouped[V any](ctx context.Context, l *dataloader.Loader[uuid.UUID, []V], keys []uuid.UUID) (map[uuid.UUID][]V, error) {
	if len(keys) == 0 {
		return map[uuid.UUID][]V{}, nil
	}
	values, errs := l.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID][]V, len(keys))
	for i, key := range keys {
		out[key] = values[i]
	}
	return out, nil
}
