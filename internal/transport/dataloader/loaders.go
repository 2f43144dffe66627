package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

func newTasksBatchFn(repo taskRepo) dataloader.BatchFunc[uuid.UUID, []domain.Task] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Task] {
		tasks, err := repo.ListTasksByPlanIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Task](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Task, len(keys))
		for _, t := range tasks {
			grouped[t.StudyPlanID] = append(grouped[t.StudyPlanID], t)
		}

		return mapResults(keys, grouped, emptySlice[domain.Task])
	}
}

func newCardsBatchFn(repo cardRepo) dataloader.BatchFunc[uuid.UUID, []domain.Flashcard] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Flashcard] {
		cards, err := repo.ListCardsByDeckIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Flashcard](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Flashcard, len(keys))
		for _, c := range cards {
			grouped[c.DeckID] = append(grouped[c.DeckID], c)
		}

		return mapResults(keys, grouped, emptySlice[domain.Flashcard])
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
