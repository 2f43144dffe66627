package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ quizStats = &quizStatsMock{}

type quizStatsMock struct {
	StatsFunc func(ctx context.Context, ownerID uuid.UUID) (int, float64, error)

	calls struct {
		Stats []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockStats sync.RWMutex
}

func (mock *quizStatsMock) Stats(ctx context.Context, ownerID uuid.UUID) (int, float64, error) {
	if mock.StatsFunc == nil {
		panic("quizStatsMock.StatsFunc: method is nil but quizStats.Stats was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, ownerID)
}

func (mock *quizStatsMock) StatsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
