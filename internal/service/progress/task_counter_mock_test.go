package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ taskCounter = &taskCounterMock{}

type taskCounterMock struct {
	CountTasksFunc func(ctx context.Context, ownerID uuid.UUID) (int, int, error)

	calls struct {
		CountTasks []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCountTasks sync.RWMutex
}

func (mock *taskCounterMock) CountTasks(ctx context.Context, ownerID uuid.UUID) (int, int, error) {
	if mock.CountTasksFunc == nil {
		panic("taskCounterMock.CountTasksFunc: method is nil but taskCounter.CountTasks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountTasks.Lock()
	mock.calls.CountTasks = append(mock.calls.CountTasks, callInfo)
	mock.lockCountTasks.Unlock()
	return mock.CountTasksFunc(ctx, ownerID)
}

func (mock *taskCounterMock) CountTasksCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountTasks.RLock()
	calls := mock.calls.CountTasks
	mock.lockCountTasks.RUnlock()
	return calls
}
