package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ sessionCounter = &sessionCounterMock{}

type sessionCounterMock struct {
	CountSessionsFunc func(ctx context.Context, ownerID uuid.UUID) (int, int, error)

	calls struct {
		CountSessions []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCountSessions sync.RWMutex
}

func (mock *sessionCounterMock) CountSessions(ctx context.Context, ownerID uuid.UUID) (int, int, error) {
	if mock.CountSessionsFunc == nil {
		panic("sessionCounterMock.CountSessionsFunc: method is nil but sessionCounter.CountSessions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountSessions.Lock()
	mock.calls.CountSessions = append(mock.calls.CountSessions, callInfo)
	mock.lockCountSessions.Unlock()
	return mock.CountSessionsFunc(ctx, ownerID)
}

func (mock *sessionCounterMock) CountSessionsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountSessions.RLock()
	calls := mock.calls.CountSessions
	mock.lockCountSessions.RUnlock()
	return calls
}
