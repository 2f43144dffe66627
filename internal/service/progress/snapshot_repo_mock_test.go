package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ snapshotRepo = &snapshotRepoMock{}

type snapshotRepoMock struct {
	HistoryFunc func(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]domain.ProgressSnapshot, error)
	UpsertFunc  func(ctx context.Context, s *domain.ProgressSnapshot) error

	calls struct {
		History []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    time.Time
		}
		Upsert []struct {
			Ctx context.Context
			S   *domain.ProgressSnapshot
		}
	}
	lockHistory sync.RWMutex
	lockUpsert  sync.RWMutex
}

func (mock *snapshotRepoMock) History(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]domain.ProgressSnapshot, error) {
	if mock.HistoryFunc == nil {
		panic("snapshotRepoMock.HistoryFunc: method is nil but snapshotRepo.History was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    time.Time
	}{Ctx: ctx, OwnerID: ownerID, From: from}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, ownerID, from)
}

func (mock *snapshotRepoMock) HistoryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    time.Time
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *snapshotRepoMock) Upsert(ctx context.Context, s *domain.ProgressSnapshot) error {
	if mock.UpsertFunc == nil {
		panic("snapshotRepoMock.UpsertFunc: method is nil but snapshotRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.ProgressSnapshot
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *snapshotRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.ProgressSnapshot
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
