package flashcard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Document, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
