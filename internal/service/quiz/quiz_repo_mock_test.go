package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc       func(ctx context.Context, q *domain.Quiz) error
	CreateResultFunc func(ctx context.Context, res *domain.QuizResult) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	HasResultFunc    func(ctx context.Context, quizID uuid.UUID, ownerID uuid.UUID) (bool, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]domain.Quiz, error)
	ListResultsFunc  func(ctx context.Context, ownerID uuid.UUID, quizID *uuid.UUID) ([]domain.QuizResult, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   *domain.Quiz
		}
		CreateResult []struct {
			Ctx context.Context
			Res *domain.QuizResult
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		HasResult []struct {
			Ctx     context.Context
			QuizID  uuid.UUID
			OwnerID uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListResults []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			QuizID  *uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockCreateResult sync.RWMutex
	lockDelete       sync.RWMutex
	lockGet          sync.RWMutex
	lockHasResult    sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockListResults  sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, q *domain.Quiz) error {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.Quiz
	}{Ctx: ctx, Q: q}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *quizRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   *domain.Quiz
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quizRepoMock) CreateResult(ctx context.Context, res *domain.QuizResult) error {
	if mock.CreateResultFunc == nil {
		panic("quizRepoMock.CreateResultFunc: method is nil but quizRepo.CreateResult was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Res *domain.QuizResult
	}{Ctx: ctx, Res: res}
	mock.lockCreateResult.Lock()
	mock.calls.CreateResult = append(mock.calls.CreateResult, callInfo)
	mock.lockCreateResult.Unlock()
	return mock.CreateResultFunc(ctx, res)
}

func (mock *quizRepoMock) CreateResultCalls() []struct {
	Ctx context.Context
	Res *domain.QuizResult
} {
	mock.lockCreateResult.RLock()
	calls := mock.calls.CreateResult
	mock.lockCreateResult.RUnlock()
	return calls
}

func (mock *quizRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("quizRepoMock.DeleteFunc: method is nil but quizRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *quizRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *quizRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	if mock.GetFunc == nil {
		panic("quizRepoMock.GetFunc: method is nil but quizRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *quizRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *quizRepoMock) HasResult(ctx context.Context, quizID uuid.UUID, ownerID uuid.UUID) (bool, error) {
	if mock.HasResultFunc == nil {
		panic("quizRepoMock.HasResultFunc: method is nil but quizRepo.HasResult was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		QuizID  uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, QuizID: quizID, OwnerID: ownerID}
	mock.lockHasResult.Lock()
	mock.calls.HasResult = append(mock.calls.HasResult, callInfo)
	mock.lockHasResult.Unlock()
	return mock.HasResultFunc(ctx, quizID, ownerID)
}

func (mock *quizRepoMock) HasResultCalls() []struct {
	Ctx     context.Context
	QuizID  uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockHasResult.RLock()
	calls := mock.calls.HasResult
	mock.lockHasResult.RUnlock()
	return calls
}

func (mock *quizRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quiz, error) {
	if mock.ListByOwnerFunc == nil {
		panic("quizRepoMock.ListByOwnerFunc: method is nil but quizRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *quizRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *quizRepoMock) ListResults(ctx context.Context, ownerID uuid.UUID, quizID *uuid.UUID) ([]domain.QuizResult, error) {
	if mock.ListResultsFunc == nil {
		panic("quizRepoMock.ListResultsFunc: method is nil but quizRepo.ListResults was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		QuizID  *uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, QuizID: quizID}
	mock.lockListResults.Lock()
	mock.calls.ListResults = append(mock.calls.ListResults, callInfo)
	mock.lockListResults.Unlock()
	return mock.ListResultsFunc(ctx, ownerID, quizID)
}

func (mock *quizRepoMock) ListResultsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	QuizID  *uuid.UUID
} {
	mock.lockListResults.RLock()
	calls := mock.calls.ListResults
	mock.lockListResults.RUnlock()
	return calls
}
