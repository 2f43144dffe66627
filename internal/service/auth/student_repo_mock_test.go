package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ studentRepo = &studentRepoMock{}

type studentRepoMock struct {
	CreateFunc         func(ctx context.Context, s *domain.Student) error
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Student, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, hash string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Student
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdatePassword []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Hash string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *studentRepoMock) Create(ctx context.Context, s *domain.Student) error {
	if mock.CreateFunc == nil {
		panic("studentRepoMock.CreateFunc: method is nil but studentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Student
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *studentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Student
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *studentRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	if mock.GetByEmailFunc == nil {
		panic("studentRepoMock.GetByEmailFunc: method is nil but studentRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *studentRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *studentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if mock.GetByIDFunc == nil {
		panic("studentRepoMock.GetByIDFunc: method is nil but studentRepo.GetByID was just called")
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

func (mock *studentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *studentRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("studentRepoMock.UpdatePasswordFunc: method is nil but studentRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Hash string
	}{Ctx: ctx, ID: id, Hash: hash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, hash)
}

func (mock *studentRepoMock) UpdatePasswordCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Hash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
