package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/session"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	StartSessionFunc  func(ctx context.Context, input session.StartInput) (*session.StartResult, error)
	PauseSessionFunc  func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	ResumeSessionFunc func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	FinishSessionFunc func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	ListSessionsFunc  func(ctx context.Context, input session.ListInput) (*session.ListResult, error)
	GetSessionFunc    func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	DeleteSessionFunc func(ctx context.Context, id uuid.UUID) error
	NowFunc           func() time.Time

	calls struct {
		StartSession []struct {
			Ctx   context.Context
			Input session.StartInput
		}
		PauseSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ResumeSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FinishSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListSessions []struct {
			Ctx   context.Context
			Input session.ListInput
		}
		GetSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Now []struct{}
	}
	lockStartSession  sync.RWMutex
	lockPauseSession  sync.RWMutex
	lockResumeSession sync.RWMutex
	lockFinishSession sync.RWMutex
	lockListSessions  sync.RWMutex
	lockGetSession    sync.RWMutex
	lockDeleteSession sync.RWMutex
	lockNow           sync.RWMutex
}

func (mock *sessionServiceMock) StartSession(ctx context.Context, input session.StartInput) (*session.StartResult, error) {
	if mock.StartSessionFunc == nil {
		panic("sessionServiceMock.StartSessionFunc: method is nil but sessionService.StartSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.StartInput
	}{Ctx: ctx, Input: input}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, input)
}

func (mock *sessionServiceMock) StartSessionCalls() []struct {
	Ctx   context.Context
	Input session.StartInput
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) PauseSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	if mock.PauseSessionFunc == nil {
		panic("sessionServiceMock.PauseSessionFunc: method is nil but sessionService.PauseSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPauseSession.Lock()
	mock.calls.PauseSession = append(mock.calls.PauseSession, callInfo)
	mock.lockPauseSession.Unlock()
	return mock.PauseSessionFunc(ctx, id)
}

func (mock *sessionServiceMock) PauseSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPauseSession.RLock()
	calls := mock.calls.PauseSession
	mock.lockPauseSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) ResumeSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	if mock.ResumeSessionFunc == nil {
		panic("sessionServiceMock.ResumeSessionFunc: method is nil but sessionService.ResumeSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockResumeSession.Lock()
	mock.calls.ResumeSession = append(mock.calls.ResumeSession, callInfo)
	mock.lockResumeSession.Unlock()
	return mock.ResumeSessionFunc(ctx, id)
}

func (mock *sessionServiceMock) ResumeSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockResumeSession.RLock()
	calls := mock.calls.ResumeSession
	mock.lockResumeSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) FinishSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	if mock.FinishSessionFunc == nil {
		panic("sessionServiceMock.FinishSessionFunc: method is nil but sessionService.FinishSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockFinishSession.Lock()
	mock.calls.FinishSession = append(mock.calls.FinishSession, callInfo)
	mock.lockFinishSession.Unlock()
	return mock.FinishSessionFunc(ctx, id)
}

func (mock *sessionServiceMock) FinishSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockFinishSession.RLock()
	calls := mock.calls.FinishSession
	mock.lockFinishSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) ListSessions(ctx context.Context, input session.ListInput) (*session.ListResult, error) {
	if mock.ListSessionsFunc == nil {
		panic("sessionServiceMock.ListSessionsFunc: method is nil but sessionService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *sessionServiceMock) ListSessionsCalls() []struct {
	Ctx   context.Context
	Input session.ListInput
} {
	mock.lockListSessions.RLock()
	calls := mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *sessionServiceMock) GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	if mock.GetSessionFunc == nil {
		panic("sessionServiceMock.GetSessionFunc: method is nil but sessionService.GetSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, id)
}

func (mock *sessionServiceMock) GetSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSessionFunc == nil {
		panic("sessionServiceMock.DeleteSessionFunc: method is nil but sessionService.DeleteSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteSession.Lock()
	mock.calls.DeleteSession = append(mock.calls.DeleteSession, callInfo)
	mock.lockDeleteSession.Unlock()
	return mock.DeleteSessionFunc(ctx, id)
}

func (mock *sessionServiceMock) DeleteSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteSession.RLock()
	calls := mock.calls.DeleteSession
	mock.lockDeleteSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Now() time.Time {
	if mock.NowFunc == nil {
		panic("sessionServiceMock.NowFunc: method is nil but sessionService.Now was just called")
	}
	callInfo := struct{}{}
	mock.lockNow.Lock()
	mock.calls.Now = append(mock.calls.Now, callInfo)
	mock.lockNow.Unlock()
	return mock.NowFunc()
}

func (mock *sessionServiceMock) NowCalls() []struct{} {
	mock.lockNow.RLock()
	calls := mock.calls.Now
	mock.lockNow.RUnlock()
	return calls
}
