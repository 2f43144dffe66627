package studyplan

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	CreatePlanFunc     func(ctx context.Context, ownerID uuid.UUID, title string) (*domain.StudyPlan, error)
	CreateTaskFunc     func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	DeletePlanFunc     func(ctx context.Context, id uuid.UUID) error
	DeleteTaskFunc     func(ctx context.Context, id uuid.UUID) error
	GetPlanFunc        func(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error)
	GetTaskFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListPlansFunc      func(ctx context.Context, ownerID uuid.UUID) ([]domain.StudyPlan, error)
	ListTasksFunc      func(ctx context.Context, planID uuid.UUID) ([]domain.Task, error)
	LockPlanFunc       func(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error)
	LockTaskFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	RenamePlanFunc     func(ctx context.Context, id uuid.UUID, title string) (*domain.StudyPlan, error)
	UpdateCountersFunc func(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error)
	UpdateTaskFunc     func(ctx context.Context, t *domain.Task) (*domain.Task, error)

	calls struct {
		CreatePlan []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Title   string
		}
		CreateTask []struct {
			Ctx context.Context
			T   *domain.Task
		}
		DeletePlan []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetPlan []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPlans []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListTasks []struct {
			Ctx    context.Context
			PlanID uuid.UUID
		}
		LockPlan []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RenamePlan []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Title string
		}
		UpdateCounters []struct {
			Ctx context.Context
			P   *domain.StudyPlan
		}
		UpdateTask []struct {
			Ctx context.Context
			T   *domain.Task
		}
	}
	lockCreatePlan     sync.RWMutex
	lockCreateTask     sync.RWMutex
	lockDeletePlan     sync.RWMutex
	lockDeleteTask     sync.RWMutex
	lockGetPlan        sync.RWMutex
	lockGetTask        sync.RWMutex
	lockListPlans      sync.RWMutex
	lockListTasks      sync.RWMutex
	lockLockPlan       sync.RWMutex
	lockLockTask       sync.RWMutex
	lockRenamePlan     sync.RWMutex
	lockUpdateCounters sync.RWMutex
	lockUpdateTask     sync.RWMutex
}

func (mock *planRepoMock) CreatePlan(ctx context.Context, ownerID uuid.UUID, title string) (*domain.StudyPlan, error) {
	if mock.CreatePlanFunc == nil {
		panic("planRepoMock.CreatePlanFunc: method is nil but planRepo.CreatePlan was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Title   string
	}{Ctx: ctx, OwnerID: ownerID, Title: title}
	mock.lockCreatePlan.Lock()
	mock.calls.CreatePlan = append(mock.calls.CreatePlan, callInfo)
	mock.lockCreatePlan.Unlock()
	return mock.CreatePlanFunc(ctx, ownerID, title)
}

func (mock *planRepoMock) CreatePlanCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Title   string
} {
	mock.lockCreatePlan.RLock()
	calls := mock.calls.CreatePlan
	mock.lockCreatePlan.RUnlock()
	return calls
}

func (mock *planRepoMock) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("planRepoMock.CreateTaskFunc: method is nil but planRepo.CreateTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{Ctx: ctx, T: t}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, t)
}

func (mock *planRepoMock) CreateTaskCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *planRepoMock) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePlanFunc == nil {
		panic("planRepoMock.DeletePlanFunc: method is nil but planRepo.DeletePlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeletePlan.Lock()
	mock.calls.DeletePlan = append(mock.calls.DeletePlan, callInfo)
	mock.lockDeletePlan.Unlock()
	return mock.DeletePlanFunc(ctx, id)
}

func (mock *planRepoMock) DeletePlanCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeletePlan.RLock()
	calls := mock.calls.DeletePlan
	mock.lockDeletePlan.RUnlock()
	return calls
}

func (mock *planRepoMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("planRepoMock.DeleteTaskFunc: method is nil but planRepo.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, id)
}

func (mock *planRepoMock) DeleteTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

func (mock *planRepoMock) GetPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error) {
	if mock.GetPlanFunc == nil {
		panic("planRepoMock.GetPlanFunc: method is nil but planRepo.GetPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, id)
}

func (mock *planRepoMock) GetPlanCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *planRepoMock) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetTaskFunc == nil {
		panic("planRepoMock.GetTaskFunc: method is nil but planRepo.GetTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetTask.Lock()
	mock.calls.GetTask = append(mock.calls.GetTask, callInfo)
	mock.lockGetTask.Unlock()
	return mock.GetTaskFunc(ctx, id)
}

func (mock *planRepoMock) GetTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTask.RLock()
	calls := mock.calls.GetTask
	mock.lockGetTask.RUnlock()
	return calls
}

func (mock *planRepoMock) ListPlans(ctx context.Context, ownerID uuid.UUID) ([]domain.StudyPlan, error) {
	if mock.ListPlansFunc == nil {
		panic("planRepoMock.ListPlansFunc: method is nil but planRepo.ListPlans was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListPlans.Lock()
	mock.calls.ListPlans = append(mock.calls.ListPlans, callInfo)
	mock.lockListPlans.Unlock()
	return mock.ListPlansFunc(ctx, ownerID)
}

func (mock *planRepoMock) ListPlansCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListPlans.RLock()
	calls := mock.calls.ListPlans
	mock.lockListPlans.RUnlock()
	return calls
}

func (mock *planRepoMock) ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error) {
	if mock.ListTasksFunc == nil {
		panic("planRepoMock.ListTasksFunc: method is nil but planRepo.ListTasks was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
	}{Ctx: ctx, PlanID: planID}
	mock.lockListTasks.Lock()
	mock.calls.ListTasks = append(mock.calls.ListTasks, callInfo)
	mock.lockListTasks.Unlock()
	return mock.ListTasksFunc(ctx, planID)
}

func (mock *planRepoMock) ListTasksCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
} {
	mock.lockListTasks.RLock()
	calls := mock.calls.ListTasks
	mock.lockListTasks.RUnlock()
	return calls
}

func (mock *planRepoMock) LockPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error) {
	if mock.LockPlanFunc == nil {
		panic("planRepoMock.LockPlanFunc: method is nil but planRepo.LockPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockPlan.Lock()
	mock.calls.LockPlan = append(mock.calls.LockPlan, callInfo)
	mock.lockLockPlan.Unlock()
	return mock.LockPlanFunc(ctx, id)
}

func (mock *planRepoMock) LockPlanCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockPlan.RLock()
	calls := mock.calls.LockPlan
	mock.lockLockPlan.RUnlock()
	return calls
}

func (mock *planRepoMock) LockTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.LockTaskFunc == nil {
		panic("planRepoMock.LockTaskFunc: method is nil but planRepo.LockTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockTask.Lock()
	mock.calls.LockTask = append(mock.calls.LockTask, callInfo)
	mock.lockLockTask.Unlock()
	return mock.LockTaskFunc(ctx, id)
}

func (mock *planRepoMock) LockTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockTask.RLock()
	calls := mock.calls.LockTask
	mock.lockLockTask.RUnlock()
	return calls
}

func (mock *planRepoMock) RenamePlan(ctx context.Context, id uuid.UUID, title string) (*domain.StudyPlan, error) {
	if mock.RenamePlanFunc == nil {
		panic("planRepoMock.RenamePlanFunc: method is nil but planRepo.RenamePlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Title string
	}{Ctx: ctx, ID: id, Title: title}
	mock.lockRenamePlan.Lock()
	mock.calls.RenamePlan = append(mock.calls.RenamePlan, callInfo)
	mock.lockRenamePlan.Unlock()
	return mock.RenamePlanFunc(ctx, id, title)
}

func (mock *planRepoMock) RenamePlanCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Title string
} {
	mock.lockRenamePlan.RLock()
	calls := mock.calls.RenamePlan
	mock.lockRenamePlan.RUnlock()
	return calls
}

func (mock *planRepoMock) UpdateCounters(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error) {
	if mock.UpdateCountersFunc == nil {
		panic("planRepoMock.UpdateCountersFunc: method is nil but planRepo.UpdateCounters was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.StudyPlan
	}{Ctx: ctx, P: p}
	mock.lockUpdateCounters.Lock()
	mock.calls.UpdateCounters = append(mock.calls.UpdateCounters, callInfo)
	mock.lockUpdateCounters.Unlock()
	return mock.UpdateCountersFunc(ctx, p)
}

func (mock *planRepoMock) UpdateCountersCalls() []struct {
	Ctx context.Context
	P   *domain.StudyPlan
} {
	mock.lockUpdateCounters.RLock()
	calls := mock.calls.UpdateCounters
	mock.lockUpdateCounters.RUnlock()
	return calls
}

func (mock *planRepoMock) UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("planRepoMock.UpdateTaskFunc: method is nil but planRepo.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{Ctx: ctx, T: t}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, t)
}

func (mock *planRepoMock) UpdateTaskCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}
