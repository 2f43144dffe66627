package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/studyplan"
)

var _ studyPlanService = &studyPlanServiceMock{}

type studyPlanServiceMock struct {
	CreatePlanFunc func(ctx context.Context, input studyplan.PlanInput) (*domain.StudyPlan, error)
	ListPlansFunc  func(ctx context.Context) ([]domain.StudyPlan, error)
	GetPlanFunc    func(ctx context.Context, planID uuid.UUID) (*studyplan.PlanDetails, error)
	RenamePlanFunc func(ctx context.Context, planID uuid.UUID, input studyplan.PlanInput) (*domain.StudyPlan, error)
	DeletePlanFunc func(ctx context.Context, planID uuid.UUID) error
	AddTaskFunc    func(ctx context.Context, planID uuid.UUID, input studyplan.AddTaskInput) (*studyplan.TaskResult, error)
	ListTasksFunc  func(ctx context.Context, planID uuid.UUID) ([]domain.Task, error)
	UpdateTaskFunc func(ctx context.Context, planID uuid.UUID, taskID uuid.UUID, input studyplan.UpdateTaskInput) (*studyplan.TaskResult, error)
	DeleteTaskFunc func(ctx context.Context, planID uuid.UUID, taskID uuid.UUID) (*domain.StudyPlan, error)

	calls struct {
		CreatePlan []struct {
			Ctx   context.Context
			Input studyplan.PlanInput
		}
		ListPlans []struct{ Ctx context.Context }
		GetPlan []struct {
			Ctx    context.Context
			PlanID uuid.UUID
		}
		RenamePlan []struct {
			Ctx    context.Context
			PlanID uuid.UUID
			Input  studyplan.PlanInput
		}
		DeletePlan []struct {
			Ctx    context.Context
			PlanID uuid.UUID
		}
		AddTask []struct {
			Ctx    context.Context
			PlanID uuid.UUID
			Input  studyplan.AddTaskInput
		}
		ListTasks []struct {
			Ctx    context.Context
			PlanID uuid.UUID
		}
		UpdateTask []struct {
			Ctx    context.Context
			PlanID uuid.UUID
			TaskID uuid.UUID
			Input  studyplan.UpdateTaskInput
		}
		DeleteTask []struct {
			Ctx    context.Context
			PlanID uuid.UUID
			TaskID uuid.UUID
		}
	}
	lockCreatePlan sync.RWMutex
	lockListPlans  sync.RWMutex
	lockGetPlan    sync.RWMutex
	lockRenamePlan sync.RWMutex
	lockDeletePlan sync.RWMutex
	lockAddTask    sync.RWMutex
	lockListTasks  sync.RWMutex
	lockUpdateTask sync.RWMutex
	lockDeleteTask sync.RWMutex
}

func (mock *studyPlanServiceMock) CreatePlan(ctx context.Context, input studyplan.PlanInput) (*domain.StudyPlan, error) {
	if mock.CreatePlanFunc == nil {
		panic("studyPlanServiceMock.CreatePlanFunc: method is nil but studyPlanService.CreatePlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studyplan.PlanInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePlan.Lock()
	mock.calls.CreatePlan = append(mock.calls.CreatePlan, callInfo)
	mock.lockCreatePlan.Unlock()
	return mock.CreatePlanFunc(ctx, input)
}

func (mock *studyPlanServiceMock) CreatePlanCalls() []struct {
	Ctx   context.Context
	Input studyplan.PlanInput
} {
	mock.lockCreatePlan.RLock()
	calls := mock.calls.CreatePlan
	mock.lockCreatePlan.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) ListPlans(ctx context.Context) ([]domain.StudyPlan, error) {
	if mock.ListPlansFunc == nil {
		panic("studyPlanServiceMock.ListPlansFunc: method is nil but studyPlanService.ListPlans was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListPlans.Lock()
	mock.calls.ListPlans = append(mock.calls.ListPlans, callInfo)
	mock.lockListPlans.Unlock()
	return mock.ListPlansFunc(ctx)
}

func (mock *studyPlanServiceMock) ListPlansCalls() []struct{ Ctx context.Context } {
	mock.lockListPlans.RLock()
	calls := mock.calls.ListPlans
	mock.lockListPlans.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) GetPlan(ctx context.Context, planID uuid.UUID) (*studyplan.PlanDetails, error) {
	if mock.GetPlanFunc == nil {
		panic("studyPlanServiceMock.GetPlanFunc: method is nil but studyPlanService.GetPlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
	}{Ctx: ctx, PlanID: planID}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, planID)
}

func (mock *studyPlanServiceMock) GetPlanCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) RenamePlan(ctx context.Context, planID uuid.UUID, input studyplan.PlanInput) (*domain.StudyPlan, error) {
	if mock.RenamePlanFunc == nil {
		panic("studyPlanServiceMock.RenamePlanFunc: method is nil but studyPlanService.RenamePlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
		Input  studyplan.PlanInput
	}{Ctx: ctx, PlanID: planID, Input: input}
	mock.lockRenamePlan.Lock()
	mock.calls.RenamePlan = append(mock.calls.RenamePlan, callInfo)
	mock.lockRenamePlan.Unlock()
	return mock.RenamePlanFunc(ctx, planID, input)
}

func (mock *studyPlanServiceMock) RenamePlanCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
	Input  studyplan.PlanInput
} {
	mock.lockRenamePlan.RLock()
	calls := mock.calls.RenamePlan
	mock.lockRenamePlan.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	if mock.DeletePlanFunc == nil {
		panic("studyPlanServiceMock.DeletePlanFunc: method is nil but studyPlanService.DeletePlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
	}{Ctx: ctx, PlanID: planID}
	mock.lockDeletePlan.Lock()
	mock.calls.DeletePlan = append(mock.calls.DeletePlan, callInfo)
	mock.lockDeletePlan.Unlock()
	return mock.DeletePlanFunc(ctx, planID)
}

func (mock *studyPlanServiceMock) DeletePlanCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
} {
	mock.lockDeletePlan.RLock()
	calls := mock.calls.DeletePlan
	mock.lockDeletePlan.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) AddTask(ctx context.Context, planID uuid.UUID, input studyplan.AddTaskInput) (*studyplan.TaskResult, error) {
	if mock.AddTaskFunc == nil {
		panic("studyPlanServiceMock.AddTaskFunc: method is nil but studyPlanService.AddTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
		Input  studyplan.AddTaskInput
	}{Ctx: ctx, PlanID: planID, Input: input}
	mock.lockAddTask.Lock()
	mock.calls.AddTask = append(mock.calls.AddTask, callInfo)
	mock.lockAddTask.Unlock()
	return mock.AddTaskFunc(ctx, planID, input)
}

func (mock *studyPlanServiceMock) AddTaskCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
	Input  studyplan.AddTaskInput
} {
	mock.lockAddTask.RLock()
	calls := mock.calls.AddTask
	mock.lockAddTask.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error) {
	if mock.ListTasksFunc == nil {
		panic("studyPlanServiceMock.ListTasksFunc: method is nil but studyPlanService.ListTasks was just called")
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

func (mock *studyPlanServiceMock) ListTasksCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
} {
	mock.lockListTasks.RLock()
	calls := mock.calls.ListTasks
	mock.lockListTasks.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) UpdateTask(ctx context.Context, planID uuid.UUID, taskID uuid.UUID, input studyplan.UpdateTaskInput) (*studyplan.TaskResult, error) {
	if mock.UpdateTaskFunc == nil {
		panic("studyPlanServiceMock.UpdateTaskFunc: method is nil but studyPlanService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
		TaskID uuid.UUID
		Input  studyplan.UpdateTaskInput
	}{Ctx: ctx, PlanID: planID, TaskID: taskID, Input: input}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, planID, taskID, input)
}

func (mock *studyPlanServiceMock) UpdateTaskCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
	TaskID uuid.UUID
	Input  studyplan.UpdateTaskInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) DeleteTask(ctx context.Context, planID uuid.UUID, taskID uuid.UUID) (*domain.StudyPlan, error) {
	if mock.DeleteTaskFunc == nil {
		panic("studyPlanServiceMock.DeleteTaskFunc: method is nil but studyPlanService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
		TaskID uuid.UUID
	}{Ctx: ctx, PlanID: planID, TaskID: taskID}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, planID, taskID)
}

func (mock *studyPlanServiceMock) DeleteTaskCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}
