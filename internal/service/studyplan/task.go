package studyplan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// TaskResult is a changed task and its plan after the counters moved.
type TaskResult struct {
	Task *domain.Task
	Plan *domain.StudyPlan
}

// AddTask inserts a task and increments the plan counters in one transaction.
func (s *Service) AddTask(ctx context.Context, planID uuid.UUID, input AddTaskInput) (*TaskResult, error) {
	priority, deadline, err := input.parse()
	if err != nil {
		return nil, err
	}
	plan, err := authz.Load(ctx, planID, s.plans.GetPlan)
	if err != nil {
		return nil, err
	}

	var result TaskResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.plans.LockPlan(txCtx, plan.ID)
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}
		task, err := s.plans.CreateTask(txCtx, &domain.Task{
			StudyPlanID: locked.ID,
			OwnerID:     locked.OwnerID,
			Title:       strings.TrimSpace(input.Title),
			Priority:    priority,
			Deadline:    deadline,
		})
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		updated, err := s.applyDelta(txCtx, locked, domain.PlanCounterDelta{Tasks: 1})
		if err != nil {
			return err
		}
		result = TaskResult{Task: task, Plan: updated}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("studyplan.AddTask: %w", err)
	}
	return &result, nil
}

// ListTasks returns the tasks of a plan ordered by deadline.
func (s *Service) ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error) {
	plan, err := authz.Load(ctx, planID, s.plans.GetPlan)
	if err != nil {
		return nil, err
	}

	tasks, err := s.plans.ListTasks(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("studyplan.ListTasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the given changes. A change of the completed flag moves
// the plan's completed counter in the same transaction. The delta is taken
// from the locked task row, so concurrent updates of one task count once.
func (s *Service) UpdateTask(ctx context.Context, planID, taskID uuid.UUID, input UpdateTaskInput) (*TaskResult, error) {
	params, err := input.parse()
	if err != nil {
		return nil, err
	}
	if _, err := s.loadTask(ctx, planID, taskID); err != nil {
		return nil, err
	}

	var result TaskResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan, task, err := s.lockTask(txCtx, planID, taskID)
		if err != nil {
			return err
		}

		wasCompleted := task.Completed
		if params.Title != nil {
			task.Title = *params.Title
		}
		if params.Priority != nil {
			task.Priority = *params.Priority
		}
		if params.Deadline != nil {
			task.Deadline = *params.Deadline
		}
		if params.Completed != nil {
			task.Completed = *params.Completed
		}

		updated, err := s.plans.UpdateTask(txCtx, task)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		result = TaskResult{Task: updated, Plan: plan}

		if updated.Completed == wasCompleted {
			return nil
		}
		result.Plan, err = s.applyDelta(txCtx, plan, domain.PlanCounterDelta{
			Completed: boolDelta(updated.Completed) - boolDelta(wasCompleted),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("studyplan.UpdateTask: %w", err)
	}
	return &result, nil
}

// DeleteTask removes a task and decrements the plan counters in one transaction.
func (s *Service) DeleteTask(ctx context.Context, planID, taskID uuid.UUID) (*domain.StudyPlan, error) {
	if _, err := s.loadTask(ctx, planID, taskID); err != nil {
		return nil, err
	}

	var plan *domain.StudyPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, task, err := s.lockTask(txCtx, planID, taskID)
		if err != nil {
			return err
		}
		if err := s.plans.DeleteTask(txCtx, task.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		plan, err = s.applyDelta(txCtx, locked, domain.PlanCounterDelta{
			Tasks:     -1,
			Completed: -boolDelta(task.Completed),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("studyplan.DeleteTask: %w", err)
	}
	return plan, nil
}

// loadTask returns a caller-owned task that belongs to planID.
func (s *Service) loadTask(ctx context.Context, planID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := authz.Load(ctx, taskID, s.plans.GetTask)
	if err != nil {
		return nil, err
	}
	if task.StudyPlanID != planID {
		return nil, fmt.Errorf("task %s in plan %s: %w", taskID, planID, domain.ErrNotFound)
	}
	return task, nil
}

// lockTask locks the plan and then the task, in that order, and returns the
// current rows. Must run inside a transaction.
func (s *Service) lockTask(ctx context.Context, planID, taskID uuid.UUID) (*domain.StudyPlan, *domain.Task, error) {
	plan, err := s.plans.LockPlan(ctx, planID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock plan: %w", err)
	}
	task, err := s.plans.LockTask(ctx, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock task: %w", err)
	}
	if task.StudyPlanID != planID {
		return nil, nil, fmt.Errorf("task %s in plan %s: %w", taskID, planID, domain.ErrNotFound)
	}
	return plan, task, nil
}
