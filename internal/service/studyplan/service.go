// Package studyplan manages study plans and their tasks. Plan counters and
// status change in the same transaction as the task that moved them.
package studyplan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type planRepo interface {
	CreatePlan(ctx context.Context, ownerID uuid.UUID, title string) (*domain.StudyPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error)
	LockPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error)
	ListPlans(ctx context.Context, ownerID uuid.UUID) ([]domain.StudyPlan, error)
	RenamePlan(ctx context.Context, id uuid.UUID, title string) (*domain.StudyPlan, error)
	UpdateCounters(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error

	CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	LockTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error)
	UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides study plan operations.
type Service struct {
	plans planRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new study plan service.
func NewService(log *slog.Logger, plans planRepo, tx txManager) *Service {
	return &Service{
		plans: plans,
		tx:    tx,
		log:   log.With("service", "studyplan"),
	}
}

// PlanDetails is a plan together with its tasks.
type PlanDetails struct {
	Plan  *domain.StudyPlan
	Tasks []domain.Task
}

// applyDelta moves the counters of a plan locked by the caller and stores
// the recomputed status. Must run inside the transaction holding the lock.
func (s *Service) applyDelta(ctx context.Context, plan *domain.StudyPlan, d domain.PlanCounterDelta) (*domain.StudyPlan, error) {
	plan.TasksCount = max(plan.TasksCount+d.Tasks, 0)
	plan.CompletedCount = min(max(plan.CompletedCount+d.Completed, 0), plan.TasksCount)
	plan.Status = domain.PlanStatusFor(plan.TasksCount, plan.CompletedCount)

	updated, err := s.plans.UpdateCounters(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("update counters: %w", err)
	}
	return updated, nil
}

func boolDelta(b bool) int {
	if b {
		return 1
	}
	return 0
}
