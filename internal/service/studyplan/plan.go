package studyplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// CreatePlan creates an empty plan for the caller.
func (s *Service) CreatePlan(ctx context.Context, input PlanInput) (*domain.StudyPlan, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.plans.CreatePlan(ctx, ownerID, strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("studyplan.CreatePlan: %w", err)
	}

	s.log.InfoContext(ctx, "study plan created",
		slog.String("student_id", ownerID.String()),
		slog.String("plan_id", plan.ID.String()),
	)
	return plan, nil
}

// ListPlans returns the caller's plans, newest first.
func (s *Service) ListPlans(ctx context.Context) ([]domain.StudyPlan, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.plans.ListPlans(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("studyplan.ListPlans: %w", err)
	}
	return plans, nil
}

// GetPlan returns a plan with its tasks.
func (s *Service) GetPlan(ctx context.Context, planID uuid.UUID) (*PlanDetails, error) {
	plan, err := authz.Load(ctx, planID, s.plans.GetPlan)
	if err != nil {
		return nil, err
	}

	tasks, err := s.plans.ListTasks(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("studyplan.GetPlan list tasks: %w", err)
	}
	return &PlanDetails{Plan: plan, Tasks: tasks}, nil
}

// RenamePlan changes the title of a plan.
func (s *Service) RenamePlan(ctx context.Context, planID uuid.UUID, input PlanInput) (*domain.StudyPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := authz.Load(ctx, planID, s.plans.GetPlan); err != nil {
		return nil, err
	}

	plan, err := s.plans.RenamePlan(ctx, planID, strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("studyplan.RenamePlan: %w", err)
	}
	return plan, nil
}

// DeletePlan removes a plan and its tasks.
func (s *Service) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	plan, err := authz.Load(ctx, planID, s.plans.GetPlan)
	if err != nil {
		return err
	}

	if err := s.plans.DeletePlan(ctx, plan.ID); err != nil {
		return fmt.Errorf("studyplan.DeletePlan: %w", err)
	}

	s.log.InfoContext(ctx, "study plan deleted",
		slog.String("plan_id", plan.ID.String()),
		slog.Int("tasks", plan.TasksCount),
	)
	return nil
}
