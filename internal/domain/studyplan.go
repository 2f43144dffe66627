package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format of task deadlines.
const DateLayout = "2006-01-02"

// StudyPlan is a user-created container of prioritized tasks.
type StudyPlan struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	TasksCount     int
	CompletedCount int
	Status         PlanStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *StudyPlan) Owner() uuid.UUID { return p.OwnerID }

// PlanStatusFor derives a plan status from its task counters.
func PlanStatusFor(tasksCount, completedCount int) PlanStatus {
	switch {
	case tasksCount > 0 && completedCount >= tasksCount:
		return PlanStatusCompleted
	case completedCount > 0:
		return PlanStatusInProgress
	default:
		return PlanStatusNotStarted
	}
}

// Task is a single item of a study plan.
type Task struct {
	ID          uuid.UUID
	StudyPlanID uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Priority    TaskPriority
	Deadline    time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) Owner() uuid.UUID { return t.OwnerID }

// StatusAt derives the task status; today is a date at midnight in the user's zone.
func (t *Task) StatusAt(today time.Time) TaskStatus {
	if t.Completed {
		return TaskStatusCompleted
	}
	deadline := time.Date(t.Deadline.Year(), t.Deadline.Month(), t.Deadline.Day(), 0, 0, 0, 0, today.Location())
	if deadline.Before(today) {
		return TaskStatusOverdue
	}
	return TaskStatusPending
}

// TaskUpdateParams holds optional task changes. nil means unchanged.
type TaskUpdateParams struct {
	Title     *string
	Priority  *TaskPriority
	Deadline  *time.Time
	Completed *bool
}

// PlanCounterDelta is applied to a plan's denormalized counters while the plan row is locked.
type PlanCounterDelta struct {
	Tasks     int
	Completed int
}
