// Package studyplan implements StudyPlan and Task persistence using PostgreSQL.
// Plan counters are written by the service inside the same transaction as
// the task change that caused them.
package studyplan

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	plansTable = "study_plans"
	tasksTable = "tasks"
)

var (
	planColumns = []string{"id", "owner_id", "title", "tasks_count", "completed_count", "status", "created_at", "updated_at"}
	taskColumns = []string{"id", "study_plan_id", "owner_id", "title", "priority", "deadline", "completed", "created_at", "updated_at"}
)

// Repo provides study plan and task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Plans
// ---------------------------------------------------------------------------

// CreatePlan inserts an empty plan.
func (r *Repo) CreatePlan(ctx context.Context, ownerID uuid.UUID, title string) (*domain.StudyPlan, error) {
	b := postgres.Builder().
		Insert(plansTable).
		Columns("owner_id", "title", "status").
		Values(ownerID, title, string(domain.PlanStatusNotStarted)).
		Suffix(postgres.Returning(planColumns...))

	p, err := scanPlan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", uuid.Nil)
	}
	return p, nil
}

// GetPlan returns a plan by ID.
func (r *Repo) GetPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error) {
	b := postgres.Builder().Select(planColumns...).From(plansTable).Where(squirrel.Eq{"id": id})

	p, err := scanPlan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", id)
	}
	return p, nil
}

// LockPlan returns a plan and holds a row lock until the transaction ends.
// Must be called inside RunInTx.
func (r *Repo) LockPlan(ctx context.Context, id uuid.UUID) (*domain.StudyPlan, error) {
	b := postgres.Builder().Select(planColumns...).From(plansTable).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")

	p, err := scanPlan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", id)
	}
	return p, nil
}

// ListPlans returns the plans of an owner, newest first.
func (r *Repo) ListPlans(ctx context.Context, ownerID uuid.UUID) ([]domain.StudyPlan, error) {
	b := postgres.Builder().
		Select(planColumns...).
		From(plansTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", uuid.Nil)
	}
	plans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StudyPlan, error) {
		p, err := scanPlan(row)
		if err != nil {
			return domain.StudyPlan{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", uuid.Nil)
	}
	return plans, nil
}

// RenamePlan changes a plan's title.
func (r *Repo) RenamePlan(ctx context.Context, id uuid.UUID, title string) (*domain.StudyPlan, error) {
	b := postgres.Builder().
		Update(plansTable).
		Set("title", title).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(planColumns...))

	p, err := scanPlan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", id)
	}
	return p, nil
}

// UpdateCounters stores recomputed counters and status.
func (r *Repo) UpdateCounters(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error) {
	b := postgres.Builder().
		Update(plansTable).
		Set("tasks_count", p.TasksCount).
		Set("completed_count", p.CompletedCount).
		Set("status", string(p.Status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix(postgres.Returning(planColumns...))

	updated, err := scanPlan(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", p.ID)
	}
	return updated, nil
}

// DeletePlan removes a plan; its tasks are removed by cascade.
func (r *Repo) DeletePlan(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(plansTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "study_plan", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "study_plan", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

// CreateTask inserts a task.
func (r *Repo) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	b := postgres.Builder().
		Insert(tasksTable).
		Columns("study_plan_id", "owner_id", "title", "priority", "deadline", "completed").
		Values(t.StudyPlanID, t.OwnerID, t.Title, string(t.Priority), t.Deadline, t.Completed).
		Suffix(postgres.Returning(taskColumns...))

	created, err := scanTask(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return created, nil
}

// GetTask returns a task by ID.
func (r *Repo) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	b := postgres.Builder().Select(taskColumns...).From(tasksTable).Where(squirrel.Eq{"id": id})

	t, err := scanTask(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// LockTask returns a task and holds a row lock until the transaction ends.
// Must be called inside RunInTx, after LockPlan of the task's plan.
func (r *Repo) LockTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	b := postgres.Builder().Select(taskColumns...).From(tasksTable).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")

	t, err := scanTask(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// ListTasks returns the tasks of a plan ordered by deadline.
func (r *Repo) ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error) {
	return r.listTasks(ctx, squirrel.Eq{"study_plan_id": planID})
}

// ListTasksByPlanIDs returns the tasks of several plans, used by batch loaders.
func (r *Repo) ListTasksByPlanIDs(ctx context.Context, planIDs []uuid.UUID) ([]domain.Task, error) {
	if len(planIDs) == 0 {
		return []domain.Task{}, nil
	}
	return r.listTasks(ctx, squirrel.Eq{"study_plan_id": planIDs})
}

func (r *Repo) listTasks(ctx context.Context, where squirrel.Sqlizer) ([]domain.Task, error) {
	b := postgres.Builder().
		Select(taskColumns...).
		From(tasksTable).
		Where(where).
		OrderBy("deadline", "created_at", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		t, err := scanTask(row)
		if err != nil {
			return domain.Task{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return tasks, nil
}

// UpdateTask writes the editable fields of t.
func (r *Repo) UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	b := postgres.Builder().
		Update(tasksTable).
		Set("title", t.Title).
		Set("priority", string(t.Priority)).
		Set("deadline", t.Deadline).
		Set("completed", t.Completed).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix(postgres.Returning(taskColumns...))

	updated, err := scanTask(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return updated, nil
}

// DeleteTask removes a task.
func (r *Repo) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(tasksTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", id)
	}
	return nil
}

// CountTasks returns the total and completed task counts of an owner.
func (r *Repo) CountTasks(ctx context.Context, ownerID uuid.UUID) (total, completed int, err error) {
	b := postgres.Builder().
		Select("count(*)", "count(*) FILTER (WHERE completed)").
		From(tasksTable).
		Where(squirrel.Eq{"owner_id": ownerID})

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&total, &completed); err != nil {
		return 0, 0, postgres.MapError(err, "task", uuid.Nil)
	}
	return total, completed, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPlan(row pgx.Row) (*domain.StudyPlan, error) {
	var (
		p      domain.StudyPlan
		status string
	)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.TasksCount, &p.CompletedCount, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.PlanStatus(status)
	return &p, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t        domain.Task
		priority string
	)
	if err := row.Scan(&t.ID, &t.StudyPlanID, &t.OwnerID, &t.Title, &priority, &t.Deadline, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Priority = domain.TaskPriority(priority)
	return &t, nil
}
