package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/dataloader"
)

type studyPlanService interface {
	CreatePlan(ctx context.Context, input studyplan.PlanInput) (*domain.StudyPlan, error)
	ListPlans(ctx context.Context) ([]domain.StudyPlan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*studyplan.PlanDetails, error)
	RenamePlan(ctx context.Context, planID uuid.UUID, input studyplan.PlanInput) (*domain.StudyPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	AddTask(ctx context.Context, planID uuid.UUID, input studyplan.AddTaskInput) (*studyplan.TaskResult, error)
	ListTasks(ctx context.Context, planID uuid.UUID) ([]domain.Task, error)
	UpdateTask(ctx context.Context, planID, taskID uuid.UUID, input studyplan.UpdateTaskInput) (*studyplan.TaskResult, error)
	DeleteTask(ctx context.Context, planID, taskID uuid.UUID) (*domain.StudyPlan, error)
}

// StudyPlanHandler serves study plan and task endpoints.
type StudyPlanHandler struct {
	svc studyPlanService
	loc *time.Location
	now func() time.Time
	log *slog.Logger
}

// NewStudyPlanHandler creates a StudyPlanHandler. Task status is derived
// against today's date in loc.
func NewStudyPlanHandler(svc studyPlanService, loc *time.Location, logger *slog.Logger) *StudyPlanHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &StudyPlanHandler{svc: svc, loc: loc, now: time.Now, log: logger.With("handler", "studyplan")}
}

type planRequest struct {
	Title string `json:"title"`
}

type addTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Deadline string `json:"deadline"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Priority  *string `json:"priority"`
	Deadline  *string `json:"deadline"`
	Completed *bool   `json:"completed"`
}

type planResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	TasksCount     int       `json:"tasksCount"`
	CompletedCount int       `json:"completedCount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type planWithTasksResponse struct {
	planResponse
	Tasks []taskResponse `json:"tasks"`
}

type taskResponse struct {
	ID            string    `json:"id"`
	StudyPlanID   string    `json:"studyPlanId"`
	Title         string    `json:"title"`
	Priority      string    `json:"priority"`
	PriorityLabel string    `json:"priorityLabel"`
	Deadline      string    `json:"deadline"`
	Completed     bool      `json:"completed"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type taskResultResponse struct {
	Task taskResponse `json:"task"`
	Plan planResponse `json:"plan"`
}

type planOnlyResponse struct {
	Plan planResponse `json:"plan"`
}

// CreatePlan handles POST /study-plans.
func (h *StudyPlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.CreatePlan(r.Context(), studyplan.PlanInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlanResponse(plan))
}

// ListPlans handles GET /study-plans. With ?include=tasks the tasks of all
// plans are loaded in one batch.
func (h *StudyPlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if !includes(r, "tasks") {
		out := make([]planResponse, len(plans))
		for i := range plans {
			out[i] = toPlanResponse(&plans[i])
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	ids := make([]uuid.UUID, len(plans))
	for i := range plans {
		ids[i] = plans[i].ID
	}
	tasks, err := dataloader.LoadGrouped(r.Context(), dataloader.FromContext(r.Context()).TasksByPlanID, ids)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	today := h.today()
	out := make([]planWithTasksResponse, len(plans))
	for i := range plans {
		out[i] = planWithTasksResponse{
			planResponse: toPlanResponse(&plans[i]),
			Tasks:        toTaskResponses(tasks[plans[i].ID], today),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPlan handles GET /study-plans/{planID}.
func (h *StudyPlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetPlan(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, planWithTasksResponse{
		planResponse: toPlanResponse(details.Plan),
		Tasks:        toTaskResponses(details.Tasks, h.today()),
	})
}

// RenamePlan handles PATCH /study-plans/{planID}.
func (h *StudyPlanHandler) RenamePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.RenamePlan(r.Context(), planID, studyplan.PlanInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// DeletePlan handles DELETE /study-plans/{planID}.
func (h *StudyPlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeletePlan(r.Context(), planID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

// AddTask handles POST /study-plans/{planID}/tasks.
func (h *StudyPlanHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req addTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.AddTask(r.Context(), planID, studyplan.AddTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		Deadline: req.Deadline,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, taskResultResponse{
		Task: toTaskResponse(result.Task, h.today()),
		Plan: toPlanResponse(result.Plan),
	})
}

// ListTasks handles GET /study-plans/{planID}/tasks.
func (h *StudyPlanHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponses(tasks, h.today()))
}

// UpdateTask handles PATCH /study-plans/{planID}/tasks/{taskID}.
func (h *StudyPlanHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	taskID, err := pathUUID(r, "taskID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.UpdateTask(r.Context(), planID, taskID, studyplan.UpdateTaskInput{
		Title:     req.Title,
		Priority:  req.Priority,
		Deadline:  req.Deadline,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResultResponse{
		Task: toTaskResponse(result.Task, h.today()),
		Plan: toPlanResponse(result.Plan),
	})
}

// DeleteTask handles DELETE /study-plans/{planID}/tasks/{taskID} and returns
// the plan with its updated counters.
func (h *StudyPlanHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	taskID, err := pathUUID(r, "taskID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.DeleteTask(r.Context(), planID, taskID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, planOnlyResponse{Plan: toPlanResponse(plan)})
}

func (h *StudyPlanHandler) today() time.Time {
	y, m, d := h.now().In(h.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, h.loc)
}

func toPlanResponse(p *domain.StudyPlan) planResponse {
	return planResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		TasksCount:     p.TasksCount,
		CompletedCount: p.CompletedCount,
		Status:         p.Status.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toTaskResponse(t *domain.Task, today time.Time) taskResponse {
	return taskResponse{
		ID:            t.ID.String(),
		StudyPlanID:   t.StudyPlanID.String(),
		Title:         t.Title,
		Priority:      t.Priority.String(),
		PriorityLabel: t.Priority.Label(),
		Deadline:      t.Deadline.Format(domain.DateLayout),
		Completed:     t.Completed,
		Status:        t.StatusAt(today).String(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTaskResponses(tasks []domain.Task, today time.Time) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i], today)
	}
	return out
}
