package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type progressService interface {
	Compute(ctx context.Context) (*domain.Progress, error)
	Snapshot(ctx context.Context) (*domain.ProgressSnapshot, error)
	History(ctx context.Context, days int) ([]domain.ProgressSnapshot, error)
}

// ProgressHandler serves the progress dashboard.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type progressResponse struct {
	Percent           int     `json:"percent"`
	TasksPercent      float64 `json:"tasksPercent"`
	SessionsPercent   float64 `json:"sessionsPercent"`
	QuizzesPercent    float64 `json:"quizzesPercent"`
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	TotalSessions     int     `json:"totalSessions"`
	CompletedSessions int     `json:"completedSessions"`
	QuizResults       int     `json:"quizResults"`
}

type snapshotResponse struct {
	Date            string    `json:"date"`
	Percent         int       `json:"percent"`
	TasksPercent    float64   `json:"tasksPercent"`
	SessionsPercent float64   `json:"sessionsPercent"`
	QuizzesPercent  float64   `json:"quizzesPercent"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Progress handles GET /progress.
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Compute(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		Percent:           p.Percent,
		TasksPercent:      p.TasksPercent,
		SessionsPercent:   p.SessionsPercent,
		QuizzesPercent:    p.QuizzesPercent,
		TotalTasks:        p.Counts.TotalTasks,
		CompletedTasks:    p.Counts.CompletedTasks,
		TotalSessions:     p.Counts.TotalSessions,
		CompletedSessions: p.Counts.CompletedSessions,
		QuizResults:       p.Counts.QuizResults,
	})
}

// Snapshot handles POST /progress/snapshot.
func (h *ProgressHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// History handles GET /progress/history?days=.
func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	snaps, err := h.svc.History(r.Context(), days)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]snapshotResponse, len(snaps))
	for i := range snaps {
		out[i] = toSnapshotResponse(&snaps[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func toSnapshotResponse(s *domain.ProgressSnapshot) snapshotResponse {
	return snapshotResponse{
		Date:            s.Date.Format(domain.DateLayout),
		Percent:         s.Percent,
		TasksPercent:    s.TasksPercent,
		SessionsPercent: s.SessionsPercent,
		QuizzesPercent:  s.QuizzesPercent,
		UpdatedAt:       s.UpdatedAt,
	}
}
