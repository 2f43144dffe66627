package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/session"
)

type sessionService interface {
	StartSession(ctx context.Context, input session.StartInput) (*session.StartResult, error)
	PauseSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	ResumeSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	FinishSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	ListSessions(ctx context.Context, input session.ListInput) (*session.ListResult, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	Now() time.Time
}

// SessionHandler serves study session timer endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type startSessionRequest struct {
	Title string `json:"title"`
}

// sessionResponse reports totals including the running segment, so a client
// can render the timer without knowing the segment start.
type sessionResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	TotalStudySeconds int64      `json:"totalStudySeconds"`
	TotalBreakSeconds int64      `json:"totalBreakSeconds"`
	StartedAt         time.Time  `json:"startedAt"`
	EndedAt           *time.Time `json:"endedAt"`
}

type sessionListResponse struct {
	Sessions []sessionResponse `json:"sessions"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// StartSession handles POST /study-sessions. An already running session is
// returned with 200 instead of 201.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.StartSession(r.Context(), session.StartInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, h.toResponse(res.Session))
}

// ListSessions handles GET /study-sessions?limit=&offset=.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListSessions(r.Context(), session.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if limit == 0 {
		limit = session.DefaultPageSize
	}
	out := sessionListResponse{
		Sessions: make([]sessionResponse, len(res.Sessions)),
		Total:    res.Total,
		Limit:    limit,
		Offset:   offset,
	}
	for i := range res.Sessions {
		out.Sessions[i] = h.toResponse(&res.Sessions[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetSession handles GET /study-sessions/{id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, h.svc.GetSession)
}

// PauseSession handles POST /study-sessions/{id}/pause.
func (h *SessionHandler) PauseSession(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, h.svc.PauseSession)
}

// ResumeSession handles POST /study-sessions/{id}/resume.
func (h *SessionHandler) ResumeSession(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, h.svc.ResumeSession)
}

// FinishSession handles POST /study-sessions/{id}/finish.
func (h *SessionHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, h.svc.FinishSession)
}

// DeleteSession handles DELETE /study-sessions/{id}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

func (h *SessionHandler) respondWith(w http.ResponseWriter, r *http.Request,
	op func(context.Context, uuid.UUID) (*domain.StudySession, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	s, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(s))
}

func (h *SessionHandler) toResponse(s *domain.StudySession) sessionResponse {
	study, brk := s.TotalsAt(h.svc.Now())
	return sessionResponse{
		ID:                s.ID.String(),
		Title:             s.Title,
		Status:            s.Status.String(),
		TotalStudySeconds: study,
		TotalBreakSeconds: brk,
		StartedAt:         s.StartedAt,
		EndedAt:           s.EndedAt,
	}
}
