package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/quiz"
)

type quizService interface {
	GenerateQuiz(ctx context.Context, input quiz.GenerateQuizInput) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*quiz.QuizView, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID) error
	SubmitResult(ctx context.Context, quizID uuid.UUID, input quiz.SubmitInput) (*domain.QuizResult, error)
	ListResults(ctx context.Context, quizID *uuid.UUID) ([]domain.QuizResult, error)
}

// QuizHandler serves quiz endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type generateQuizRequest struct {
	DocumentID string `json:"documentId"`
	Level      string `json:"level"`
	Count      int    `json:"count"`
	Title      string `json:"title"`
}

type submitResultRequest struct {
	Answers []int `json:"answers"`
}

type quizSummaryResponse struct {
	ID            string    `json:"id"`
	DocumentID    *string   `json:"documentId"`
	Title         string    `json:"title"`
	Level         string    `json:"level"`
	Source        string    `json:"source"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type quizResponse struct {
	quizSummaryResponse
	Revealed  bool               `json:"revealed"`
	Questions []questionResponse `json:"questions"`
}

// questionResponse hides the answer and explanation until the quiz is revealed.
type questionResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex *int     `json:"answerIndex,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

type resultResponse struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quizId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Percent   int       `json:"percent"`
	Answers   []int     `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateQuiz handles POST /quizzes/generate. The owner of a fresh quiz has
// no result yet, so answers stay hidden.
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	documentID, err := parseOptionalUUID("documentId", req.DocumentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.GenerateQuiz(r.Context(), quiz.GenerateQuizInput{
		DocumentID: documentID,
		Level:      domain.QuizLevel(req.Level),
		Count:      req.Count,
		Title:      req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuizResponse(q, false))
}

// ListQuizzes handles GET /quizzes.
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.svc.ListQuizzes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]quizSummaryResponse, len(quizzes))
	for i := range quizzes {
		out[i] = toQuizSummary(&quizzes[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetQuiz handles GET /quizzes/{quizID}.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathUUID(r, "quizID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetQuiz(r.Context(), quizID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResponse(view.Quiz, view.Revealed))
}

// DeleteQuiz handles DELETE /quizzes/{quizID}.
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathUUID(r, "quizID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteQuiz(r.Context(), quizID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

// SubmitResult handles POST /quizzes/{quizID}/results.
func (h *QuizHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathUUID(r, "quizID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req submitResultRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.SubmitResult(r.Context(), quizID, quiz.SubmitInput{Answers: req.Answers})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResultResponse(res))
}

// ListResults handles GET /quizzes/results, optionally filtered by ?quizId=.
func (h *QuizHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	var quizID *uuid.UUID
	if raw := r.URL.Query().Get("quizId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("quizId", "must be a UUID"))
			return
		}
		quizID = &id
	}

	results, err := h.svc.ListResults(r.Context(), quizID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]resultResponse, len(results))
	for i := range results {
		out[i] = toResultResponse(&results[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func toQuizSummary(q *domain.Quiz) quizSummaryResponse {
	return quizSummaryResponse{
		ID:            q.ID.String(),
		DocumentID:    uuidString(q.DocumentID),
		Title:         q.Title,
		Level:         q.Level.String(),
		Source:        string(q.Source),
		QuestionCount: len(q.Questions),
		CreatedAt:     q.CreatedAt,
	}
}

func toQuizResponse(q *domain.Quiz, revealed bool) quizResponse {
	out := quizResponse{
		quizSummaryResponse: toQuizSummary(q),
		Revealed:            revealed,
		Questions:           make([]questionResponse, len(q.Questions)),
	}
	for i, question := range q.Questions {
		out.Questions[i] = questionResponse{
			Question: question.Question,
			Options:  question.Options,
		}
		if revealed {
			answer := question.AnswerIndex
			out.Questions[i].AnswerIndex = &answer
			out.Questions[i].Explanation = question.Explanation
		}
	}
	return out
}

func toResultResponse(res *domain.QuizResult) resultResponse {
	answers := res.Answers
	if answers == nil {
		answers = []int{}
	}
	return resultResponse{
		ID:        res.ID.String(),
		QuizID:    res.QuizID.String(),
		Score:     res.Score,
		Total:     res.Total,
		Percent:   int(math.Round(res.Ratio() * 100)),
		Answers:   answers,
		CreatedAt: res.CreatedAt,
	}
}
