// Package quiz generates multiple-choice quizzes from documents and grades
// submitted answers.
package quiz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type quizRepo interface {
	Create(ctx context.Context, q *domain.Quiz) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quiz, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateResult(ctx context.Context, res *domain.QuizResult) error
	ListResults(ctx context.Context, ownerID uuid.UUID, quizID *uuid.UUID) ([]domain.QuizResult, error)
	HasResult(ctx context.Context, quizID, ownerID uuid.UUID) (bool, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

type generator interface {
	GenerateQuiz(ctx context.Context, text string, level domain.QuizLevel, count int) ([]domain.QuizQuestion, error)
}

const (
	DefaultQuestionCount = 10
	MaxQuestionCount     = 30
)

// Service provides quiz operations.
type Service struct {
	quizzes   quizRepo
	documents documentRepo
	model     generator
	llm       generator
	log       *slog.Logger
}

// NewService creates a new quiz service. model is the sibling model service
// and llm the chat-completion fallback; either may be nil.
func NewService(log *slog.Logger, quizzes quizRepo, documents documentRepo, model, llm generator) *Service {
	return &Service{
		quizzes:   quizzes,
		documents: documents,
		model:     model,
		llm:       llm,
		log:       log.With("service", "quiz"),
	}
}

// QuizView is a quiz as shown to its owner. Answers and explanations are
// revealed only after the owner has submitted a result.
type QuizView struct {
	Quiz     *domain.Quiz
	Revealed bool
}
