package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// GenerateQuiz builds a quiz about a document. The model service is asked
// first; the LLM is used when the model service is not configured or is
// unavailable.
func (s *Service) GenerateQuiz(ctx context.Context, input GenerateQuizInput) (*domain.Quiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.model == nil && s.llm == nil {
		return nil, fmt.Errorf("quiz.GenerateQuiz: no generator configured: %w", domain.ErrUnavailable)
	}

	doc, err := authz.Load(ctx, input.DocumentID, s.documents.GetByID)
	if err != nil {
		return nil, err
	}

	level := input.Level
	if level == "" {
		level = domain.QuizLevelMedium
	}
	count := input.Count
	if count == 0 {
		count = DefaultQuestionCount
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = strings.TrimSuffix(doc.OriginalName, filepath.Ext(doc.OriginalName))
	}

	questions, source, err := s.generate(ctx, doc.Text, level, count)
	if err != nil {
		return nil, fmt.Errorf("quiz.GenerateQuiz: %w", err)
	}

	q := &domain.Quiz{
		OwnerID:    doc.OwnerID,
		DocumentID: &doc.ID,
		Level:      level,
		Title:      title,
		Questions:  questions,
		Source:     source,
	}
	if err := s.quizzes.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("quiz.GenerateQuiz save: %w", err)
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("quiz_id", q.ID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("level", level.String()),
		slog.String("source", string(source)),
		slog.Int("questions", len(questions)),
	)
	return q, nil
}

func (s *Service) generate(ctx context.Context, text string, level domain.QuizLevel, count int) ([]domain.QuizQuestion, domain.QuizSource, error) {
	if s.model != nil {
		questions, err := s.model.GenerateQuiz(ctx, text, level, count)
		if err == nil {
			return questions, domain.QuizSourceModel, nil
		}
		if s.llm == nil || !errors.Is(err, domain.ErrUnavailable) {
			return nil, "", fmt.Errorf("model service: %w", err)
		}
		s.log.WarnContext(ctx, "model service unavailable, using llm", slog.String("error", err.Error()))
	}

	questions, err := s.llm.GenerateQuiz(ctx, text, level, count)
	if err != nil {
		return nil, "", fmt.Errorf("llm: %w", err)
	}
	return questions, domain.QuizSourceLLM, nil
}
