package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// ListQuizzes returns the caller's quizzes, newest first.
func (s *Service) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	quizzes, err := s.quizzes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("quiz.ListQuizzes: %w", err)
	}
	return quizzes, nil
}

// GetQuiz returns a quiz; answers are revealed once a result exists.
func (s *Service) GetQuiz(ctx context.Context, quizID uuid.UUID) (*QuizView, error) {
	q, err := authz.Load(ctx, quizID, s.quizzes.Get)
	if err != nil {
		return nil, err
	}

	revealed, err := s.quizzes.HasResult(ctx, q.ID, q.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("quiz.GetQuiz: %w", err)
	}
	return &QuizView{Quiz: q, Revealed: revealed}, nil
}

// DeleteQuiz removes a quiz and its results.
func (s *Service) DeleteQuiz(ctx context.Context, quizID uuid.UUID) error {
	q, err := authz.Load(ctx, quizID, s.quizzes.Get)
	if err != nil {
		return err
	}

	if err := s.quizzes.Delete(ctx, q.ID); err != nil {
		return fmt.Errorf("quiz.DeleteQuiz: %w", err)
	}
	s.log.InfoContext(ctx, "quiz deleted", slog.String("quiz_id", q.ID.String()))
	return nil
}

// SubmitResult grades the answers server-side and stores the result.
func (s *Service) SubmitResult(ctx context.Context, quizID uuid.UUID, input SubmitInput) (*domain.QuizResult, error) {
	q, err := authz.Load(ctx, quizID, s.quizzes.Get)
	if err != nil {
		return nil, err
	}
	if err := input.validate(q); err != nil {
		return nil, err
	}

	res := &domain.QuizResult{
		QuizID:  q.ID,
		OwnerID: q.OwnerID,
		Score:   q.Grade(input.Answers),
		Total:   len(q.Questions),
		Answers: input.Answers,
	}
	if err := s.quizzes.CreateResult(ctx, res); err != nil {
		return nil, fmt.Errorf("quiz.SubmitResult: %w", err)
	}

	s.log.InfoContext(ctx, "quiz result saved",
		slog.String("quiz_id", q.ID.String()),
		slog.Int("score", res.Score),
		slog.Int("total", res.Total),
	)
	return res, nil
}

// ListResults returns the caller's results, optionally for one quiz only.
func (s *Service) ListResults(ctx context.Context, quizID *uuid.UUID) ([]domain.QuizResult, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}
	if quizID != nil {
		if _, err := authz.Load(ctx, *quizID, s.quizzes.Get); err != nil {
			return nil, err
		}
	}

	results, err := s.quizzes.ListResults(ctx, ownerID, quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz.ListResults: %w", err)
	}
	return results, nil
}
