package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const maxTitleLen = 200

// GenerateQuizInput holds the parameters of quiz generation. An empty Level
// means medium, Count 0 means DefaultQuestionCount and an empty Title is
// replaced by the document name.
type GenerateQuizInput struct {
	DocumentID uuid.UUID
	Level      domain.QuizLevel
	Count      int
	Title      string
}

// Validate checks the generation parameters.
func (i GenerateQuizInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "documentId", Message: "required"})
	}
	if i.Level != "" && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be easy, medium or hard"})
	}
	if i.Count < 0 || i.Count > MaxQuestionCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 1 and 30"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitInput holds one answer index per question; -1 marks an unanswered question.
type SubmitInput struct {
	Answers []int
}

func (i SubmitInput) validate(q *domain.Quiz) error {
	if len(i.Answers) == 0 {
		return domain.NewValidationError("answers", "required")
	}
	if len(i.Answers) > len(q.Questions) {
		return domain.NewValidationError("answers",
			fmt.Sprintf("quiz has %d questions, got %d answers", len(q.Questions), len(i.Answers)))
	}

	var errs []domain.FieldError
	for n, a := range i.Answers {
		if a < -1 || a >= len(q.Questions[n].Options) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d]", n),
				Message: "out of range",
			})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
