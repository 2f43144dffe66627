package flashcard

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxTextLen  = 2000
	maxTags     = 10
)

// GenerateDeckInput holds the parameters of deck generation.
// An empty Title is replaced by the document name; Count 0 means DefaultCardCount.
type GenerateDeckInput struct {
	DocumentID uuid.UUID
	Title      string
	Count      int
}

// Validate checks the generation parameters.
func (i GenerateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "documentId", Message: "required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Count < 0 || i.Count > MaxCardCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 1 and 30"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CardInput holds the fields of a manually added card.
type CardInput struct {
	Question string
	Answer   string
	Hint     string
	Tags     []string
}

// Validate checks the card fields.
func (i CardInput) Validate() error {
	var errs []domain.FieldError
	errs = appendTextErrors(errs, "question", i.Question, true)
	errs = appendTextErrors(errs, "answer", i.Answer, true)
	errs = appendTextErrors(errs, "hint", i.Hint, false)
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CardInput) draft() domain.FlashcardDraft {
	return domain.FlashcardDraft{
		Question: strings.TrimSpace(i.Question),
		Answer:   strings.TrimSpace(i.Answer),
		Hint:     strings.TrimSpace(i.Hint),
		Tags:     cleanTags(i.Tags),
	}
}

// UpdateCardInput holds optional card changes. nil fields are left unchanged;
// a non-nil Tags replaces the tag list.
type UpdateCardInput struct {
	Question *string
	Answer   *string
	Hint     *string
	Tags     []string
}

// Validate checks the provided fields.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError
	if i.Question != nil {
		errs = appendTextErrors(errs, "question", *i.Question, true)
	}
	if i.Answer != nil {
		errs = appendTextErrors(errs, "answer", *i.Answer, true)
	}
	if i.Hint != nil {
		errs = appendTextErrors(errs, "hint", *i.Hint, false)
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameDeckInput holds the new deck title.
type RenameDeckInput struct {
	Title string
}

// Validate checks the title.
func (i RenameDeckInput) Validate() error {
	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		return domain.NewValidationError("title", "required")
	case utf8.RuneCountInString(title) > maxTitleLen:
		return domain.NewValidationError("title", "max 200 characters")
	}
	return nil
}

func appendTextErrors(errs []domain.FieldError, field, value string, required bool) []domain.FieldError {
	value = strings.TrimSpace(value)
	switch {
	case required && value == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(value) > maxTextLen:
		return append(errs, domain.FieldError{Field: field, Message: "max 2000 characters"})
	}
	return errs
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
