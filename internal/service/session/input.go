package session

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const maxTitleLen = 200

// StartInput holds the optional title of a new session.
type StartInput struct {
	Title string
}

// Validate checks the title length.
func (i StartInput) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		return domain.NewValidationError("title", "max 200 characters")
	}
	return nil
}

// ListInput holds paging parameters. Zero Limit means DefaultPageSize.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks the paging parameters.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
