package studyplan

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const maxTitleLen = 200

// PlanInput holds the title of a new or renamed plan.
type PlanInput struct {
	Title string
}

// Validate checks the plan title.
func (i PlanInput) Validate() error {
	if errs := appendTitleErrors(nil, i.Title); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddTaskInput holds the parameters of a new task. Priority accepts the code
// or the Arabic label; Deadline is a YYYY-MM-DD date.
type AddTaskInput struct {
	Title    string
	Priority string
	Deadline string
}

func (i AddTaskInput) parse() (domain.TaskPriority, time.Time, error) {
	var errs []domain.FieldError
	errs = appendTitleErrors(errs, i.Title)

	priority, ok := domain.ParsePriority(i.Priority)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be high, medium or low"})
	}

	var deadline time.Time
	if strings.TrimSpace(i.Deadline) == "" {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "required"})
	} else if d, err := time.Parse(domain.DateLayout, strings.TrimSpace(i.Deadline)); err != nil {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be a YYYY-MM-DD date"})
	} else {
		deadline = d
	}

	if len(errs) > 0 {
		return "", time.Time{}, &domain.ValidationError{Errors: errs}
	}
	return priority, deadline, nil
}

// UpdateTaskInput holds optional task changes. nil fields are left unchanged.
type UpdateTaskInput struct {
	Title     *string
	Priority  *string
	Deadline  *string
	Completed *bool
}

func (i UpdateTaskInput) parse() (domain.TaskUpdateParams, error) {
	var (
		errs   []domain.FieldError
		params domain.TaskUpdateParams
	)

	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
		title := strings.TrimSpace(*i.Title)
		params.Title = &title
	}
	if i.Priority != nil {
		if p, ok := domain.ParsePriority(*i.Priority); ok {
			params.Priority = &p
		} else {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "must be high, medium or low"})
		}
	}
	if i.Deadline != nil {
		if d, err := time.Parse(domain.DateLayout, strings.TrimSpace(*i.Deadline)); err == nil {
			params.Deadline = &d
		} else {
			errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be a YYYY-MM-DD date"})
		}
	}
	params.Completed = i.Completed

	if len(errs) > 0 {
		return domain.TaskUpdateParams{}, &domain.ValidationError{Errors: errs}
	}
	return params, nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > maxTitleLen:
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
