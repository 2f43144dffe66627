package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores bytes past 72
	maxNameLen     = 100
)

// RegisterInput holds parameters for registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, "password", i.Password)

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	} else if utf8.RuneCountInString(i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}
	if utf8.RuneCountInString(i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ForgotPasswordInput holds parameters for requesting a reset link.
type ForgotPasswordInput struct {
	Email string
}

// Validate validates the forgot-password input.
func (i ForgotPasswordInput) Validate() error {
	if errs := appendEmailErrors(nil, i.Email); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds parameters for setting a new password with a reset token.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// Validate validates the reset-password input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 512 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}
	errs = appendPasswordErrors(errs, "password", i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "must be at least 8 characters"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
