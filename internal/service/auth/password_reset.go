package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/email"
	"github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// ForgotPassword mails a single-use reset link when the email belongs to a student.
// The result does not reveal whether the email is registered.
func (s *Service) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return err
	}
	if s.resets == nil {
		return fmt.Errorf("auth.ForgotPassword: reset store not configured: %w", domain.ErrUnavailable)
	}

	student, err := s.students.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset for unknown email")
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get student: %w", err)
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword generate token: %w", err)
	}
	if err := s.resets.Save(ctx, hash, student.ID, s.cfg.ResetTokenTTL); err != nil {
		return fmt.Errorf("auth.ForgotPassword store token: %w", err)
	}

	msg := email.PasswordReset(student.Email, student.FullName(), s.resetLink(raw), s.cfg.ResetTokenTTL)
	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "password reset email failed",
			slog.String("student_id", student.ID.String()),
			slog.String("error", err.Error()))
		return nil
	}

	s.log.InfoContext(ctx, "password reset requested", slog.String("student_id", student.ID.String()))
	return nil
}

// ResetPassword sets a new password using a reset token and signs the student
// out everywhere. An unknown, expired or used token is a validation error.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if s.resets == nil {
		return fmt.Errorf("auth.ResetPassword: reset store not configured: %w", domain.ErrUnavailable)
	}

	studentID, err := s.resets.Consume(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("token", "invalid or expired")
		}
		return fmt.Errorf("auth.ResetPassword consume token: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.students.UpdatePassword(txCtx, studentID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByStudent(txCtx, studentID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("student_id", studentID.String()))
	return nil
}

func (s *Service) resetLink(raw string) string {
	u, err := url.Parse(s.cfg.ResetURL)
	if err != nil {
		return s.cfg.ResetURL + "?token=" + url.QueryEscape(raw)
	}
	q := u.Query()
	q.Set("token", raw)
	u.RawQuery = q.Encode()
	return u.String()
}
