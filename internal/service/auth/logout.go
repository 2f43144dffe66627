package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// Logout revokes all refresh tokens of the authenticated student.
func (s *Service) Logout(ctx context.Context) error {
	studentID, err := authz.Caller(ctx)
	if err != nil {
		return err
	}

	if err := s.tokens.RevokeAllByStudent(ctx, studentID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "student logged out", slog.String("student_id", studentID.String()))
	return nil
}

// Me returns the profile of the authenticated student.
func (s *Service) Me(ctx context.Context) (*domain.Student, error) {
	studentID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return student, nil
}

// ValidateToken validates an access token and returns the student ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	studentID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return studentID, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}
	return count, nil
}
