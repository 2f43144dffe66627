package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// Refresh performs token rotation and returns a new access/refresh pair.
// Unknown (revoked or reused) and expired tokens yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	student, err := s.students.GetByID(ctx, token.StudentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted student",
				slog.String("student_id", token.StudentID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get student: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh token revoked concurrently",
					slog.String("student_id", token.StudentID.String()))
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("revoke token: %w", err)
		}
		r, err := s.issueTokens(txCtx, student)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		result = r
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
