// Package auth implements registration, login, token rotation and password reset.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/email"
	"github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// studentRepo defines the student repository interface needed by auth service.
type studentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, studentID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByStudent(ctx context.Context, studentID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the access token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(studentID uuid.UUID, email string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	AccessTTL() time.Duration
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// resetStore keeps single-use password reset tokens.
type resetStore interface {
	Save(ctx context.Context, tokenHash string, studentID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, tokenHash string) (uuid.UUID, error)
}

// mailer delivers email.
type mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	students studentRepo
	tokens   tokenRepo
	tx       txManager
	jwt      jwtManager
	hasher   passwordHasher
	resets   resetStore
	mail     mailer
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
// resets may be nil, in which case password reset reports domain.ErrUnavailable.
func NewService(
	logger *slog.Logger,
	students studentRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	hasher passwordHasher,
	resets resetStore,
	mail mailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		students: students,
		tokens:   tokens,
		tx:       tx,
		jwt:      jwt,
		hasher:   hasher,
		resets:   resets,
		mail:     mail,
		cfg:      cfg,
		now:      time.Now,
	}
}

// issueTokens generates access and refresh tokens for the student and stores
// the refresh token hash.
func (s *Service) issueTokens(ctx context.Context, student *domain.Student) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(student.ID, student.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, student.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.jwt.AccessTTL(),
		Student:      student,
	}, nil
}
