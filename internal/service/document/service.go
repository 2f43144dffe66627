// Package document runs the PDF upload pipeline and manages stored documents.
package document

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/pdf"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type documentRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.DocumentSummary, error)
	SetForwarded(ctx context.Context, id uuid.UUID, forwarded bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scanner interface {
	Scan(ctx context.Context, path string) error
}

type sanitizer interface {
	Sanitize(ctx context.Context, in, out string) error
}

type extractor interface {
	Extract(ctx context.Context, path string) (pdf.Extracted, error)
}

type forwarder interface {
	ForwardDocument(ctx context.Context, doc *domain.Document) error
}

// Service provides document operations.
type Service struct {
	docs      documentRepo
	scanner   scanner
	sanitizer sanitizer
	extractor extractor
	forwarder forwarder
	cfg       config.UploadConfig
	log       *slog.Logger
}

// NewService creates a new document service. scanner, sanitizer and forwarder
// may be nil, in which case the matching pipeline stage is skipped.
func NewService(
	log *slog.Logger,
	docs documentRepo,
	scanner scanner,
	sanitizer sanitizer,
	extractor extractor,
	forwarder forwarder,
	cfg config.UploadConfig,
) *Service {
	return &Service{
		docs:      docs,
		scanner:   scanner,
		sanitizer: sanitizer,
		extractor: extractor,
		forwarder: forwarder,
		cfg:       cfg,
		log:       log.With("service", "document"),
	}
}
