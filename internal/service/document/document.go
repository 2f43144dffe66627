package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// ListDocuments returns the caller's documents without their text.
func (s *Service) ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("document.ListDocuments: %w", err)
	}
	return docs, nil
}

// GetDocument returns a document with its extracted text.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return authz.Load(ctx, id, s.docs.GetByID)
}

// DeleteDocument removes a document. Decks and quizzes generated from it are kept.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := authz.Load(ctx, id, s.docs.GetByID)
	if err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, doc.ID); err != nil {
		return fmt.Errorf("document.DeleteDocument: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted", slog.String("document_id", doc.ID.String()))
	return nil
}
