// Package flashcard generates flashcard decks from documents and manages
// their cards. A deck's cards_count changes in the same transaction as its cards.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

type deckRepo interface {
	CreateDeck(ctx context.Context, ownerID uuid.UUID, documentID *uuid.UUID, title string) (*domain.FlashcardDeck, error)
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.FlashcardDeck, error)
	ListDecks(ctx context.Context, ownerID uuid.UUID) ([]domain.FlashcardDeck, error)
	RenameDeck(ctx context.Context, id uuid.UUID, title string) (*domain.FlashcardDeck, error)
	AdjustCardsCount(ctx context.Context, id uuid.UUID, delta int) (*domain.FlashcardDeck, error)
	DeleteDeck(ctx context.Context, id uuid.UUID) error

	CreateCards(ctx context.Context, deckID uuid.UUID, drafts []domain.FlashcardDraft) ([]domain.Flashcard, error)
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

type generator interface {
	GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashcardDraft, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultCardCount = 10
	MaxCardCount     = 30
)

// Service provides flashcard operations.
type Service struct {
	decks     deckRepo
	documents documentRepo
	gen       generator
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new flashcard service. gen may be nil when no LLM is
// configured; generation then reports domain.ErrUnavailable.
func NewService(log *slog.Logger, decks deckRepo, documents documentRepo, gen generator, tx txManager) *Service {
	return &Service{
		decks:     decks,
		documents: documents,
		gen:       gen,
		tx:        tx,
		log:       log.With("service", "flashcard"),
	}
}

// DeckDetails is a deck together with its cards.
type DeckDetails struct {
	Deck  *domain.FlashcardDeck
	Cards []domain.Flashcard
}

// CardResult is a changed card and its deck after the counter moved.
type CardResult struct {
	Card *domain.Flashcard
	Deck *domain.FlashcardDeck
}
