package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// GenerateDeck asks the LLM for cards about a document and stores the deck
// with its cards in one transaction.
func (s *Service) GenerateDeck(ctx context.Context, input GenerateDeckInput) (*DeckDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.gen == nil {
		return nil, fmt.Errorf("flashcard.GenerateDeck: llm not configured: %w", domain.ErrUnavailable)
	}

	doc, err := authz.Load(ctx, input.DocumentID, s.documents.GetByID)
	if err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = DefaultCardCount
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = strings.TrimSuffix(doc.OriginalName, filepath.Ext(doc.OriginalName))
	}

	drafts, err := s.gen.GenerateFlashcards(ctx, doc.Text, count)
	if err != nil {
		return nil, fmt.Errorf("flashcard.GenerateDeck generate: %w", err)
	}

	var details DeckDetails
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, err := s.decks.CreateDeck(txCtx, doc.OwnerID, &doc.ID, title)
		if err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
		cards, err := s.decks.CreateCards(txCtx, deck.ID, drafts)
		if err != nil {
			return fmt.Errorf("create cards: %w", err)
		}
		if deck, err = s.decks.AdjustCardsCount(txCtx, deck.ID, len(cards)); err != nil {
			return fmt.Errorf("adjust cards count: %w", err)
		}
		details = DeckDetails{Deck: deck, Cards: cards}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard.GenerateDeck: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deck generated",
		slog.String("deck_id", details.Deck.ID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.Int("cards", len(details.Cards)),
	)
	return &details, nil
}

// ListDecks returns the caller's decks, newest first.
func (s *Service) ListDecks(ctx context.Context) ([]domain.FlashcardDeck, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	decks, err := s.decks.ListDecks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("flashcard.ListDecks: %w", err)
	}
	return decks, nil
}

// GetDeck returns a deck with its cards.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*DeckDetails, error) {
	deck, err := authz.Load(ctx, deckID, s.decks.GetDeck)
	if err != nil {
		return nil, err
	}

	cards, err := s.decks.ListCards(ctx, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("flashcard.GetDeck list cards: %w", err)
	}
	return &DeckDetails{Deck: deck, Cards: cards}, nil
}

// RenameDeck changes a deck's title.
func (s *Service) RenameDeck(ctx context.Context, deckID uuid.UUID, input RenameDeckInput) (*domain.FlashcardDeck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := authz.Load(ctx, deckID, s.decks.GetDeck); err != nil {
		return nil, err
	}

	deck, err := s.decks.RenameDeck(ctx, deckID, strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("flashcard.RenameDeck: %w", err)
	}
	return deck, nil
}

// DeleteDeck removes a deck and its cards.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	deck, err := authz.Load(ctx, deckID, s.decks.GetDeck)
	if err != nil {
		return err
	}

	if err := s.decks.DeleteDeck(ctx, deck.ID); err != nil {
		return fmt.Errorf("flashcard.DeleteDeck: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deck deleted",
		slog.String("deck_id", deck.ID.String()),
		slog.Int("cards", deck.CardsCount),
	)
	return nil
}
