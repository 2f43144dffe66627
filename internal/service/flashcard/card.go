package flashcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// AddCard appends a card to a deck and increments cards_count in one transaction.
func (s *Service) AddCard(ctx context.Context, deckID uuid.UUID, input CardInput) (*CardResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	deck, err := authz.Load(ctx, deckID, s.decks.GetDeck)
	if err != nil {
		return nil, err
	}

	var result CardResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cards, err := s.decks.CreateCards(txCtx, deck.ID, []domain.FlashcardDraft{input.draft()})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		updated, err := s.decks.AdjustCardsCount(txCtx, deck.ID, 1)
		if err != nil {
			return fmt.Errorf("adjust cards count: %w", err)
		}
		result = CardResult{Card: &cards[0], Deck: updated}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard.AddCard: %w", err)
	}
	return &result, nil
}

// UpdateCard applies the given changes to a card of a caller-owned deck.
func (s *Service) UpdateCard(ctx context.Context, deckID, cardID uuid.UUID, input UpdateCardInput) (*domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	card, err := s.loadCard(ctx, deckID, cardID)
	if err != nil {
		return nil, err
	}

	if input.Question != nil {
		card.Question = strings.TrimSpace(*input.Question)
	}
	if input.Answer != nil {
		card.Answer = strings.TrimSpace(*input.Answer)
	}
	if input.Hint != nil {
		card.Hint = strings.TrimSpace(*input.Hint)
	}
	if input.Tags != nil {
		card.Tags = cleanTags(input.Tags)
	}

	updated, err := s.decks.UpdateCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("flashcard.UpdateCard: %w", err)
	}
	return updated, nil
}

// DeleteCard removes a card and decrements cards_count in one transaction.
func (s *Service) DeleteCard(ctx context.Context, deckID, cardID uuid.UUID) (*domain.FlashcardDeck, error) {
	card, err := s.loadCard(ctx, deckID, cardID)
	if err != nil {
		return nil, err
	}

	var deck *domain.FlashcardDeck
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.decks.DeleteCard(txCtx, card.ID); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		updated, err := s.decks.AdjustCardsCount(txCtx, deckID, -1)
		if err != nil {
			return fmt.Errorf("adjust cards count: %w", err)
		}
		deck = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard.DeleteCard: %w", err)
	}
	return deck, nil
}

// loadCard checks deck ownership and that the card belongs to the deck.
func (s *Service) loadCard(ctx context.Context, deckID, cardID uuid.UUID) (*domain.Flashcard, error) {
	if _, err := authz.Load(ctx, deckID, s.decks.GetDeck); err != nil {
		return nil, err
	}
	card, err := s.decks.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.DeckID != deckID {
		return nil, fmt.Errorf("card %s in deck %s: %w", cardID, deckID, domain.ErrNotFound)
	}
	return card, nil
}
