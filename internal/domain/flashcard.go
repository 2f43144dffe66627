package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardDeck is a named collection of flashcards, usually generated from a document.
type FlashcardDeck struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	DocumentID *uuid.UUID
	Title      string
	CardsCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (d *FlashcardDeck) Owner() uuid.UUID { return d.OwnerID }

// Flashcard is a single question/answer card of a deck.
type Flashcard struct {
	ID        uuid.UUID
	DeckID    uuid.UUID
	Question  string
	Answer    string
	Hint      string
	Tags      []string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FlashcardDraft is a card produced by a generator before it is stored.
type FlashcardDraft struct {
	Question string
	Answer   string
	Hint     string
	Tags     []string
}

// FlashcardUpdateParams holds optional card changes. nil means unchanged.
type FlashcardUpdateParams struct {
	Question *string
	Answer   *string
	Hint     *string
	Tags     []string
}
