package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/flashcard"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/dataloader"
)

type flashcardService interface {
	GenerateDeck(ctx context.Context, input flashcard.GenerateDeckInput) (*flashcard.DeckDetails, error)
	ListDecks(ctx context.Context) ([]domain.FlashcardDeck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*flashcard.DeckDetails, error)
	RenameDeck(ctx context.Context, deckID uuid.UUID, input flashcard.RenameDeckInput) (*domain.FlashcardDeck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
	AddCard(ctx context.Context, deckID uuid.UUID, input flashcard.CardInput) (*flashcard.CardResult, error)
	UpdateCard(ctx context.Context, deckID, cardID uuid.UUID, input flashcard.UpdateCardInput) (*domain.Flashcard, error)
	DeleteCard(ctx context.Context, deckID, cardID uuid.UUID) (*domain.FlashcardDeck, error)
}

// FlashcardHandler serves deck and card endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type generateDeckRequest struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	Count      int    `json:"count"`
}

type renameDeckRequest struct {
	Title string `json:"title"`
}

type cardRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Hint     string   `json:"hint"`
	Tags     []string `json:"tags"`
}

type updateCardRequest struct {
	Question *string  `json:"question"`
	Answer   *string  `json:"answer"`
	Hint     *string  `json:"hint"`
	Tags     []string `json:"tags"`
}

type deckResponse struct {
	ID         string    `json:"id"`
	DocumentID *string   `json:"documentId"`
	Title      string    `json:"title"`
	CardsCount int       `json:"cardsCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type deckWithCardsResponse struct {
	deckResponse
	Cards []cardResponse `json:"cards"`
}

type cardResponse struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deckId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Hint      string    `json:"hint"`
	Tags      []string  `json:"tags"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type cardResultResponse struct {
	Card cardResponse `json:"card"`
	Deck deckResponse `json:"deck"`
}

type deckOnlyResponse struct {
	Deck deckResponse `json:"deck"`
}

// GenerateDeck handles POST /home/flashcards/generate.
func (h *FlashcardHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	var req generateDeckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	documentID, err := parseOptionalUUID("documentId", req.DocumentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GenerateDeck(r.Context(), flashcard.GenerateDeckInput{
		DocumentID: documentID,
		Title:      req.Title,
		Count:      req.Count,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeckWithCards(details.Deck, details.Cards))
}

// ListDecks handles GET /home/flashcards/decks. With ?include=cards the cards
// of all decks are loaded in one batch.
func (h *FlashcardHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if !includes(r, "cards") {
		out := make([]deckResponse, len(decks))
		for i := range decks {
			out[i] = toDeckResponse(&decks[i])
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	ids := make([]uuid.UUID, len(decks))
	for i := range decks {
		ids[i] = decks[i].ID
	}
	cards, err := dataloader.LoadGrouped(r.Context(), dataloader.FromContext(r.Context()).CardsByDeckID, ids)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]deckWithCardsResponse, len(decks))
	for i := range decks {
		out[i] = toDeckWithCards(&decks[i], cards[decks[i].ID])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDeck handles GET /home/flashcards/decks/{deckID}.
func (h *FlashcardHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckWithCards(details.Deck, details.Cards))
}

// RenameDeck handles PATCH /home/flashcards/decks/{deckID}.
func (h *FlashcardHandler) RenameDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req renameDeckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	deck, err := h.svc.RenameDeck(r.Context(), deckID, flashcard.RenameDeckInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(deck))
}

// DeleteDeck handles DELETE /home/flashcards/decks/{deckID}.
func (h *FlashcardHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteDeck(r.Context(), deckID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

// AddCard handles POST /home/flashcards/decks/{deckID}/cards.
func (h *FlashcardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.AddCard(r.Context(), deckID, flashcard.CardInput{
		Question: req.Question,
		Answer:   req.Answer,
		Hint:     req.Hint,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, cardResultResponse{
		Card: toCardResponse(result.Card),
		Deck: toDeckResponse(result.Deck),
	})
}

// UpdateCard handles PATCH /home/flashcards/decks/{deckID}/cards/{cardID}.
func (h *FlashcardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), deckID, cardID, flashcard.UpdateCardInput{
		Question: req.Question,
		Answer:   req.Answer,
		Hint:     req.Hint,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /home/flashcards/decks/{deckID}/cards/{cardID}.
func (h *FlashcardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	deck, err := h.svc.DeleteCard(r.Context(), deckID, cardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, deckOnlyResponse{Deck: toDeckResponse(deck)})
}

func toDeckResponse(d *domain.FlashcardDeck) deckResponse {
	return deckResponse{
		ID:         d.ID.String(),
		DocumentID: uuidString(d.DocumentID),
		Title:      d.Title,
		CardsCount: d.CardsCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDeckWithCards(d *domain.FlashcardDeck, cards []domain.Flashcard) deckWithCardsResponse {
	out := deckWithCardsResponse{
		deckResponse: toDeckResponse(d),
		Cards:        make([]cardResponse, len(cards)),
	}
	for i := range cards {
		out.Cards[i] = toCardResponse(&cards[i])
	}
	return out
}

func toCardResponse(c *domain.Flashcard) cardResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return cardResponse{
		ID:        c.ID.String(),
		DeckID:    c.DeckID.String(),
		Question:  c.Question,
		Answer:    c.Answer,
		Hint:      c.Hint,
		Tags:      tags,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
