// Package flashcard implements FlashcardDeck and Flashcard persistence using PostgreSQL.
package flashcard

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	decksTable = "flashcard_decks"
	cardsTable = "flashcards"
)

var (
	deckColumns = []string{"id", "owner_id", "document_id", "title", "cards_count", "created_at", "updated_at"}
	cardColumns = []string{"id", "deck_id", "question", "answer", "hint", "tags", "position", "created_at", "updated_at"}
)

// Repo provides deck and card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateDeck inserts an empty deck.
func (r *Repo) CreateDeck(ctx context.Context, ownerID uuid.UUID, documentID *uuid.UUID, title string) (*domain.FlashcardDeck, error) {
	b := postgres.Builder().
		Insert(decksTable).
		Columns("owner_id", "document_id", "title").
		Values(ownerID, documentID, title).
		Suffix(postgres.Returning(deckColumns...))

	d, err := scanDeck(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", uuid.Nil)
	}
	return d, nil
}

// GetDeck returns a deck by ID.
func (r *Repo) GetDeck(ctx context.Context, id uuid.UUID) (*domain.FlashcardDeck, error) {
	b := postgres.Builder().Select(deckColumns...).From(decksTable).Where(squirrel.Eq{"id": id})

	d, err := scanDeck(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", id)
	}
	return d, nil
}

// ListDecks returns the decks of an owner, newest first.
func (r *Repo) ListDecks(ctx context.Context, ownerID uuid.UUID) ([]domain.FlashcardDeck, error) {
	b := postgres.Builder().
		Select(deckColumns...).
		From(decksTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", uuid.Nil)
	}
	decks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FlashcardDeck, error) {
		d, err := scanDeck(row)
		if err != nil {
			return domain.FlashcardDeck{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", uuid.Nil)
	}
	return decks, nil
}

// RenameDeck changes a deck's title.
func (r *Repo) RenameDeck(ctx context.Context, id uuid.UUID, title string) (*domain.FlashcardDeck, error) {
	b := postgres.Builder().
		Update(decksTable).
		Set("title", title).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(deckColumns...))

	d, err := scanDeck(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", id)
	}
	return d, nil
}

// AdjustCardsCount adds delta to the deck's cards_count.
func (r *Repo) AdjustCardsCount(ctx context.Context, id uuid.UUID, delta int) (*domain.FlashcardDeck, error) {
	b := postgres.Builder().
		Update(decksTable).
		Set("cards_count", squirrel.Expr("cards_count + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(deckColumns...))

	d, err := scanDeck(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard_deck", id)
	}
	return d, nil
}

// DeleteDeck removes a deck and, by cascade, its cards.
func (r *Repo) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(decksTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "flashcard_deck", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "flashcard_deck", id)
	}
	return nil
}

// CreateCards inserts cards into a deck in one batch, appending after
// the current last position.
func (r *Repo) CreateCards(ctx context.Context, deckID uuid.UUID, drafts []domain.FlashcardDraft) ([]domain.Flashcard, error) {
	if len(drafts) == 0 {
		return []domain.Flashcard{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	maxPos := postgres.Builder().
		Select("COALESCE(max(position) + 1, 0)").
		From(cardsTable).
		Where(squirrel.Eq{"deck_id": deckID})
	if err := postgres.QueryRow(ctx, q, maxPos).Scan(&next); err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	batch := &pgx.Batch{}
	for i, d := range drafts {
		sql, args, err := postgres.Builder().
			Insert(cardsTable).
			Columns("deck_id", "question", "answer", "hint", "tags", "position").
			Values(deckID, d.Question, d.Answer, d.Hint, nonNilTags(d.Tags), next+i).
			Suffix(postgres.Returning(cardColumns...)).
			ToSql()
		if err != nil {
			return nil, err
		}
		batch.Queue(sql, args...)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	cards := make([]domain.Flashcard, 0, len(drafts))
	for range drafts {
		c, err := scanCard(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "flashcard", uuid.Nil)
		}
		cards = append(cards, *c)
	}
	return cards, nil
}

// GetCard returns a card by ID.
func (r *Repo) GetCard(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	b := postgres.Builder().Select(cardColumns...).From(cardsTable).Where(squirrel.Eq{"id": id})

	c, err := scanCard(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	return c, nil
}

// ListCards returns the cards of a deck in position order.
func (r *Repo) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	return r.listCards(ctx, squirrel.Eq{"deck_id": deckID})
}

// ListCardsByDeckIDs returns the cards of several decks, used by batch loaders.
func (r *Repo) ListCardsByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) ([]domain.Flashcard, error) {
	if len(deckIDs) == 0 {
		return []domain.Flashcard{}, nil
	}
	return r.listCards(ctx, squirrel.Eq{"deck_id": deckIDs})
}

func (r *Repo) listCards(ctx context.Context, where squirrel.Sqlizer) ([]domain.Flashcard, error) {
	b := postgres.Builder().
		Select(cardColumns...).
		From(cardsTable).
		Where(where).
		OrderBy("position", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}
	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Flashcard, error) {
		c, err := scanCard(row)
		if err != nil {
			return domain.Flashcard{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}
	return cards, nil
}

// UpdateCard writes the editable fields of c.
func (r *Repo) UpdateCard(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	b := postgres.Builder().
		Update(cardsTable).
		Set("question", c.Question).
		Set("answer", c.Answer).
		Set("hint", c.Hint).
		Set("tags", nonNilTags(c.Tags)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix(postgres.Returning(cardColumns...))

	updated, err := scanCard(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", c.ID)
	}
	return updated, nil
}

// DeleteCard removes a card.
func (r *Repo) DeleteCard(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(cardsTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "flashcard", id)
	}
	return nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanDeck(row pgx.Row) (*domain.FlashcardDeck, error) {
	var d domain.FlashcardDeck
	if err := row.Scan(&d.ID, &d.OwnerID, &d.DocumentID, &d.Title, &d.CardsCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanCard(row pgx.Row) (*domain.Flashcard, error) {
	var c domain.Flashcard
	if err := row.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.Hint, &c.Tags, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
