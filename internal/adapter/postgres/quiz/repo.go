// Package quiz implements Quiz and QuizResult persistence using PostgreSQL.
// Questions and answers are stored as JSONB.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const (
	quizzesTable = "quizzes"
	resultsTable = "quiz_results"
)

var (
	quizColumns   = []string{"id", "owner_id", "document_id", "level", "title", "questions", "source", "created_at"}
	resultColumns = []string{"id", "quiz_id", "owner_id", "score", "total", "answers", "created_at"}
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a quiz and fills in ID and CreatedAt.
func (r *Repo) Create(ctx context.Context, q *domain.Quiz) error {
	questions, err := marshalQuestions(q.Questions)
	if err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	b := postgres.Builder().
		Insert(quizzesTable).
		Columns("owner_id", "document_id", "level", "title", "questions", "source").
		Values(q.OwnerID, q.DocumentID, string(q.Level), q.Title, questions, string(q.Source)).
		Suffix(postgres.Returning("id", "created_at"))

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&q.ID, &q.CreatedAt); err != nil {
		return postgres.MapError(err, "quiz", uuid.Nil)
	}
	return nil
}

// Get returns a quiz by ID.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	b := postgres.Builder().Select(quizColumns...).From(quizzesTable).Where(squirrel.Eq{"id": id})

	q, err := scanQuiz(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return nil, postgres.MapError(err, "quiz", id)
	}
	return q, nil
}

// ListByOwner returns the quizzes of an owner, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quiz, error) {
	b := postgres.Builder().
		Select(quizColumns...).
		From(quizzesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "quiz", uuid.Nil)
	}
	quizzes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Quiz, error) {
		q, err := scanQuiz(row)
		if err != nil {
			return domain.Quiz{}, err
		}
		return *q, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "quiz", uuid.Nil)
	}
	return quizzes, nil
}

// Delete removes a quiz and, by cascade, its results.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(quizzesTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "quiz", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "quiz", id)
	}
	return nil
}

// CreateResult inserts a submitted result.
func (r *Repo) CreateResult(ctx context.Context, res *domain.QuizResult) error {
	answers, err := json.Marshal(nonNilAnswers(res.Answers))
	if err != nil {
		return fmt.Errorf("quiz_result: marshal answers: %w", err)
	}

	b := postgres.Builder().
		Insert(resultsTable).
		Columns("quiz_id", "owner_id", "score", "total", "answers").
		Values(res.QuizID, res.OwnerID, res.Score, res.Total, answers).
		Suffix(postgres.Returning("id", "created_at"))

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&res.ID, &res.CreatedAt); err != nil {
		return postgres.MapError(err, "quiz_result", uuid.Nil)
	}
	return nil
}

// ListResults returns the results of an owner, optionally for one quiz, newest first.
func (r *Repo) ListResults(ctx context.Context, ownerID uuid.UUID, quizID *uuid.UUID) ([]domain.QuizResult, error) {
	where := squirrel.Eq{"owner_id": ownerID}
	if quizID != nil {
		where["quiz_id"] = *quizID
	}

	b := postgres.Builder().
		Select(resultColumns...).
		From(resultsTable).
		Where(where).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "quiz_result", uuid.Nil)
	}
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuizResult, error) {
		var (
			res     domain.QuizResult
			answers []byte
		)
		if err := row.Scan(&res.ID, &res.QuizID, &res.OwnerID, &res.Score, &res.Total, &answers, &res.CreatedAt); err != nil {
			return res, err
		}
		if err := json.Unmarshal(answers, &res.Answers); err != nil {
			return res, fmt.Errorf("unmarshal answers: %w", err)
		}
		return res, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "quiz_result", uuid.Nil)
	}
	return results, nil
}

// HasResult reports whether the owner has submitted the quiz at least once.
func (r *Repo) HasResult(ctx context.Context, quizID, ownerID uuid.UUID) (bool, error) {
	b := postgres.Builder().
		Select("1").
		From(resultsTable).
		Where(squirrel.Eq{"quiz_id": quizID, "owner_id": ownerID}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	var exists bool
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "quiz_result", quizID)
	}
	return exists, nil
}

// Stats returns the number of results of an owner and the sum of their score ratios.
func (r *Repo) Stats(ctx context.Context, ownerID uuid.UUID) (count int, ratioSum float64, err error) {
	b := postgres.Builder().
		Select("count(*)", "COALESCE(sum(score::float8 / total), 0)").
		From(resultsTable).
		Where(squirrel.Eq{"owner_id": ownerID})

	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b).Scan(&count, &ratioSum); err != nil {
		return 0, 0, postgres.MapError(err, "quiz_result", uuid.Nil)
	}
	return count, ratioSum, nil
}

// ---------------------------------------------------------------------------
// JSONB helpers
// ---------------------------------------------------------------------------

// questionJSON is the stored shape of a question; domain types carry no json tags.
type questionJSON struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

func marshalQuestions(qs []domain.QuizQuestion) ([]byte, error) {
	out := make([]questionJSON, len(qs))
	for i, q := range qs {
		out[i] = questionJSON(q)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}
	return b, nil
}

func unmarshalQuestions(data []byte) ([]domain.QuizQuestion, error) {
	var in []questionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	out := make([]domain.QuizQuestion, len(in))
	for i, q := range in {
		out[i] = domain.QuizQuestion(q)
	}
	return out, nil
}

func nonNilAnswers(a []int) []int {
	if a == nil {
		return []int{}
	}
	return a
}

func scanQuiz(row pgx.Row) (*domain.Quiz, error) {
	var (
		q             domain.Quiz
		level, source string
		questions     []byte
	)
	if err := row.Scan(&q.ID, &q.OwnerID, &q.DocumentID, &level, &q.Title, &questions, &source, &q.CreatedAt); err != nil {
		return nil, err
	}
	q.Level = domain.QuizLevel(level)
	q.Source = domain.QuizSource(source)

	qs, err := unmarshalQuestions(questions)
	if err != nil {
		return nil, fmt.Errorf("quiz %s: %w", q.ID, err)
	}
	q.Questions = qs
	return &q, nil
}
