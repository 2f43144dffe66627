package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is a multiple-choice question.
type QuizQuestion struct {
	Question    string
	Options     []string
	AnswerIndex int
	Explanation string
}

// Quiz is a generated set of questions about a document.
type Quiz struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	DocumentID *uuid.UUID
	Level      QuizLevel
	Title      string
	Questions  []QuizQuestion
	Source     QuizSource
	CreatedAt  time.Time
}

func (q *Quiz) Owner() uuid.UUID { return q.OwnerID }

// Grade scores the given answers against the quiz. Answers beyond the
// number of questions are ignored; missing answers count as wrong.
func (q *Quiz) Grade(answers []int) int {
	score := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.AnswerIndex {
			score++
		}
	}
	return score
}

// QuizResult is one submission of answers for a quiz.
type QuizResult struct {
	ID        uuid.UUID
	QuizID    uuid.UUID
	OwnerID   uuid.UUID
	Score     int
	Total     int
	Answers   []int
	CreatedAt time.Time
}

func (r *QuizResult) Owner() uuid.UUID { return r.OwnerID }

// Ratio returns score/total in [0,1].
func (r *QuizResult) Ratio() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// CleanQuestions trims generated questions and drops unusable ones: empty
// text, blank options, fewer than two options or an out-of-range answer.
// At most limit questions are kept; limit <= 0 keeps all.
func CleanQuestions(in []QuizQuestion, limit int) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(in))
	for _, q := range in {
		text := strings.TrimSpace(q.Question)
		opts := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			if o = strings.TrimSpace(o); o != "" {
				opts = append(opts, o)
			}
		}
		if text == "" || len(opts) < 2 || len(opts) != len(q.Options) {
			continue
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(opts) {
			continue
		}
		out = append(out, QuizQuestion{
			Question:    text,
			Options:     opts,
			AnswerIndex: q.AnswerIndex,
			Explanation: strings.TrimSpace(q.Explanation),
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
