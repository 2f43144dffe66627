// Package llm generates flashcards and quiz questions from document text
// through a chat-completion provider (OpenAI or Anthropic).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// Completer sends one system+user prompt pair and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generator turns document text into flashcards and quiz questions.
type Generator struct {
	completer     Completer
	maxInputChars int
	log           *slog.Logger
}

// NewGenerator creates a Generator. Input text longer than maxInputChars runes is truncated.
func NewGenerator(c Completer, maxInputChars int, log *slog.Logger) *Generator {
	return &Generator{
		completer:     c,
		maxInputChars: maxInputChars,
		log:           log.With("adapter", "llm"),
	}
}

// GenerateFlashcards asks for count cards about text.
// Items without a question or answer are dropped; an empty result is an error.
func (g *Generator) GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashcardDraft, error) {
	reply, err := g.completer.Complete(ctx, flashcardSystemPrompt, buildFlashcardPrompt(g.truncate(text), count))
	if err != nil {
		return nil, fmt.Errorf("llm flashcards: %w", err)
	}

	var out flashcardsJSON
	if err := decodeReply(reply, &out); err != nil {
		return nil, fmt.Errorf("llm flashcards: %w", err)
	}

	cards := make([]domain.FlashcardDraft, 0, len(out.Cards))
	for _, c := range out.Cards {
		q, a := strings.TrimSpace(c.Question), strings.TrimSpace(c.Answer)
		if q == "" || a == "" {
			continue
		}
		cards = append(cards, domain.FlashcardDraft{
			Question: q,
			Answer:   a,
			Hint:     strings.TrimSpace(c.Hint),
			Tags:     cleanTags(c.Tags),
		})
		if len(cards) == count {
			break
		}
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("llm flashcards: no usable cards in reply: %w", domain.ErrUnavailable)
	}
	g.log.DebugContext(ctx, "flashcards generated", slog.Int("requested", count), slog.Int("got", len(cards)))
	return cards, nil
}

// GenerateQuiz asks for count multiple-choice questions at the given level.
// Questions with fewer than two options or an out-of-range answer are dropped.
func (g *Generator) GenerateQuiz(ctx context.Context, text string, level domain.QuizLevel, count int) ([]domain.QuizQuestion, error) {
	reply, err := g.completer.Complete(ctx, quizSystemPrompt, buildQuizPrompt(g.truncate(text), level, count))
	if err != nil {
		return nil, fmt.Errorf("llm quiz: %w", err)
	}

	var out quizJSON
	if err := decodeReply(reply, &out); err != nil {
		return nil, fmt.Errorf("llm quiz: %w", err)
	}

	raw := make([]domain.QuizQuestion, len(out.Questions))
	for i, q := range out.Questions {
		raw[i] = domain.QuizQuestion(q)
	}
	questions := domain.CleanQuestions(raw, count)
	if len(questions) == 0 {
		return nil, fmt.Errorf("llm quiz: no usable questions in reply: %w", domain.ErrUnavailable)
	}
	return questions, nil
}

func (g *Generator) truncate(text string) string {
	if g.maxInputChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= g.maxInputChars {
		return text
	}
	return string(runes[:g.maxInputChars])
}

// ---------------------------------------------------------------------------
// Reply parsing
// ---------------------------------------------------------------------------

// flashcardsJSON and quizJSON accept either the documented envelope or a
// bare array of items.
type flashcardsJSON struct {
	Cards []cardJSON `json:"cards"`
}

type cardJSON struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Hint     string   `json:"hint"`
	Tags     []string `json:"tags"`
}

func (f *flashcardsJSON) UnmarshalJSON(b []byte) error {
	if isArray(b) {
		return json.Unmarshal(b, &f.Cards)
	}
	type envelope flashcardsJSON
	return json.Unmarshal(b, (*envelope)(f))
}

type quizJSON struct {
	Questions []questionJSON `json:"questions"`
}

func (q *quizJSON) UnmarshalJSON(b []byte) error {
	if isArray(b) {
		return json.Unmarshal(b, &q.Questions)
	}
	type envelope quizJSON
	return json.Unmarshal(b, (*envelope)(q))
}

type questionJSON struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
}

func isArray(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '['
}

func decodeReply(reply string, v any) error {
	raw, err := extractJSON(reply)
	if err != nil {
		return fmt.Errorf("%w: %w", err, domain.ErrUnavailable)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode reply: %v: %w", err, domain.ErrUnavailable)
	}
	return nil
}

// extractJSON finds the outermost JSON object or array in a string, ignoring
// code fences or prose the model may wrap around it. Whichever opens first wins.
func extractJSON(s string) (string, error) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", fmt.Errorf("no JSON value found in reply")
	}
	closing := "}"
	if s[start] == '[' {
		closing = "]"
	}
	end := strings.LastIndex(s, closing)
	if end <= start {
		return "", fmt.Errorf("no JSON value found in reply")
	}
	return s[start : end+1], nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
