package flashcard

import (
	"context"
	"sync"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFlashcardsFunc func(ctx context.Context, text string, count int) ([]domain.FlashcardDraft, error)

	calls struct {
		GenerateFlashcards []struct {
			Ctx   context.Context
			Text  string
			Count int
		}
	}
	lockGenerateFlashcards sync.RWMutex
}

func (mock *generatorMock) GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashcardDraft, error) {
	if mock.GenerateFlashcardsFunc == nil {
		panic("generatorMock.GenerateFlashcardsFunc: method is nil but generator.GenerateFlashcards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Text  string
		Count int
	}{Ctx: ctx, Text: text, Count: count}
	mock.lockGenerateFlashcards.Lock()
	mock.calls.GenerateFlashcards = append(mock.calls.GenerateFlashcards, callInfo)
	mock.lockGenerateFlashcards.Unlock()
	return mock.GenerateFlashcardsFunc(ctx, text, count)
}

func (mock *generatorMock) GenerateFlashcardsCalls() []struct {
	Ctx   context.Context
	Text  string
	Count int
} {
	mock.lockGenerateFlashcards.RLock()
	calls := mock.calls.GenerateFlashcards
	mock.lockGenerateFlashcards.RUnlock()
	return calls
}
