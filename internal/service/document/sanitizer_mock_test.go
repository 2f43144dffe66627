package document

import (
	"context"
	"sync"
)

var _ sanitizer = &sanitizerMock{}

type sanitizerMock struct {
	SanitizeFunc func(ctx context.Context, in string, out string) error

	calls struct {
		Sanitize []struct {
			Ctx context.Context
			In  string
			Out string
		}
	}
	lockSanitize sync.RWMutex
}

func (mock *sanitizerMock) Sanitize(ctx context.Context, in string, out string) error {
	if mock.SanitizeFunc == nil {
		panic("sanitizerMock.SanitizeFunc: method is nil but sanitizer.Sanitize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  string
		Out string
	}{Ctx: ctx, In: in, Out: out}
	mock.lockSanitize.Lock()
	mock.calls.Sanitize = append(mock.calls.Sanitize, callInfo)
	mock.lockSanitize.Unlock()
	return mock.SanitizeFunc(ctx, in, out)
}

func (mock *sanitizerMock) SanitizeCalls() []struct {
	Ctx context.Context
	In  string
	Out string
} {
	mock.lockSanitize.RLock()
	calls := mock.calls.Sanitize
	mock.lockSanitize.RUnlock()
	return calls
}
