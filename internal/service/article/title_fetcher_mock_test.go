package article

import (
	"context"
	"sync"
)

var _ titleFetcher = &titleFetcherMock{}

type titleFetcherMock struct {
	FetchTitleFunc func(ctx context.Context, rawURL string) (string, error)

	calls struct {
		FetchTitle []struct {
			Ctx    context.Context
			RawURL string
		}
	}
	lockFetchTitle sync.RWMutex
}

func (mock *titleFetcherMock) FetchTitle(ctx context.Context, rawURL string) (string, error) {
	if mock.FetchTitleFunc == nil {
		panic("titleFetcherMock.FetchTitleFunc: method is nil but titleFetcher.FetchTitle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RawURL string
	}{
		Ctx:    ctx,
		RawURL: rawURL,
	}
	mock.lockFetchTitle.Lock()
	mock.calls.FetchTitle = append(mock.calls.FetchTitle, callInfo)
	mock.lockFetchTitle.Unlock()
	return mock.FetchTitleFunc(ctx, rawURL)
}

func (mock *titleFetcherMock) FetchTitleCalls() []struct {
	Ctx    context.Context
	RawURL string
} {
	var calls []struct {
		Ctx    context.Context
		RawURL string
	}
	mock.lockFetchTitle.RLock()
	calls = mock.calls.FetchTitle
	mock.lockFetchTitle.RUnlock()
	return calls
}
