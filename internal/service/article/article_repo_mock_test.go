package article

import (
	"context"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"sync"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	CreateFunc func(ctx context.Context, title *string, url *string) (*domain.Article, error)
	ListFunc   func(ctx context.Context) ([]domain.Article, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Title *string
			Url   *string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *articleRepoMock) Create(ctx context.Context, title *string, url *string) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title *string
		Url   *string
	}{
		Ctx:   ctx,
		Title: title,
		Url:   url,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, title, url)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Title *string
	Url   *string
} {
	var calls []struct {
		Ctx   context.Context
		Title *string
		Url   *string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleRepoMock) List(ctx context.Context) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *articleRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
