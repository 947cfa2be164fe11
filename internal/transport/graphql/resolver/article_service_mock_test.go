package resolver

import (
	"context"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/article"
	"sync"
)

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	CreateFunc      func(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	ListFunc        func(ctx context.Context) ([]domain.Article, error)
	ListGroupedFunc func(ctx context.Context) ([]domain.ArticleGroup, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input article.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		ListGrouped []struct {
			Ctx context.Context
		}
	}
	lockCreate      sync.RWMutex
	lockList        sync.RWMutex
	lockListGrouped sync.RWMutex
}

func (mock *articleServiceMock) Create(ctx context.Context, input article.CreateInput) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleServiceMock.CreateFunc: method is nil but articleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *articleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input article.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleServiceMock) List(ctx context.Context) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleServiceMock.ListFunc: method is nil but articleService.List was just called")
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

func (mock *articleServiceMock) ListCalls() []struct {
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

func (mock *articleServiceMock) ListGrouped(ctx context.Context) ([]domain.ArticleGroup, error) {
	if mock.ListGroupedFunc == nil {
		panic("articleServiceMock.ListGroupedFunc: method is nil but articleService.ListGrouped was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListGrouped.Lock()
	mock.calls.ListGrouped = append(mock.calls.ListGrouped, callInfo)
	mock.lockListGrouped.Unlock()
	return mock.ListGroupedFunc(ctx)
}

func (mock *articleServiceMock) ListGroupedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListGrouped.RLock()
	calls = mock.calls.ListGrouped
	mock.lockListGrouped.RUnlock()
	return calls
}
