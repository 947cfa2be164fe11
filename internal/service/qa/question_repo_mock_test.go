package qa

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"sync"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateFunc        func(ctx context.Context, articleID uuid.UUID, userID uuid.UUID, phrase string, comment *string) (*domain.Question, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListByArticleFunc func(ctx context.Context, articleID uuid.UUID) ([]domain.Question, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			UserID    uuid.UUID
			Phrase    string
			Comment   *string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByArticle []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByArticle sync.RWMutex
}

func (mock *questionRepoMock) Create(ctx context.Context, articleID uuid.UUID, userID uuid.UUID, phrase string, comment *string) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		UserID    uuid.UUID
		Phrase    string
		Comment   *string
	}{
		Ctx:       ctx,
		ArticleID: articleID,
		UserID:    userID,
		Phrase:    phrase,
		Comment:   comment,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, articleID, userID, phrase, comment)
}

func (mock *questionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	UserID    uuid.UUID
	Phrase    string
	Comment   *string
} {
	var calls []struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		UserID    uuid.UUID
		Phrase    string
		Comment   *string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if mock.GetByIDFunc == nil {
		panic("questionRepoMock.GetByIDFunc: method is nil but questionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *questionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *questionRepoMock) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.Question, error) {
	if mock.ListByArticleFunc == nil {
		panic("questionRepoMock.ListByArticleFunc: method is nil but questionRepo.ListByArticle was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{
		Ctx:       ctx,
		ArticleID: articleID,
	}
	mock.lockListByArticle.Lock()
	mock.calls.ListByArticle = append(mock.calls.ListByArticle, callInfo)
	mock.lockListByArticle.Unlock()
	return mock.ListByArticleFunc(ctx, articleID)
}

func (mock *questionRepoMock) ListByArticleCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}
	mock.lockListByArticle.RLock()
	calls = mock.calls.ListByArticle
	mock.lockListByArticle.RUnlock()
	return calls
}
