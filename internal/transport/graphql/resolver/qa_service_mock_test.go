package resolver

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
	"sync"
)

var _ qaService = &qaServiceMock{}

type qaServiceMock struct {
	ArticleDetailFunc func(ctx context.Context, articleID uuid.UUID) (*domain.ArticleDetail, error)
	AskQuestionFunc   func(ctx context.Context, input qa.AskQuestionInput) (*domain.Question, error)
	PostAnswerFunc    func(ctx context.Context, input qa.PostAnswerInput) (*domain.Answer, error)

	calls struct {
		ArticleDetail []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
		AskQuestion []struct {
			Ctx   context.Context
			Input qa.AskQuestionInput
		}
		PostAnswer []struct {
			Ctx   context.Context
			Input qa.PostAnswerInput
		}
	}
	lockArticleDetail sync.RWMutex
	lockAskQuestion   sync.RWMutex
	lockPostAnswer    sync.RWMutex
}

func (mock *qaServiceMock) ArticleDetail(ctx context.Context, articleID uuid.UUID) (*domain.ArticleDetail, error) {
	if mock.ArticleDetailFunc == nil {
		panic("qaServiceMock.ArticleDetailFunc: method is nil but qaService.ArticleDetail was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{
		Ctx:       ctx,
		ArticleID: articleID,
	}
	mock.lockArticleDetail.Lock()
	mock.calls.ArticleDetail = append(mock.calls.ArticleDetail, callInfo)
	mock.lockArticleDetail.Unlock()
	return mock.ArticleDetailFunc(ctx, articleID)
}

func (mock *qaServiceMock) ArticleDetailCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}
	mock.lockArticleDetail.RLock()
	calls = mock.calls.ArticleDetail
	mock.lockArticleDetail.RUnlock()
	return calls
}

func (mock *qaServiceMock) AskQuestion(ctx context.Context, input qa.AskQuestionInput) (*domain.Question, error) {
	if mock.AskQuestionFunc == nil {
		panic("qaServiceMock.AskQuestionFunc: method is nil but qaService.AskQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input qa.AskQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAskQuestion.Lock()
	mock.calls.AskQuestion = append(mock.calls.AskQuestion, callInfo)
	mock.lockAskQuestion.Unlock()
	return mock.AskQuestionFunc(ctx, input)
}

func (mock *qaServiceMock) AskQuestionCalls() []struct {
	Ctx   context.Context
	Input qa.AskQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input qa.AskQuestionInput
	}
	mock.lockAskQuestion.RLock()
	calls = mock.calls.AskQuestion
	mock.lockAskQuestion.RUnlock()
	return calls
}

func (mock *qaServiceMock) PostAnswer(ctx context.Context, input qa.PostAnswerInput) (*domain.Answer, error) {
	if mock.PostAnswerFunc == nil {
		panic("qaServiceMock.PostAnswerFunc: method is nil but qaService.PostAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input qa.PostAnswerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockPostAnswer.Lock()
	mock.calls.PostAnswer = append(mock.calls.PostAnswer, callInfo)
	mock.lockPostAnswer.Unlock()
	return mock.PostAnswerFunc(ctx, input)
}

func (mock *qaServiceMock) PostAnswerCalls() []struct {
	Ctx   context.Context
	Input qa.PostAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input qa.PostAnswerInput
	}
	mock.lockPostAnswer.RLock()
	calls = mock.calls.PostAnswer
	mock.lockPostAnswer.RUnlock()
	return calls
}
