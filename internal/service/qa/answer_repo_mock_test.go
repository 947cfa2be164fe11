package qa

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"sync"
)

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	CreateFunc            func(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	ListByQuestionIDsFunc func(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Answer
		}
		ListByQuestionIDs []struct {
			Ctx         context.Context
			QuestionIDs []uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockListByQuestionIDs sync.RWMutex
}

func (mock *answerRepoMock) Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	if mock.CreateFunc == nil {
		panic("answerRepoMock.CreateFunc: method is nil but answerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Answer
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *answerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Answer
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.Answer
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *answerRepoMock) ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error) {
	if mock.ListByQuestionIDsFunc == nil {
		panic("answerRepoMock.ListByQuestionIDsFunc: method is nil but answerRepo.ListByQuestionIDs was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		QuestionIDs []uuid.UUID
	}{
		Ctx:         ctx,
		QuestionIDs: questionIDs,
	}
	mock.lockListByQuestionIDs.Lock()
	mock.calls.ListByQuestionIDs = append(mock.calls.ListByQuestionIDs, callInfo)
	mock.lockListByQuestionIDs.Unlock()
	return mock.ListByQuestionIDsFunc(ctx, questionIDs)
}

func (mock *answerRepoMock) ListByQuestionIDsCalls() []struct {
	Ctx         context.Context
	QuestionIDs []uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		QuestionIDs []uuid.UUID
	}
	mock.lockListByQuestionIDs.RLock()
	calls = mock.calls.ListByQuestionIDs
	mock.lockListByQuestionIDs.RUnlock()
	return calls
}
