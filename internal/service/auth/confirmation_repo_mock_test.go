package auth

import (
	"context"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"sync"
)

var _ confirmationRepo = &confirmationRepoMock{}

type confirmationRepoMock struct {
	CreateFunc        func(ctx context.Context, c *domain.EmailConfirmation) (*domain.EmailConfirmation, error)
	DeleteFunc        func(ctx context.Context, tokenHash string) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)
	GetByHashFunc     func(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.EmailConfirmation
		}
		Delete []struct {
			Ctx       context.Context
			TokenHash string
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteExpired sync.RWMutex
	lockGetByHash     sync.RWMutex
}

func (mock *confirmationRepoMock) Create(ctx context.Context, c *domain.EmailConfirmation) (*domain.EmailConfirmation, error) {
	if mock.CreateFunc == nil {
		panic("confirmationRepoMock.CreateFunc: method is nil but confirmationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.EmailConfirmation
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *confirmationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.EmailConfirmation
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.EmailConfirmation
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *confirmationRepoMock) Delete(ctx context.Context, tokenHash string) error {
	if mock.DeleteFunc == nil {
		panic("confirmationRepoMock.DeleteFunc: method is nil but confirmationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{
		Ctx:       ctx,
		TokenHash: tokenHash,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tokenHash)
}

func (mock *confirmationRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *confirmationRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("confirmationRepoMock.DeleteExpiredFunc: method is nil but confirmationRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *confirmationRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteExpired.RLock()
	calls = mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *confirmationRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error) {
	if mock.GetByHashFunc == nil {
		panic("confirmationRepoMock.GetByHashFunc: method is nil but confirmationRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{
		Ctx:       ctx,
		TokenHash: tokenHash,
	}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *confirmationRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
	}
	mock.lockGetByHash.RLock()
	calls = mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}
