package impex

import (
	"context"
	"sync"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetBySiteFunc func(ctx context.Context, site string) (*domain.Profile, error)
	ListFunc      func(ctx context.Context) ([]domain.Profile, error)
	CreateFunc    func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateFunc    func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)

	calls struct {
		GetBySite []struct {
			Site string
		}
		List   []struct{}
		Create []struct {
			P *domain.Profile
		}
		Update []struct {
			P *domain.Profile
		}
	}
	lockGetBySite sync.RWMutex
	lockList      sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *profileRepoMock) GetBySite(ctx context.Context, site string) (*domain.Profile, error) {
	if mock.GetBySiteFunc == nil {
		panic("profileRepoMock.GetBySiteFunc: method is nil but profileRepo.GetBySite was just called")
	}
	callInfo := struct{ Site string }{Site: site}
	mock.lockGetBySite.Lock()
	mock.calls.GetBySite = append(mock.calls.GetBySite, callInfo)
	mock.lockGetBySite.Unlock()
	return mock.GetBySiteFunc(ctx, site)
}

func (mock *profileRepoMock) GetBySiteCalls() []struct{ Site string } {
	mock.lockGetBySite.RLock()
	calls := mock.calls.GetBySite
	mock.lockGetBySite.RUnlock()
	return calls
}

func (mock *profileRepoMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *profileRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct{ P *domain.Profile } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *profileRepoMock) UpdateCalls() []struct{ P *domain.Profile } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

// passthroughTx returns a txManagerMock that just runs the closure.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
