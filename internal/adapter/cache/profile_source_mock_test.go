package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

var _ ProfileSource = &profileSourceMock{}

type profileSourceMock struct {
	GetBySiteFunc func(ctx context.Context, site string) (*domain.Profile, error)
	ListFunc      func(ctx context.Context) ([]domain.Profile, error)
	SearchFunc    func(ctx context.Context, query string, limit int) ([]domain.Profile, error)
	CountFunc     func(ctx context.Context) (int64, error)
	CreateFunc    func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateFunc    func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetBySite []struct {
			Site string
		}
		List   []struct{}
		Search []struct {
			Query string
			Limit int
		}
		Count  []struct{}
		Create []struct {
			P *domain.Profile
		}
		Update []struct {
			P *domain.Profile
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockGetBySite sync.RWMutex
	lockList      sync.RWMutex
	lockSearch    sync.RWMutex
	lockCount     sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *profileSourceMock) GetBySite(ctx context.Context, site string) (*domain.Profile, error) {
	if mock.GetBySiteFunc == nil {
		panic("profileSourceMock.GetBySiteFunc: method is nil but ProfileSource.GetBySite was just called")
	}
	callInfo := struct{ Site string }{Site: site}
	mock.lockGetBySite.Lock()
	mock.calls.GetBySite = append(mock.calls.GetBySite, callInfo)
	mock.lockGetBySite.Unlock()
	return mock.GetBySiteFunc(ctx, site)
}

func (mock *profileSourceMock) GetBySiteCalls() []struct{ Site string } {
	mock.lockGetBySite.RLock()
	calls := mock.calls.GetBySite
	mock.lockGetBySite.RUnlock()
	return calls
}

func (mock *profileSourceMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileSourceMock.ListFunc: method is nil but ProfileSource.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *profileSourceMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileSourceMock) Search(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	if mock.SearchFunc == nil {
		panic("profileSourceMock.SearchFunc: method is nil but ProfileSource.Search was just called")
	}
	callInfo := struct {
		Query string
		Limit int
	}{Query: query, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query, limit)
}

func (mock *profileSourceMock) SearchCalls() []struct {
	Query string
	Limit int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *profileSourceMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("profileSourceMock.CountFunc: method is nil but ProfileSource.Count was just called")
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *profileSourceMock) CountCalls() []struct{} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *profileSourceMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileSourceMock.CreateFunc: method is nil but ProfileSource.Create was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileSourceMock) CreateCalls() []struct{ P *domain.Profile } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileSourceMock) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileSourceMock.UpdateFunc: method is nil but ProfileSource.Update was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *profileSourceMock) UpdateCalls() []struct{ P *domain.Profile } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *profileSourceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("profileSourceMock.DeleteFunc: method is nil but ProfileSource.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *profileSourceMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
