package event

import (
	"context"
	"sync"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc    func(ctx context.Context, in domain.NewEvent) (domain.Event, error)
	GetByIDFunc   func(ctx context.Context, id int64) (domain.Event, error)
	GetByHashFunc func(ctx context.Context, hash string) (domain.Event, error)
	ListFunc      func(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  domain.NewEvent
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByHash []struct {
			Ctx  context.Context
			Hash string
		}
		List []struct {
			Ctx context.Context
			F   domain.EventFilter
		}
	}
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockGetByHash sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, in domain.NewEvent) (domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.NewEvent
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  domain.NewEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByHash(ctx context.Context, hash string) (domain.Event, error) {
	if mock.GetByHashFunc == nil {
		panic("eventRepoMock.GetByHashFunc: method is nil but eventRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Hash string
	}{Ctx: ctx, Hash: hash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, hash)
}

func (mock *eventRepoMock) GetByHashCalls() []struct {
	Ctx  context.Context
	Hash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.EventFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.EventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
