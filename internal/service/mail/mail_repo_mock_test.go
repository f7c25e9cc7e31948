package mail

import (
	"context"
	"sync"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

var _ mailRepo = &mailRepoMock{}

type mailRepoMock struct {
	CreateFunc  func(ctx context.Context, in domain.NewMail) (domain.Mail, error)
	GetByIDFunc func(ctx context.Context, id int64) (domain.Mail, error)
	ListFunc    func(ctx context.Context, f domain.MailFilter) ([]domain.Mail, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  domain.NewMail
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.MailFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *mailRepoMock) Create(ctx context.Context, in domain.NewMail) (domain.Mail, error) {
	if mock.CreateFunc == nil {
		panic("mailRepoMock.CreateFunc: method is nil but mailRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.NewMail
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *mailRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  domain.NewMail
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mailRepoMock) GetByID(ctx context.Context, id int64) (domain.Mail, error) {
	if mock.GetByIDFunc == nil {
		panic("mailRepoMock.GetByIDFunc: method is nil but mailRepo.GetByID was just called")
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

func (mock *mailRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mailRepoMock) List(ctx context.Context, f domain.MailFilter) ([]domain.Mail, error) {
	if mock.ListFunc == nil {
		panic("mailRepoMock.ListFunc: method is nil but mailRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.MailFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *mailRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.MailFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
