package mail

import (
	"context"
	"sync"
)

var _ mailSender = &mailSenderMock{}

type mailSenderMock struct {
	SendFunc func(ctx context.Context, from, to, subject, htmlBody string) error

	calls struct {
		Send []struct {
			Ctx      context.Context
			From     string
			To       string
			Subject  string
			HTMLBody string
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailSenderMock) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	if mock.SendFunc == nil {
		panic("mailSenderMock.SendFunc: method is nil but mailSender.Send was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		From     string
		To       string
		Subject  string
		HTMLBody string
	}{Ctx: ctx, From: from, To: to, Subject: subject, HTMLBody: htmlBody}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, from, to, subject, htmlBody)
}

func (mock *mailSenderMock) SendCalls() []struct {
	Ctx      context.Context
	From     string
	To       string
	Subject  string
	HTMLBody string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
