package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

type sesAPIMock struct {
	SendEmailFunc func(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)

	calls []*sesv2.SendEmailInput
}

func (m *sesAPIMock) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	m.calls = append(m.calls, params)
	return m.SendEmailFunc(ctx, params, optFns...)
}

func TestSender_Send_BuildsSimpleHTMLMessage(t *testing.T) {
	t.Parallel()

	mock := &sesAPIMock{
		SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
			return &sesv2.SendEmailOutput{}, nil
		},
	}
	s := &Sender{client: mock}

	err := s.Send(context.Background(), "noreply@example.com", "to@example.com", "subject", "<b>hi</b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.calls) != 1 {
		t.Fatalf("SendEmail calls: got %d, want 1", len(mock.calls))
	}
	in := mock.calls[0]
	if got := *in.FromEmailAddress; got != "noreply@example.com" {
		t.Errorf("from: got %q", got)
	}
	if got := in.Destination.ToAddresses; len(got) != 1 || got[0] != "to@example.com" {
		t.Errorf("to: got %v", got)
	}
	if got := *in.Content.Simple.Subject.Data; got != "subject" {
		t.Errorf("subject: got %q", got)
	}
	if got := *in.Content.Simple.Body.Html.Data; got != "<b>hi</b>" {
		t.Errorf("html body: got %q", got)
	}
	if in.Content.Simple.Body.Text != nil {
		t.Error("text body must not be set")
	}
}

func TestSender_Send_ProviderFailureIsDeliveryError(t *testing.T) {
	t.Parallel()

	mock := &sesAPIMock{
		SendEmailFunc: func(ctx context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
			return nil, errors.New("throttled")
		},
	}
	s := &Sender{client: mock}

	err := s.Send(context.Background(), "a@b.com", "c@d.com", "s", "b")
	if !errors.Is(err, domain.ErrDelivery) {
		t.Fatalf("got %v, want ErrDelivery", err)
	}
}
