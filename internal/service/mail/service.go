package mail

import (
	"context"
	"log/slog"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

type mailRepo interface {
	Create(ctx context.Context, in domain.NewMail) (domain.Mail, error)
	GetByID(ctx context.Context, id int64) (domain.Mail, error)
	List(ctx context.Context, f domain.MailFilter) ([]domain.Mail, error)
}

type mailSender interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}

// Service provides mail submission and query operations.
type Service struct {
	mails  mailRepo
	sender mailSender
	from   string
	log    *slog.Logger
}

// NewService creates a new Mail service. from is the sender address put
// on every outbound message.
func NewService(log *slog.Logger, mails mailRepo, sender mailSender, from string) *Service {
	return &Service{
		mails:  mails,
		sender: sender,
		from:   from,
		log:    log.With("service", "mail"),
	}
}
