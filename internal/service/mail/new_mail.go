package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// NewMail delivers a message through the configured backend and records
// it. Delivery happens first: if the backend refuses the message no row
// is written. If the record insert fails after a successful delivery the
// error is still returned, because a mail that is not in the store never
// happened as far as callers are concerned.
func (s *Service) NewMail(ctx context.Context, input NewMailInput) (domain.Mail, error) {
	if err := input.Validate(); err != nil {
		return domain.Mail{}, err
	}

	to := strings.TrimSpace(input.Destination)
	title := strings.TrimSpace(input.Title)

	if err := s.sender.Send(ctx, s.from, to, title, input.Content); err != nil {
		return domain.Mail{}, fmt.Errorf("send mail: %w", err)
	}

	m, err := s.mails.Create(ctx, domain.NewMail{
		RequestID:   strings.TrimSpace(input.RequestID),
		Topic:       strings.TrimSpace(input.Topic),
		Destination: to,
		Title:       title,
		Content:     input.Content,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "mail delivered but not recorded",
			slog.String("request_id", input.RequestID),
			slog.String("destination", to),
			slog.Any("error", err),
		)
		return domain.Mail{}, fmt.Errorf("record mail: %w", err)
	}

	s.log.InfoContext(ctx, "mail sent",
		slog.Int64("mail_id", m.MailID),
		slog.String("request_id", m.RequestID),
		slog.String("destination", m.Destination),
	)

	return m, nil
}
