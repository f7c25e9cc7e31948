package mail

import (
	"context"
	"fmt"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// ViewMail returns the stored mail records matching the given filters,
// ordered by mail_id. Absent filters match everything.
func (s *Service) ViewMail(ctx context.Context, input ViewMailInput) ([]domain.Mail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mails, err := s.mails.List(ctx, domain.MailFilter{
		MailID:          input.MailID,
		RequestID:       input.RequestID,
		Topic:           input.Topic,
		Destination:     input.Destination,
		CreationTime:    input.CreationTime,
		MinCreationTime: input.MinCreationTime,
		MaxCreationTime: input.MaxCreationTime,
		Offset:          input.Offset,
		Count:           input.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("list mail: %w", err)
	}

	return mails, nil
}

// GetMail returns a single mail record by its ID.
func (s *Service) GetMail(ctx context.Context, id int64) (domain.Mail, error) {
	if id <= 0 {
		return domain.Mail{}, domain.NewValidationError("mail_id", "must be positive")
	}

	m, err := s.mails.GetByID(ctx, id)
	if err != nil {
		return domain.Mail{}, fmt.Errorf("get mail %d: %w", id, err)
	}

	return m, nil
}
