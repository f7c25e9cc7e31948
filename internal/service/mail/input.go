package mail

import (
	"strings"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// NewMailInput holds the parameters for submitting a mail.
type NewMailInput struct {
	RequestID   string
	Topic       string
	Destination string
	Title       string
	Content     string
}

// Validate checks all fields and collects all errors.
func (i NewMailInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RequestID) == "" {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if strings.TrimSpace(i.Destination) == "" {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ViewMailInput holds the optional filters for a mail query.
type ViewMailInput struct {
	MailID          *int64
	RequestID       *string
	Topic           *string
	Destination     *string
	CreationTime    *int64
	MinCreationTime *int64
	MaxCreationTime *int64
	Offset          int64
	Count           int64
}

// Validate checks all fields and collects all errors.
func (i ViewMailInput) Validate() error {
	var errs []domain.FieldError

	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must not be negative"})
	}
	if i.MinCreationTime != nil && i.MaxCreationTime != nil && *i.MinCreationTime > *i.MaxCreationTime {
		errs = append(errs, domain.FieldError{Field: "min_creation_time", Message: "must not exceed max_creation_time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
