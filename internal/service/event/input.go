package event

import (
	"strings"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// NewEventInput holds the parameters for recording an event.
type NewEventInput struct {
	Source    string
	Severity  domain.Severity
	Msg       string
	EventHash string
	Duration  *int64
}

// Validate checks all fields and collects all errors.
func (i NewEventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "unknown severity code"})
	}
	if strings.TrimSpace(i.Msg) == "" {
		errs = append(errs, domain.FieldError{Field: "msg", Message: "required"})
	}
	if i.Duration != nil && *i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ViewEventInput holds the optional filters for an event query.
type ViewEventInput struct {
	EventID         *int64
	Source          *string
	Severity        *domain.Severity
	EventHash       *string
	CreationTime    *int64
	MinCreationTime *int64
	MaxCreationTime *int64
	Duration        *int64
	MinDuration     *int64
	MaxDuration     *int64
	OnlyRecent      bool
	Offset          int64
	Count           int64
}

// Validate checks all fields and collects all errors.
func (i ViewEventInput) Validate() error {
	var errs []domain.FieldError

	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "unknown severity code"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must not be negative"})
	}
	if i.MinCreationTime != nil && i.MaxCreationTime != nil && *i.MinCreationTime > *i.MaxCreationTime {
		errs = append(errs, domain.FieldError{Field: "min_creation_time", Message: "must not exceed max_creation_time"})
	}
	if i.MinDuration != nil && i.MaxDuration != nil && *i.MinDuration > *i.MaxDuration {
		errs = append(errs, domain.FieldError{Field: "min_duration", Message: "must not exceed max_duration"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
