package mailrepo

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

const (
	defaultCount = 100
	maxCount     = 1000
)

// normalize applies pagination defaults and clamps values.
func normalize(f *domain.MailFilter) {
	if f.Count <= 0 {
		f.Count = defaultCount
	}
	if f.Count > maxCount {
		f.Count = maxCount
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// conditions returns the squirrel predicates for all present filter fields.
// An absent (nil) field contributes nothing, so it can never exclude a row.
func conditions(f domain.MailFilter) sq.And {
	var cond sq.And

	if f.MailID != nil {
		cond = append(cond, sq.Eq{"mail_id": *f.MailID})
	}
	if f.RequestID != nil {
		cond = append(cond, sq.Eq{"request_id": *f.RequestID})
	}
	if f.Topic != nil {
		cond = append(cond, sq.Eq{"topic": *f.Topic})
	}
	if f.Destination != nil {
		cond = append(cond, sq.Eq{"destination": *f.Destination})
	}
	if f.CreationTime != nil {
		cond = append(cond, sq.Eq{"creation_time": *f.CreationTime})
	}
	if f.MinCreationTime != nil {
		cond = append(cond, sq.GtOrEq{"creation_time": *f.MinCreationTime})
	}
	if f.MaxCreationTime != nil {
		cond = append(cond, sq.LtOrEq{"creation_time": *f.MaxCreationTime})
	}

	return cond
}
