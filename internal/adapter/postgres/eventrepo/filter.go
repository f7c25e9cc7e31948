package eventrepo

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

const (
	defaultCount = 100
	maxCount     = 1000
)

// normalize applies pagination defaults and clamps values.
func normalize(f *domain.EventFilter) {
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
// Columns are qualified with the scan alias "e". An absent (nil) field
// contributes nothing, so it can never exclude a row — severity 0 and
// duration 0 are real filters, distinct from "unfiltered".
func conditions(f domain.EventFilter) sq.And {
	var cond sq.And

	if f.EventID != nil {
		cond = append(cond, sq.Eq{"e.event_id": *f.EventID})
	}
	if f.Source != nil {
		cond = append(cond, sq.Eq{"e.source": *f.Source})
	}
	if f.Severity != nil {
		cond = append(cond, sq.Eq{"e.severity": int16(*f.Severity)})
	}
	if f.EventHash != nil {
		cond = append(cond, sq.Eq{"e.event_hash": *f.EventHash})
	}
	if f.CreationTime != nil {
		cond = append(cond, sq.Eq{"e.creation_time": *f.CreationTime})
	}
	if f.MinCreationTime != nil {
		cond = append(cond, sq.GtOrEq{"e.creation_time": *f.MinCreationTime})
	}
	if f.MaxCreationTime != nil {
		cond = append(cond, sq.LtOrEq{"e.creation_time": *f.MaxCreationTime})
	}
	if f.Duration != nil {
		cond = append(cond, sq.Eq{"e.duration": *f.Duration})
	}
	if f.MinDuration != nil {
		cond = append(cond, sq.GtOrEq{"e.duration": *f.MinDuration})
	}
	if f.MaxDuration != nil {
		cond = append(cond, sq.LtOrEq{"e.duration": *f.MaxDuration})
	}

	return cond
}
