package domain

// MailFilter contains filtering/pagination parameters for mail scans.
// A nil field imposes no constraint; present fields combine with AND.
// Pointer fields keep "absent" distinct from a zero value.
type MailFilter struct {
	MailID          *int64
	RequestID       *string
	Topic           *string
	Destination     *string
	CreationTime    *int64
	MinCreationTime *int64
	MaxCreationTime *int64

	// Offset is the number of records to skip over the id ordering.
	Offset int64
	// Count is the page size. Default: 100, max: 1000 (applied by the store).
	Count int64
}

// EventFilter contains filtering/pagination parameters for event scans.
type EventFilter struct {
	EventID         *int64
	Source          *string
	Severity        *Severity
	EventHash       *string
	CreationTime    *int64
	MinCreationTime *int64
	MaxCreationTime *int64
	Duration        *int64
	MinDuration     *int64
	MaxDuration     *int64

	// OnlyRecent reduces the scan to the single highest-id row per distinct
	// event_hash before the other predicates apply.
	OnlyRecent bool

	Offset int64
	Count  int64
}

// NewMail carries the caller-supplied fields of a mail record.
type NewMail struct {
	RequestID   string
	Topic       string
	Destination string
	Title       string
	Content     string
}

// NewEvent carries the caller-supplied fields of an event record.
type NewEvent struct {
	Source    string
	Severity  Severity
	Msg       string
	EventHash string
	Duration  *int64
}
