package domain

import "fmt"

// Severity is the closed set of integer codes an event row may carry.
type Severity int16

const (
	SeverityDebug   Severity = 0
	SeverityInfo    Severity = 1
	SeverityWarning Severity = 2
	SeverityError   Severity = 3
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return fmt.Sprintf("Severity(%d)", int16(s))
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// ParseSeverity converts a stored integer code into a Severity.
// A value outside the known set means the row is corrupted, not that
// some default applies.
func ParseSeverity(code int16) (Severity, error) {
	s := Severity(code)
	if !s.IsValid() {
		return 0, fmt.Errorf("severity code %d out of range: %w", code, ErrCorrupted)
	}
	return s, nil
}

// Event is one immutable log record. EventID and CreationTime are assigned
// by the store at insert. Duration is optional: nil means the event carries
// no duration, which is distinct from a duration of zero.
type Event struct {
	EventID      int64
	CreationTime int64 // unix milliseconds, server-assigned
	Source       string
	Severity     Severity
	Msg          string
	EventHash    string
	Duration     *int64 // milliseconds
}
