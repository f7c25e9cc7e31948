// Package domain defines the record types shared by the mail and log
// services, along with the sentinel errors used across all layers.
package domain

// Mail is one immutable send-mail record. MailID and CreationTime are
// assigned by the store at insert; everything else comes from the caller.
type Mail struct {
	MailID       int64
	RequestID    string
	CreationTime int64 // unix milliseconds, server-assigned
	Topic        string
	Destination  string
	Title        string
	Content      string
}
