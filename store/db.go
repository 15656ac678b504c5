package store

import (
	"github.com/ayinde/pomo/session"
)

// DB is the session log storage interface.
type DB interface {
	// Append adds an entry to the end of the session log. The log is
	// append-only: existing entries are never modified.
	Append(entry *session.LogEntry) error
	// Entries returns the session log in insertion order. A missing or
	// unreadable log yields an empty slice, not an error.
	Entries() ([]session.LogEntry, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
