// Package session defines work and break sessions and the persisted
// session log.
package session

import "time"

// Type represents the kind of session.
type Type string

const (
	Work  Type = "work"
	Break Type = "break"
)

// Next returns the session type that follows t.
func (t Type) Next() Type {
	if t == Work {
		return Break
	}

	return Work
}

// Status represents the state of the session controller.
type Status int

const (
	Idle Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Duration maps a session type to its countdown length.
type Duration map[Type]time.Duration

// LogEntry is a single closed session in the session log. The log is
// append-only: entries are never edited or removed once written.
type LogEntry struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	UserName    string    `json:"user_name"`
	SessionType Type      `json:"session_type"`
	Interrupted bool      `json:"interrupted"`
}
