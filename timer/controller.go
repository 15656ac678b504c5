// Package timer operates the Pomo countdown timer and records closed
// sessions to the session log
package timer

import (
	"strings"
	"time"

	"github.com/ayinde/pomo/internal/config"
	"github.com/ayinde/pomo/session"
	"github.com/ayinde/pomo/store"
)

// minDuration is the floor for a configured session length. Duration edits
// move in steps of DurationStep and clamp here.
const (
	minDuration  = time.Minute
	DurationStep = time.Minute
)

// Controller owns the countdown state machine. It alternates work and break
// sessions, and every session closure, natural or interrupted, funnels
// through a single path that appends one entry to the session log.
//
// The controller is single-threaded by design: all operations must be
// invoked from the same event loop that delivers Tick.
type Controller struct {
	db        store.DB
	clock     func() time.Time
	durations session.Duration
	userName  string
	sessStart time.Time // zero while no session is open
	status    session.Status
	sessType  session.Type
	remaining int // seconds
}

// NewController initialises an idle work-session controller from the
// configured durations.
func NewController(db store.DB, cfg *config.Config) *Controller {
	c := &Controller{
		db:        db,
		clock:     time.Now,
		durations: cfg.Durations(),
		userName:  strings.TrimSpace(cfg.User.Name),
		sessType:  session.Work,
	}

	c.remaining = c.durationSecs(session.Work)

	return c
}

func (c *Controller) durationSecs(name session.Type) int {
	return int(c.durations[name].Seconds())
}

func (c *Controller) Status() session.Status { return c.status }

func (c *Controller) SessionType() session.Type { return c.sessType }

// Remaining reports the seconds left in the active countdown.
func (c *Controller) Remaining() int { return c.remaining }

// Duration reports the configured length for a session type.
func (c *Controller) Duration(name session.Type) time.Duration {
	return c.durations[name]
}

func (c *Controller) UserName() string { return c.userName }

// SetUserName records the name sessions are attributed to.
func (c *Controller) SetUserName(name string) {
	c.userName = strings.TrimSpace(name)
}

// Configure adjusts the duration of the given session type by delta,
// clamped to at least one minute. When the adjusted type matches the active
// session, the running countdown is reloaded immediately.
func (c *Controller) Configure(name session.Type, delta time.Duration) {
	dur := c.durations[name] + delta
	if dur < minDuration {
		dur = minDuration
	}

	c.durations[name] = dur

	if name == c.sessType {
		c.remaining = int(dur.Seconds())
	}
}

// StartOrPause starts the countdown, or toggles it between running and
// paused. Starting requires a user name so that log entries can be
// attributed.
func (c *Controller) StartOrPause() error {
	if c.userName == "" {
		return errNameRequired
	}

	switch c.status {
	case session.Idle:
		if c.sessStart.IsZero() {
			c.sessStart = c.clock()
		}

		c.status = session.Running
	case session.Running:
		c.status = session.Paused
	case session.Paused:
		c.status = session.Running
	}

	return nil
}

// Tick advances the countdown by one second. It only has an effect while
// the controller is running. When the countdown reaches zero the finished
// session is closed as completed and the controller rolls straight into the
// opposite session type using its currently configured duration.
func (c *Controller) Tick() error {
	if c.status != session.Running {
		return nil
	}

	if c.remaining > 0 {
		c.remaining--
	}

	if c.remaining > 0 {
		return nil
	}

	err := c.closeSession(false)
	if err != nil {
		return err
	}

	c.sessType = c.sessType.Next()
	c.sessStart = c.clock()
	c.remaining = c.durationSecs(c.sessType)

	return nil
}

// Interrupt abandons the session in progress, closing it as interrupted.
// It is a no-op when the controller is idle.
func (c *Controller) Interrupt() error {
	if c.status == session.Idle {
		return nil
	}

	return c.abort()
}

// Reset abandons any session in progress and restores the idle work-session
// baseline. Unlike Interrupt it may be invoked from any state; with nothing
// open it resets silently without logging an entry.
func (c *Controller) Reset() error {
	return c.abort()
}

func (c *Controller) abort() error {
	err := c.closeSession(true)
	if err != nil {
		return err
	}

	c.status = session.Idle
	c.sessType = session.Work
	c.remaining = c.durationSecs(session.Work)

	return nil
}

// closeSession is the single path through which log entries are produced.
// It requires an open session start and is a no-op without one.
func (c *Controller) closeSession(interrupted bool) error {
	if c.sessStart.IsZero() {
		return nil
	}

	entry := &session.LogEntry{
		UserName:    c.userName,
		SessionType: c.sessType,
		StartTime:   c.sessStart,
		EndTime:     c.clock(),
		Interrupted: interrupted,
	}

	err := c.db.Append(entry)
	if err != nil {
		return err
	}

	c.sessStart = time.Time{}

	return nil
}
