package timer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayinde/pomo/internal/config"
	"github.com/ayinde/pomo/session"
)

// memorySink is an in-memory session log used in place of the bolt client.
type memorySink struct {
	entries []session.LogEntry
}

func (m *memorySink) Append(e *session.LogEntry) error {
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memorySink) Entries() ([]session.LogEntry, error) {
	return m.entries, nil
}

func (m *memorySink) Open() error { return nil }

func (m *memorySink) Close() error { return nil }

var testTime = time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)

func newTestController(name string) (*Controller, *memorySink) {
	cfg := &config.Config{
		Work: config.SessionConfig{
			Duration: 2 * time.Minute,
			Message:  "Focus on your task",
		},
		Break: config.SessionConfig{
			Duration: time.Minute,
			Message:  "Take a breather",
		},
		User: config.UserConfig{
			Name: name,
		},
	}

	sink := &memorySink{}

	c := NewController(sink, cfg)
	c.clock = func() time.Time { return testTime }

	return c, sink
}

func mustStart(t *testing.T, c *Controller) {
	t.Helper()

	if err := c.StartOrPause(); err != nil {
		t.Fatalf("StartOrPause: %v", err)
	}
}

func mustTick(t *testing.T, c *Controller, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
}

func TestStartRequiresUserName(t *testing.T) {
	c, sink := newTestController("")

	err := c.StartOrPause()
	if err == nil {
		t.Fatal("expected a validation error for an empty user name")
	}

	if got := c.Status(); got != session.Idle {
		t.Fatalf("status = %v, want idle", got)
	}

	// no session may have been opened
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if len(sink.entries) != 0 {
		t.Fatalf("log entries = %d, want 0", len(sink.entries))
	}
}

// A whitespace-only name from the config file or --user is as good as no
// name at all.
func TestStartRejectsWhitespaceName(t *testing.T) {
	c, _ := newTestController("   ")

	if err := c.StartOrPause(); err == nil {
		t.Fatal("expected a validation error for a whitespace-only user name")
	}

	if got := c.Status(); got != session.Idle {
		t.Fatalf("status = %v, want idle", got)
	}
}

func TestStartPauseResume(t *testing.T) {
	c, _ := newTestController("ayo")

	mustStart(t, c)

	if got := c.Status(); got != session.Running {
		t.Fatalf("status = %v, want running", got)
	}

	mustTick(t, c, 5)

	if got := c.Remaining(); got != 115 {
		t.Fatalf("remaining = %d, want 115", got)
	}

	mustStart(t, c) // pause

	if got := c.Status(); got != session.Paused {
		t.Fatalf("status = %v, want paused", got)
	}

	// ticks while paused must not advance the countdown
	mustTick(t, c, 10)

	if got := c.Remaining(); got != 115 {
		t.Fatalf("remaining after paused ticks = %d, want 115", got)
	}

	mustStart(t, c) // resume
	mustTick(t, c, 1)

	if got := c.Remaining(); got != 114 {
		t.Fatalf("remaining after resume = %d, want 114", got)
	}
}

func TestWorkCountdownRollsIntoBreak(t *testing.T) {
	c, sink := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 120)

	if got := c.SessionType(); got != session.Break {
		t.Fatalf("session type = %v, want break", got)
	}

	if got := c.Status(); got != session.Running {
		t.Fatalf("status = %v, want running", got)
	}

	if got := c.Remaining(); got != 60 {
		t.Fatalf("remaining = %d, want break duration 60", got)
	}

	want := []session.LogEntry{
		{
			UserName:    "ayo",
			SessionType: session.Work,
			StartTime:   testTime,
			EndTime:     testTime,
			Interrupted: false,
		},
	}

	if diff := cmp.Diff(want, sink.entries); diff != "" {
		t.Fatalf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakRollsBackIntoWork(t *testing.T) {
	c, sink := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 120+60)

	if got := c.SessionType(); got != session.Work {
		t.Fatalf("session type = %v, want work", got)
	}

	if got := c.Remaining(); got != 120 {
		t.Fatalf("remaining = %d, want 120", got)
	}

	if len(sink.entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(sink.entries))
	}

	if got := sink.entries[1].SessionType; got != session.Break {
		t.Fatalf("second entry type = %v, want break", got)
	}
}

func TestInterruptMidSession(t *testing.T) {
	c, sink := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 30)

	if err := c.Interrupt(); err != nil {
		t.Fatalf("Interrupt: %v", err)
	}

	if got := c.Status(); got != session.Idle {
		t.Fatalf("status = %v, want idle", got)
	}

	if got := c.SessionType(); got != session.Work {
		t.Fatalf("session type = %v, want work", got)
	}

	if got := c.Remaining(); got != 120 {
		t.Fatalf("remaining = %d, want work duration 120", got)
	}

	want := []session.LogEntry{
		{
			UserName:    "ayo",
			SessionType: session.Work,
			StartTime:   testTime,
			EndTime:     testTime,
			Interrupted: true,
		},
	}

	if diff := cmp.Diff(want, sink.entries); diff != "" {
		t.Fatalf("log mismatch (-want +got):\n%s", diff)
	}
}

// An interrupted break resets to the work baseline, not to the break that
// was in progress.
func TestInterruptDuringBreakResetsToWork(t *testing.T) {
	c, sink := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 120+10)

	if got := c.SessionType(); got != session.Break {
		t.Fatalf("session type = %v, want break", got)
	}

	if err := c.Interrupt(); err != nil {
		t.Fatalf("Interrupt: %v", err)
	}

	if got := c.SessionType(); got != session.Work {
		t.Fatalf("session type after interrupt = %v, want work", got)
	}

	if got := c.Remaining(); got != 120 {
		t.Fatalf("remaining = %d, want 120", got)
	}

	if len(sink.entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(sink.entries))
	}

	if !sink.entries[1].Interrupted {
		t.Fatal("break entry should be marked interrupted")
	}
}

func TestInterruptWhenIdleIsANoOp(t *testing.T) {
	c, sink := newTestController("ayo")

	if err := c.Interrupt(); err != nil {
		t.Fatalf("Interrupt: %v", err)
	}

	if len(sink.entries) != 0 {
		t.Fatalf("log entries = %d, want 0", len(sink.entries))
	}
}

func TestResetWhenIdleIsANoOp(t *testing.T) {
	c, sink := newTestController("ayo")

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := c.Remaining(); got != 120 {
		t.Fatalf("remaining = %d, want 120", got)
	}

	if len(sink.entries) != 0 {
		t.Fatalf("log entries = %d, want 0", len(sink.entries))
	}
}

func TestResetClosesOpenSession(t *testing.T) {
	c, sink := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 45)
	mustStart(t, c) // pause

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := c.Status(); got != session.Idle {
		t.Fatalf("status = %v, want idle", got)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(sink.entries))
	}

	if !sink.entries[0].Interrupted {
		t.Fatal("entry should be marked interrupted")
	}
}

func TestConfigure(t *testing.T) {
	testCases := []struct {
		name          string
		kind          session.Type
		delta         time.Duration
		ticks         int
		wantRemaining int
		wantDur       time.Duration
	}{
		{
			name:          "editing the active type reloads the countdown",
			kind:          session.Work,
			delta:         DurationStep,
			ticks:         10,
			wantRemaining: 180,
			wantDur:       3 * time.Minute,
		},
		{
			name:          "editing the inactive type leaves the countdown alone",
			kind:          session.Break,
			delta:         DurationStep,
			ticks:         10,
			wantRemaining: 110,
			wantDur:       2 * time.Minute,
		},
		{
			name:          "durations are floor-clamped to one minute",
			kind:          session.Break,
			delta:         -10 * time.Minute,
			ticks:         0,
			wantRemaining: 120,
			wantDur:       time.Minute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestController("ayo")

			mustStart(t, c)
			mustTick(t, c, tc.ticks)

			c.Configure(tc.kind, tc.delta)

			if got := c.Remaining(); got != tc.wantRemaining {
				t.Fatalf("remaining = %d, want %d", got, tc.wantRemaining)
			}

			if got := c.Duration(tc.kind); got != tc.wantDur {
				t.Fatalf("duration = %v, want %v", got, tc.wantDur)
			}
		})
	}
}

// The duration edited mid-countdown must apply to the next session of that
// type when the active one rolls over.
func TestConfigureInactiveTypeAppliesOnRollover(t *testing.T) {
	c, _ := newTestController("ayo")

	mustStart(t, c)
	mustTick(t, c, 10)

	c.Configure(session.Break, DurationStep) // break is now 2m

	mustTick(t, c, 110)

	if got := c.SessionType(); got != session.Break {
		t.Fatalf("session type = %v, want break", got)
	}

	if got := c.Remaining(); got != 120 {
		t.Fatalf("remaining = %d, want updated break duration 120", got)
	}
}
