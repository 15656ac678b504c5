package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayinde/pomo/internal/config"
	"github.com/ayinde/pomo/store"
)

const (
	padding  = 2
	maxWidth = 80
)

// tickMsg is one beat of the countdown source. The sequence number
// identifies the tick stream it belongs to so that beats from a stream that
// was cancelled by a pause, interrupt, or reset are discarded instead of
// driving the countdown twice.
type tickMsg struct {
	seq int
}

// Timer is the interactive timer interface. It owns the session controller
// and delivers one tick per second to it while the countdown runs.
type Timer struct {
	ctrl     *Controller
	Opts     *config.Config
	help     help.Model
	progress progress.Model
	style    styles
	nameForm *huh.Form
	nameVal  string
	notice   string
	tickSeq  int
}

// tick schedules the next beat of the stream identified by seq.
func tick(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// armTick starts a fresh tick stream, implicitly cancelling any stream
// armed earlier.
func (t *Timer) armTick() tea.Cmd {
	t.tickSeq++

	return tick(t.tickSeq)
}

func (t *Timer) Init() tea.Cmd {
	if t.nameForm != nil {
		return t.nameForm.Init()
	}

	return nil
}

// New creates a new interactive timer.
func New(dbClient store.DB, cfg *config.Config) (*Timer, error) {
	t := &Timer{
		ctrl: NewController(dbClient, cfg),
		Opts: cfg,
		help: help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
		),
		style: newStyles(cfg),
	}

	// the controller refuses to start without a name, so collect one up
	// front when the config carries none
	if cfg.User.Name == "" {
		t.nameForm = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What's your name?").
					Description("Recorded sessions are attributed to this name").
					Value(&t.nameVal),
			),
		)
	}

	return t, nil
}
