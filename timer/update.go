package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayinde/pomo/session"
)

// handleTick processes one beat of the countdown source.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// beats from a cancelled stream, or beats that arrive after the
	// countdown stopped, are dropped without re-arming
	if msg.seq != t.tickSeq || t.ctrl.Status() != session.Running {
		return t, nil
	}

	prev := t.ctrl.SessionType()

	err := t.ctrl.Tick()
	if err != nil {
		slog.Error("recording session failed", slog.Any("error", err))

		t.notice = err.Error()

		return t, tick(t.tickSeq)
	}

	if t.ctrl.SessionType() != prev {
		t.postSession(prev)
	}

	return t, tick(t.tickSeq)
}

// handleNameForm routes input to the startup name form until it completes.
// Only ctrl+c quits here, so that typed names may contain the letter "q".
func (t *Timer) handleNameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}
	}

	form, cmd := t.nameForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.nameForm = f
	}

	if t.nameForm.State == huh.StateCompleted {
		t.ctrl.SetUserName(t.nameVal)
		t.nameForm = nil

		return t, nil
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.notice = ""

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		err := t.ctrl.StartOrPause()
		if err != nil {
			t.notice = err.Error()

			return t, nil
		}

		if t.ctrl.Status() == session.Running {
			return t, t.armTick()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.interrupt):
		err := t.ctrl.Interrupt()
		if err != nil {
			t.notice = err.Error()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.reset):
		err := t.ctrl.Reset()
		if err != nil {
			t.notice = err.Error()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.workUp):
		t.ctrl.Configure(session.Work, DurationStep)
		return t, nil

	case key.Matches(msg, defaultKeymap.workDown):
		t.ctrl.Configure(session.Work, -DurationStep)
		return t, nil

	case key.Matches(msg, defaultKeymap.breakUp):
		t.ctrl.Configure(session.Break, DurationStep)
		return t, nil

	case key.Matches(msg, defaultKeymap.breakDown):
		t.ctrl.Configure(session.Break, -DurationStep)
		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.nameForm != nil {
		return t.handleNameForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
