package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayinde/pomo/internal/config"
	"github.com/ayinde/pomo/internal/timeutil"
	"github.com/ayinde/pomo/session"
)

type styles struct {
	base   lipgloss.Style
	work   lipgloss.Style
	brk    lipgloss.Style
	main   lipgloss.Style
	hint   lipgloss.Style
	notice lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	hintColor := lipgloss.Color("240")
	if !cfg.Display.DarkTheme {
		hintColor = lipgloss.Color("245")
	}

	return styles{
		base: lipgloss.NewStyle().Padding(1, padding),
		work: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0DB43")).
			Bold(true),
		brk: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#12EAEA")).
			Bold(true),
		main: lipgloss.NewStyle().Bold(true),
		hint: lipgloss.NewStyle().Foreground(hintColor),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")),
	}
}

// sessionTitle renders the heading for the active session type.
func (t *Timer) sessionTitle() string {
	if t.ctrl.SessionType() == session.Work {
		return t.style.work.Render("[Work]") + " " +
			t.Opts.Message(session.Work)
	}

	return t.style.brk.Render("[Break]") + " " +
		t.Opts.Message(session.Break)
}

// statusHint renders the controller status line.
func (t *Timer) statusHint() string {
	switch t.ctrl.Status() {
	case session.Running:
		return t.style.hint.Render(
			fmt.Sprintf("%s is focusing", t.ctrl.UserName()),
		)
	case session.Paused:
		return t.style.hint.Render("[Paused]")
	default:
		return t.style.hint.Render("Press s to start")
	}
}

// durationsHint renders the configured session lengths.
func (t *Timer) durationsHint() string {
	return t.style.hint.Render(
		fmt.Sprintf(
			"work %s · break %s",
			t.ctrl.Duration(session.Work),
			t.ctrl.Duration(session.Break),
		),
	)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.sessionTitle())
	s.WriteString("  ")
	s.WriteString(t.statusHint())
	s.WriteString("\n\n")
	s.WriteString(
		t.style.main.Render(timeutil.Format(t.ctrl.Remaining())),
	)
	s.WriteString("  ")
	s.WriteString(t.durationsHint())
	s.WriteString("\n\n")

	total := t.ctrl.Duration(t.ctrl.SessionType()).Seconds()

	var done float64
	if total > 0 {
		done = 1 - float64(t.ctrl.Remaining())/total
	}

	s.WriteString(t.progress.ViewAs(done))

	if t.notice != "" {
		s.WriteString("\n\n")
		s.WriteString(t.style.notice.Render(t.notice))
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.interrupt,
		defaultKeymap.reset,
		defaultKeymap.workUp,
		defaultKeymap.breakUp,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.nameForm != nil {
		return t.style.base.Render(t.nameForm.View())
	}

	return t.style.base.Render(t.timerView())
}
