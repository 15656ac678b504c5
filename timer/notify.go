package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayinde/pomo/session"
)

// postSession runs after a session completes naturally and the controller
// has rolled into the next one: it raises a desktop notification and runs
// the user's session hook, if any.
func (t *Timer) postSession(finished session.Type) {
	slog.Info("session completed",
		slog.String("user", t.ctrl.UserName()),
		slog.String("type", string(finished)),
	)

	if t.Opts.Settings.Notify {
		title := "Work session is finished"
		if finished == session.Break {
			title = "Break is finished"
		}

		msg := t.Opts.Message(t.ctrl.SessionType())

		err := beeep.Notify(title, msg, "")
		if err != nil {
			slog.Error("unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	err := t.runSessionCmd(t.Opts.Settings.Cmd)
	if err != nil {
		slog.Error("session command failed", slog.Any("error", err))
	}
}

// runSessionCmd executes the specified command.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errInvalidSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
