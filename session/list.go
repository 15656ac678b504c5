package session

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayinde/pomo/internal/timeutil"
	"github.com/ayinde/pomo/internal/ui"
)

const noEntriesMsg = "No sessions have been recorded yet"

// printLogTable prints a session log table to the command-line.
func printLogTable(w io.Writer, entries []LogEntry) {
	tableBody := make([][]string, len(entries))

	for i := range entries {
		e := entries[i]

		statusText := ui.Green("completed")
		if e.Interrupted {
			statusText = ui.Red("interrupted")
		}

		kind := ui.Cyan("work")
		if e.SessionType == Break {
			kind = ui.Blue("break")
		}

		elapsed := timeutil.Format(
			int(e.EndTime.Sub(e.StartTime).Round(time.Second).Seconds()),
		)

		row := []string{
			fmt.Sprintf("%d", i+1),
			e.UserName,
			kind,
			e.StartTime.Format("Jan 02, 2006 03:04 PM"),
			e.EndTime.Format("Jan 02, 2006 03:04 PM"),
			elapsed,
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "USER", "TYPE", "STARTED", "ENDED", "ELAPSED", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of all the recorded sessions.
func List(entries []LogEntry) error {
	if len(entries) == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	printLogTable(os.Stdout, entries)

	return nil
}
