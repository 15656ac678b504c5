package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work session duration (e.g. '25m')",
	}

	breakFlag = &cli.StringFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break session duration (e.g. '5m')",
	}

	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "The name recorded sessions are attributed to",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions started after this time (e.g. 'today', '3 days ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the session log as JSON",
	}
)
