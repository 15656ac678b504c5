package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayinde/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is a Pomodoro-technique timer for the command-line. It alternates
		timed work and break sessions and keeps an append-only log of every
		session you complete or interrupt.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "Print the session log",
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
					noColorFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			userFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return pomoApp
}
