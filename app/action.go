package app

import (
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayinde/pomo/internal/config"
	"github.com/ayinde/pomo/internal/log"
	"github.com/ayinde/pomo/internal/timeutil"
	"github.com/ayinde/pomo/internal/ui"
	"github.com/ayinde/pomo/session"
	"github.com/ayinde/pomo/store"
	"github.com/ayinde/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// initConfig assembles the layered configuration. The first-run prompt only
// runs ahead of the timer itself, never for auxiliary commands.
func initConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(config.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// defaultAction starts the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := initConfig(ctx, true)
	if err != nil {
		return err
	}

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = dbClient.Close()
	}()

	t, err := timer.New(dbClient, cfg)
	if err != nil {
		return err
	}

	slog.Info("starting timer",
		slog.String("user", cfg.User.Name),
		slog.Duration("work", cfg.Work.Duration),
		slog.Duration("break", cfg.Break.Duration),
	)

	p := tea.NewProgram(t)

	_, err = p.Run()

	return err
}

// historyAction prints the session log, optionally restricted to entries
// started after --since.
func historyAction(ctx *cli.Context) error {
	_, err := initConfig(ctx, false)
	if err != nil {
		return err
	}

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = dbClient.Close()
	}()

	entries, err := dbClient.Entries()
	if err != nil {
		return err
	}

	if since := ctx.String("since"); since != "" {
		startTime, err := timeutil.FromStr(since)
		if err != nil {
			return err
		}

		startTime = timeutil.RoundToStart(startTime)

		filtered := entries[:0]

		for _, e := range entries {
			if !e.StartTime.Before(startTime) {
				filtered = append(filtered, e)
			}
		}

		entries = filtered
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return session.List(entries)
}

// editConfigAction opens the pomo config file in the user's default text
// editor.
func editConfigAction(ctx *cli.Context) error {
	// ensure the config file exists before opening it
	_, err := initConfig(ctx, false)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	log.Init(config.LogFilePath())

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
