package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	UserName      string
	WorkDuration  int
	BreakDuration int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts on the first run.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		if os.Getenv("POMO_ENV") == "testing" {
			return nil
		}

		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Pomo for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'pomo edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Description("Recorded sessions are attributed to this name").
				Value(&opts.UserName),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.WorkDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.BreakDuration),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the
// configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.User.Name = opts.UserName
	c.Work.Duration = time.Duration(opts.WorkDuration) * time.Minute
	c.Break.Duration = time.Duration(opts.BreakDuration) * time.Minute
}
