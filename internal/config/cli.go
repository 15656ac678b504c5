package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work          string
	Break         string
	User          string
	SessionCmd    string
	DisableNotify bool
}

// WithCLIConfig returns an Option that overrides configuration from CLI
// flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.String("work"),
			Break:         ctx.String("break"),
			User:          ctx.String("user"),
			SessionCmd:    ctx.String("cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Work != "" {
		dur, err := time.ParseDuration(opts.Work)
		if err != nil {
			return errInvalidCLIDuration.Fmt("work", err)
		}

		c.Work.Duration = dur
	}

	if opts.Break != "" {
		dur, err := time.ParseDuration(opts.Break)
		if err != nil {
			return errInvalidCLIDuration.Fmt("break", err)
		}

		c.Break.Duration = dur
	}

	if opts.User != "" {
		c.User.Name = opts.User
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Settings.Notify = false
	}

	return nil
}
