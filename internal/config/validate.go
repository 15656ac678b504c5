package config

import (
	"strings"
	"time"
)

// Minimum and maximum duration constraints.
var (
	minSessionDuration = 1 * time.Minute
	maxSessionDuration = 720 * time.Minute // 12 hours
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateSessionConfig(c.Work, "work"); err != nil {
		return err
	}

	return validateSessionConfig(c.Break, "break")
}

// validateSessionConfig validates an individual SessionConfig.
func validateSessionConfig(sc SessionConfig, sessionType string) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			sessionType,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(sessionType)
	}

	return nil
}
