// Package config is responsible for assembling the program configuration
// from the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/ayinde/pomo/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work     SessionConfig
		Break    SessionConfig
		User     UserConfig
		Settings Settings
		Display  DisplayConfig
	}

	// SessionConfig holds the settings for one session type.
	SessionConfig struct {
		Duration time.Duration
		Message  string
	}

	// UserConfig identifies the person sessions are recorded for.
	UserConfig struct {
		Name string
	}

	// Settings holds behavioral settings.
	Settings struct {
		Cmd    string
		Notify bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

var (
	configDir      = "pomo"
	configFileName = "config.yml"
	dbFileName     = "pomo.db"
	logFileName    = "pomo.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the XDG locations for the config file, the
// session database, and the log file. POMO_ENV suffixes the file names so
// that development and test data stay isolated.
func InitializePaths() {
	pomoEnv := strings.TrimSpace(os.Getenv("POMO_ENV"))
	if pomoEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pomoEnv)
		dbFileName = fmt.Sprintf("pomo_%s.db", pomoEnv)
		logFileName = fmt.Sprintf("pomo_%s.log", pomoEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath, err = xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath = filepath.Join(filepath.Dir(dbFilePath), "log", logFileName)
}

// Durations maps each session type to its configured countdown length.
func (c *Config) Durations() session.Duration {
	return session.Duration{
		session.Work:  c.Work.Duration,
		session.Break: c.Break.Duration,
	}
}

// Message returns the prompt message for the given session type.
func (c *Config) Message(name session.Type) string {
	if name == session.Work {
		return c.Work.Message
	}

	return c.Break.Message
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Work: SessionConfig{
			Duration: DefaultWorkDuration,
			Message:  "Focus on your task",
		},
		Break: SessionConfig{
			Duration: DefaultBreakDuration,
			Message:  "Take a breather",
		},
		Settings: Settings{
			Notify: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
