package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyWorkDuration  = "work.duration"
	keyWorkMessage   = "work.message"
	keyBreakDuration = "break.duration"
	keyBreakMessage  = "break.message"
	keyUserName      = "user.name"
	keyNotify        = "settings.notify"
	keySessionCmd    = "settings.cmd"
	keyDarkTheme     = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// config file, writing one with the current values first if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper seeds Viper with the values already present on the Config so
// that a first run (including prompted preferences) produces a complete
// config file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkDuration, c.Work.Duration.String())
	v.SetDefault(keyWorkMessage, c.Work.Message)
	v.SetDefault(keyBreakDuration, c.Break.Duration.String())
	v.SetDefault(keyBreakMessage, c.Break.Message)
	v.SetDefault(keyUserName, c.User.Name)
	v.SetDefault(keyNotify, c.Settings.Notify)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	workDur, err := parseDuration(v.GetString(keyWorkDuration))
	if err != nil {
		return fmt.Errorf("invalid work duration: %w", err)
	}

	breakDur, err := parseDuration(v.GetString(keyBreakDuration))
	if err != nil {
		return fmt.Errorf("invalid break duration: %w", err)
	}

	c.Work.Duration = workDur
	c.Work.Message = v.GetString(keyWorkMessage)
	c.Break.Duration = breakDur
	c.Break.Message = v.GetString(keyBreakMessage)
	c.User.Name = v.GetString(keyUserName)
	c.Settings.Notify = v.GetBool(keyNotify)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)

	return nil
}

// parseDuration parses duration strings, treating a bare number as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
