package config

import "github.com/ayinde/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}
)
