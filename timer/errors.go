package timer

import "github.com/ayinde/pomo/internal/apperr"

var (
	errNameRequired = &apperr.Error{
		Message: "enter a name before starting a session",
	}

	errInvalidSessionCmd = &apperr.Error{
		Message: "unable to parse the session command",
	}
)
