// Package ui provides shared terminal output helpers.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light color variants when enabled.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}
