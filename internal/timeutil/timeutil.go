// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// SecsToMinsAndSecs splits a second count into whole minutes and leftover
// seconds.
func SecsToMinsAndSecs(secs int) (mins, remainder int) {
	mins = secs / secondsInAMinute
	remainder = secs % secondsInAMinute

	return
}

// Format renders a non-negative second count as a zero-padded "mm:ss"
// clock. The minutes component is not wrapped at 60.
func Format(secs int) string {
	if secs < 0 {
		secs = 0
	}

	mins, remainder := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", mins, remainder)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses a natural-language date string ("today", "3 days ago",
// "last tuesday") into a concrete time.
func FromStr(str string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dateparser.Parse(cfg, str)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
