// Package log configures the process-wide structured logger.
package log

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init routes slog output to a rotated log file. Logs must never reach
// stdout because the terminal is owned by the timer interface.
func Init(pathToLogFile string) {
	w := &lumberjack.Logger{
		Filename:   pathToLogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(h))
}
