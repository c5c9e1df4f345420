package plot

import (
	"log/slog"

	"github.com/gogpu/plot/internal/logging"
)

// SetLogger configures the logger for plot and all its sub-packages.
// By default, plot produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by plot:
//   - [slog.LevelDebug]: rejected gestures, failed function evaluations, cache evictions
//   - [slog.LevelInfo]: configuration loaded, view resized
//   - [slog.LevelWarn]: unknown graphs, unusable label font
//
// Example:
//
//	plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by plot.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
