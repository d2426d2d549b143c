// Package logging sets up the bench harness's structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Init creates and sets the package-level default slog logger, writing to
// stderr so it never interleaves with throughput results the harness
// prints to stdout. When json is true, uses JSONHandler; otherwise
// TextHandler for a human reading a terminal.
func Init(json bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// LevelForVerbosity maps the harness's three-value verbosity setting
// ("quiet", "standard", "verbose") to a slog.Level. Unknown values behave
// like "standard".
func LevelForVerbosity(verbosity string) slog.Level {
	switch verbosity {
	case "quiet":
		return slog.LevelWarn
	case "verbose":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
