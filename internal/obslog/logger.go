// Package obslog builds the structured logger the hnswctl CLI hands to the
// index via hnsw.WithLogger, so index lifecycle events (level assignment,
// entry-point changes, degree-cap prunes) are written at the level and in
// the format chosen by the CLI's --log-level and --log-format flags.
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// Config controls the logger's verbosity and encoding.
type Config struct {
	// Level is the minimum level that will be emitted.
	Level slog.Level
	// Format is "json" or "text".
	Format string
	// Output is where log records are written; defaults to stderr.
	Output io.Writer
	// AddSource adds the calling file and line to each record.
	AddSource bool
}

// DefaultConfig returns a quiet, human-readable default suitable for
// interactive CLI use.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// New builds a logger from cfg. A zero-value Format falls back to "text".
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}
