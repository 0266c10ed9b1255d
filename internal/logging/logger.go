// Package logging builds the slog loggers used by the CLI and the batch runner.
// The editdist core never logs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvedit/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level     string
	Format    string
	Output    io.Writer
	AddSource bool
}

// New constructs a slog logger. Empty fields default to info level, console
// format and stderr so stdout stays free for command output.
func New(opts Options) (*slog.Logger, error) {
	level := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.AddSource || level <= slog.LevelDebug,
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	switch format {
	case "", "console":
		return slog.New(slog.NewTextHandler(out, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// NewFromConfig creates a logger from the [log] table.
func NewFromConfig(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Output: out})
	}

	return New(Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
}

// Discard returns a logger that drops everything; handy for library callers and tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
