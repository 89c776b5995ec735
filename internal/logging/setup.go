// Package logging builds the slog handlers used by the soundex CLI: a short
// colored format for people at a terminal, plain slog text everywhere else
// and an optional JSON log file, fanned out through MultiHandler.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/isseis/go-soundex/internal/color"
	"github.com/isseis/go-soundex/internal/terminal"
)

const (
	// File permissions for log files
	logFilePerm = 0o600
)

// Error definitions
var (
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrConsoleWriterNeeded = errors.New("console writer is required")
)

// Config holds all configuration for logger setup.
type Config struct {
	Level slog.Level

	// Console receives human readable output, normally os.Stderr.
	Console io.Writer

	// Capabilities of Console, as returned by terminal.Detect.
	Capabilities terminal.Capabilities

	// FilePath, when set, receives JSON records. The file is appended to.
	FilePath string

	// RunID is attached to every record when set.
	RunID string

	// RedactNames masks attributes that carry personal names.
	RedactNames bool
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// Setup creates a logger from cfg. The returned close function releases the
// log file, if any, and must be called before exit.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Console == nil {
		return nil, nil, ErrConsoleWriterNeeded
	}

	var handlers []slog.Handler

	if cfg.Capabilities.Interactive {
		interactiveHandler, err := NewInteractiveHandler(InteractiveHandlerOptions{
			Level:   cfg.Level,
			Writer:  cfg.Console,
			Palette: color.NewPalette(cfg.Capabilities.Color),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create interactive handler: %w", err)
		}
		handlers = append(handlers, interactiveHandler)
	} else {
		handlers = append(handlers, slog.NewTextHandler(cfg.Console, &slog.HandlerOptions{Level: cfg.Level}))
	}

	closeFn := func() error { return nil }
	if cfg.FilePath != "" {
		// #nosec G304 - path comes from the operator's own flags or config
		logF, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(logF, &slog.HandlerOptions{Level: cfg.Level}))
		closeFn = logF.Close
	}

	var handler slog.Handler = NewMultiHandler(handlers...)
	if cfg.RedactNames {
		handler = NewRedactingHandler(handler, nil)
	}
	logger := slog.New(handler)
	if cfg.RunID != "" {
		logger = logger.With(slog.String("run_id", cfg.RunID))
	}
	return logger, closeFn, nil
}
