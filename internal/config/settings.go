package config

import (
	"log/slog"
	"runtime"

	"github.com/isseis/go-soundex/internal/logging"
	"github.com/isseis/go-soundex/internal/output"
	"github.com/isseis/go-soundex/internal/terminal"
)

// Settings is a validated Spec with every default applied.
type Settings struct {
	Trim           bool
	FoldDiacritics bool
	Format         output.Format
	Color          terminal.ColorMode
	Workers        int
	LogLevel       slog.Level
	LogFile        string
	RedactNames    bool
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	return Settings{
		Trim:        true,
		Format:      output.FormatText,
		Color:       terminal.ColorAuto,
		Workers:     runtime.NumCPU(),
		LogLevel:    slog.LevelWarn,
		RedactNames: true,
	}
}

// Resolve validates spec and fills in defaults.
func Resolve(spec *Spec) (Settings, error) {
	s := Default()
	if spec == nil {
		return s, nil
	}

	if spec.Input.Trim != nil {
		s.Trim = *spec.Input.Trim
	}
	if spec.Input.FoldDiacritics != nil {
		s.FoldDiacritics = *spec.Input.FoldDiacritics
	}

	if spec.Output.Format != "" {
		format, err := output.ParseFormat(spec.Output.Format)
		if err != nil {
			return Settings{}, &ValidationError{Field: "output.format", Err: err}
		}
		s.Format = format
	}

	mode, err := terminal.ParseColorMode(spec.Output.Color)
	if err != nil {
		return Settings{}, &ValidationError{Field: "output.color", Err: err}
	}
	s.Color = mode

	if spec.Batch.Workers != nil {
		if *spec.Batch.Workers < 1 {
			return Settings{}, &ValidationError{Field: "batch.workers", Err: ErrWorkersNotPositive}
		}
		s.Workers = *spec.Batch.Workers
	}

	if spec.Log.Level != "" {
		level, err := logging.ParseLevel(spec.Log.Level)
		if err != nil {
			return Settings{}, &ValidationError{Field: "log.level", Err: err}
		}
		s.LogLevel = level
	}
	s.LogFile = spec.Log.File
	if spec.Log.RedactNames != nil {
		s.RedactNames = *spec.Log.RedactNames
	}

	return s, nil
}
