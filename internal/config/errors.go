package config

import (
	"errors"
	"fmt"
)

// Error definitions for the config package
var (
	// ErrInvalidConfigPath is returned when the config file path is empty
	ErrInvalidConfigPath = errors.New("invalid config file path")

	// ErrInvalidConfig is matched by every ValidationError
	ErrInvalidConfig = errors.New("invalid config")

	// ErrWorkersNotPositive is returned for batch.workers below 1
	ErrWorkersNotPositive = errors.New("must be at least 1")
)

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInvalidConfig, e.Field, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}
