// Package config loads the optional TOML configuration of the soundex CLI
// and resolves it, with defaults, into Settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader reads and parses configuration files.
type Loader struct {
	readFile func(string) ([]byte, error)
}

// NewLoader creates a loader that reads from the local file system.
func NewLoader() *Loader {
	return NewLoaderWithReader(os.ReadFile)
}

// NewLoaderWithReader creates a loader with a custom file reader.
func NewLoaderWithReader(readFile func(string) ([]byte, error)) *Loader {
	return &Loader{readFile: readFile}
}

// Load reads the file at path and resolves it into Settings.
func (l *Loader) Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, ErrInvalidConfigPath
	}
	content, err := l.readFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	spec, err := Parse(content)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return Resolve(spec)
}

// Parse decodes TOML content. Unknown keys are rejected so that typos do not
// silently fall back to defaults.
func Parse(content []byte) (*Spec, error) {
	var spec Spec
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: unknown keys:\n%s", ErrInvalidConfig, strictErr.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &spec, nil
}
