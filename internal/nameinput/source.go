// Package nameinput collects the names handed to the encoder: from command
// line arguments, a file or standard input, one name per line.
package nameinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath selects standard input as the names file.
const StdinPath = "-"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrNoInput is returned when no source yields a single name.
var ErrNoInput = errors.New("no names to encode")

// Options controls how raw names are cleaned up before encoding.
type Options struct {
	// Trim removes surrounding whitespace. The encoder itself never trims.
	Trim bool

	// FoldDiacritics strips accents, see FoldDiacritics.
	FoldDiacritics bool
}

// Source reads names.
type Source struct {
	opts  Options
	stdin io.Reader
	open  func(string) (io.ReadCloser, error)
}

// NewSource creates a Source reading standard input from stdin.
func NewSource(opts Options, stdin io.Reader) *Source {
	return &Source{
		opts:  opts,
		stdin: stdin,
		open: func(path string) (io.ReadCloser, error) {
			// #nosec G304 - the operator names the file to read
			return os.Open(path)
		},
	}
}

// Collect gathers names from args, then from the file at path. With no args
// and no path, names are read from stdin.
//
// Arguments are taken as given apart from Clean, so an explicit "" argument
// is kept and encodes to an empty code. Blank lines and lines starting with
// '#' are skipped when reading files.
func (s *Source) Collect(args []string, path string) ([]string, error) {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		names = append(names, s.Clean(arg))
	}

	switch {
	case path == StdinPath:
		fromStdin, err := s.ReadFrom(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read names from stdin: %w", err)
		}
		names = append(names, fromStdin...)
	case path != "":
		fromFile, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		names = append(names, fromFile...)
	case len(args) == 0:
		fromStdin, err := s.ReadFrom(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read names from stdin: %w", err)
		}
		names = append(names, fromStdin...)
	}

	if len(names) == 0 {
		return nil, ErrNoInput
	}
	return names, nil
}

// ReadFrom reads one name per line from r.
func (s *Source) ReadFrom(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var names []string
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		names = append(names, s.Clean(strings.TrimSuffix(line, "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Clean applies the configured trimming and folding to one name.
func (s *Source) Clean(name string) string {
	if s.opts.Trim {
		name = strings.TrimSpace(name)
	}
	if s.opts.FoldDiacritics {
		name = FoldDiacritics(name)
	}
	return name
}

func (s *Source) readFile(path string) ([]string, error) {
	f, err := s.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open names file: %w", err)
	}
	defer func() { _ = f.Close() }()

	names, err := s.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read names from %s: %w", path, err)
	}
	return names, nil
}
