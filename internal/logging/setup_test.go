package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/isseis/go-soundex/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLogLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_RequiresConsole(t *testing.T) {
	_, _, err := Setup(Config{})
	assert.ErrorIs(t, err, ErrConsoleWriterNeeded)
}

func TestSetup_NonInteractiveUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Setup(Config{Level: slog.LevelInfo, Console: &buf, RunID: "01HXRUN"})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	logger.Info("batch finished", "names", 3)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="batch finished"`)
	assert.Contains(t, out, "run_id=01HXRUN")
	assert.Contains(t, out, "names=3")
	assert.NotContains(t, out, "hidden")
}

func TestSetup_InteractiveUsesShortFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Setup(Config{
		Level:        slog.LevelDebug,
		Console:      &buf,
		Capabilities: terminal.Capabilities{Interactive: true},
	})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	logger.Debug("reading names", "source", "stdin")

	assert.Equal(t, "[DEBUG] reading names source=stdin\n", buf.String())
}

func TestSetup_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soundex.log")

	var buf bytes.Buffer
	logger, closeFn, err := Setup(Config{Level: slog.LevelInfo, Console: &buf, FilePath: path, RunID: "01HXRUN"})
	require.NoError(t, err)

	logger.Info("batch finished", "names", 2)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "batch finished", entry["msg"])
	assert.Equal(t, "01HXRUN", entry["run_id"])
	assert.EqualValues(t, 2, entry["names"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(logFilePerm), info.Mode().Perm())
}

func TestSetup_RedactNames(t *testing.T) {
	for _, redact := range []bool{true, false} {
		var buf bytes.Buffer
		logger, closeFn, err := Setup(Config{Level: slog.LevelDebug, Console: &buf, RedactNames: redact})
		require.NoError(t, err)

		logger.Debug("Names sound alike", "name_a", "Robert")
		require.NoError(t, closeFn())

		if redact {
			assert.Contains(t, buf.String(), "name_a=***")
		} else {
			assert.Contains(t, buf.String(), "name_a=Robert")
		}
	}
}

func TestSetup_BadLogFile(t *testing.T) {
	_, _, err := Setup(Config{Console: &bytes.Buffer{}, FilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.ErrorContains(t, err, "failed to open log file")
}
