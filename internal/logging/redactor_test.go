package logging

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactingHandler_MasksNames(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil), nil))

	logger.Info("Names sound alike",
		"name_a", "Robert",
		"name_b", "Rupert",
		"code", "R163",
		"names", 2,
		slog.Group("input", slog.String("surname", "Tymczak"), slog.Int("line", 4)))

	out := buf.String()
	assert.Contains(t, out, "name_a=***")
	assert.Contains(t, out, "name_b=***")
	assert.Contains(t, out, "code=R163")
	assert.Contains(t, out, "names=2", "non-string values are kept")
	assert.Contains(t, out, "input.surname=***")
	assert.Contains(t, out, "input.line=4")
	assert.NotContains(t, out, "Robert")
	assert.NotContains(t, out, "Tymczak")
}

func TestRedactingHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil), nil)).
		With("name", "Pfister", "run_id", "01HX").
		WithGroup("batch")

	logger.Info("encoded", "code", "P236")

	out := buf.String()
	assert.Contains(t, out, "name=***")
	assert.Contains(t, out, "run_id=01HX")
	assert.Contains(t, out, "batch.code=P236")
	assert.NotContains(t, out, "Pfister")
}

func TestRedactingHandler_CustomPatterns(t *testing.T) {
	var buf bytes.Buffer
	patterns := []*regexp.Regexp{regexp.MustCompile(`^who$`)}
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil), patterns))

	logger.Info("x", "who", "Lee", "name", "Lee")

	assert.Contains(t, buf.String(), "who=***")
	assert.Contains(t, buf.String(), "name=Lee")
}

func TestDefaultNamePatterns(t *testing.T) {
	tests := map[string]bool{
		"name":        true,
		"NAME":        true,
		"name_a":      true,
		"input.name":  true,
		"first_name":  true,
		"surname":     true,
		"family_name": true,
		"names":       false,
		"filename":    false,
		"code":        false,
	}

	h := NewRedactingHandler(nil, nil)
	for key, want := range tests {
		assert.Equal(t, want, h.isNameKey(key), key)
	}
}
