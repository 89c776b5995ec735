package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/isseis/go-soundex/internal/color"
)

// ErrInteractiveHandlerWriterRequired is returned when no writer is given.
var ErrInteractiveHandlerWriterRequired = errors.New("InteractiveHandler: Writer is required")

// InteractiveHandler writes short, human oriented log lines such as
// "! WARN  skipped empty name line=3", colored when the palette allows it.
type InteractiveHandler struct {
	mu      *sync.Mutex
	writer  io.Writer
	palette color.Palette
	level   slog.Leveler
	attrs   []slog.Attr
	groups  []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Leveler

	// Writer is the output destination, typically os.Stderr
	Writer io.Writer

	// Palette colors the level prefix
	Palette color.Palette
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &InteractiveHandler{
		mu:      &sync.Mutex{},
		writer:  opts.Writer,
		palette: opts.Palette,
		level:   level,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes one record.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.formatLevel(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		appendAttr(&sb, "", attr)
	}
	prefix := h.groupPrefix()
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

// WithAttrs returns a new handler with additional attributes. Keys are
// qualified by the groups open at this point.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := h.groupPrefix()
	clone := *h
	clone.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *InteractiveHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *InteractiveHandler) formatLevel(level slog.Level) string {
	if !h.palette.Enabled() {
		switch level {
		case slog.LevelDebug:
			return "[DEBUG]"
		case slog.LevelInfo:
			return "[INFO ]"
		case slog.LevelWarn:
			return "[WARN ]"
		case slog.LevelError:
			return "[ERROR]"
		default:
			return "[" + strings.ToUpper(level.String()) + "]"
		}
	}
	switch level {
	case slog.LevelDebug:
		return color.Gray("* DEBUG")
	case slog.LevelInfo:
		return color.Green("+ INFO ")
	case slog.LevelWarn:
		return color.Yellow("! WARN ")
	case slog.LevelError:
		return color.Red("X ERROR")
	default:
		return color.Gray("> " + level.String())
	}
}

func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(formatValue(attr.Value.Resolve()))
}

func formatValue(value slog.Value) string {
	switch value.Kind() {
	case slog.KindString:
		s := value.String()
		if s == "" || strings.ContainsAny(s, " \t\"=") {
			return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
		}
		return s
	case slog.KindTime:
		return value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return value.Duration().String()
	case slog.KindGroup:
		attrs := value.Group()
		if len(attrs) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			parts = append(parts, attr.Key+"="+formatValue(attr.Value.Resolve()))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return value.String()
	}
}
