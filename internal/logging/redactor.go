package logging

import (
	"context"
	"log/slog"
	"regexp"
)

// redactedValue replaces a masked attribute value.
const redactedValue = "***"

// DefaultNamePatterns match attribute keys that carry personal names.
func DefaultNamePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)(^|[._])name(_[a-z0-9]+)?$`),
		regexp.MustCompile(`(?i)(^|[._])(surname|given_name|family_name)$`),
	}
}

// RedactingHandler masks string attributes whose key looks like a personal
// name before forwarding records to the underlying handler.
type RedactingHandler struct {
	handler  slog.Handler
	patterns []*regexp.Regexp
}

// NewRedactingHandler wraps handler. Nil patterns mean DefaultNamePatterns.
func NewRedactingHandler(handler slog.Handler, patterns []*regexp.Regexp) *RedactingHandler {
	if patterns == nil {
		patterns = DefaultNamePatterns()
	}
	return &RedactingHandler{handler: handler, patterns: patterns}
}

// Enabled reports whether the handler handles records at the given level
func (r *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return r.handler.Enabled(ctx, level)
}

// Handle redacts the log record and forwards it to the underlying handler
func (r *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(r.redactAttr(attr))
		return true
	})
	return r.handler.Handle(ctx, newRecord)
}

// WithAttrs returns a new RedactingHandler with the given attributes
func (r *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redactedAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		redactedAttrs = append(redactedAttrs, r.redactAttr(attr))
	}
	return &RedactingHandler{
		handler:  r.handler.WithAttrs(redactedAttrs),
		patterns: r.patterns,
	}
}

// WithGroup returns a new RedactingHandler with the given group name
func (r *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{
		handler:  r.handler.WithGroup(name),
		patterns: r.patterns,
	}
}

func (r *RedactingHandler) redactAttr(attr slog.Attr) slog.Attr {
	value := attr.Value.Resolve()

	switch value.Kind() {
	case slog.KindString:
		if r.isNameKey(attr.Key) {
			return slog.String(attr.Key, redactedValue)
		}
	case slog.KindGroup:
		groupAttrs := value.Group()
		redacted := make([]slog.Attr, 0, len(groupAttrs))
		for _, groupAttr := range groupAttrs {
			redacted = append(redacted, r.redactAttr(groupAttr))
		}
		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(redacted...)}
	}
	return attr
}

func (r *RedactingHandler) isNameKey(key string) bool {
	for _, pattern := range r.patterns {
		if pattern.MatchString(key) {
			return true
		}
	}
	return false
}
