package logging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test errors
var (
	errHandler1 = errors.New("handler1 error")
	errHandler2 = errors.New("handler2 error")
)

// mockHandler is a test implementation of slog.Handler
type mockHandler struct {
	mu          *sync.Mutex
	enabled     bool
	records     *[]slog.Record
	attrs       []slog.Attr
	groups      []string
	handleError error
}

func newMockHandler(enabled bool) *mockHandler {
	return &mockHandler{
		mu:      &sync.Mutex{},
		enabled: enabled,
		records: &[]slog.Record{},
	}
}

func (m *mockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return m.enabled
}

func (m *mockHandler) Handle(_ context.Context, r slog.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handleError != nil {
		return m.handleError
	}
	*m.records = append(*m.records, r.Clone())
	return nil
}

func (m *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *m
	clone.attrs = append(append([]slog.Attr{}, m.attrs...), attrs...)
	return &clone
}

func (m *mockHandler) WithGroup(name string) slog.Handler {
	clone := *m
	clone.groups = append(append([]string{}, m.groups...), name)
	return &clone
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(*m.records)
}

func newRecord(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandler_Enabled(t *testing.T) {
	ctx := context.Background()

	assert.False(t, NewMultiHandler().Enabled(ctx, slog.LevelInfo))
	assert.False(t, NewMultiHandler(newMockHandler(false)).Enabled(ctx, slog.LevelInfo))
	assert.True(t, NewMultiHandler(newMockHandler(false), newMockHandler(true)).Enabled(ctx, slog.LevelInfo))
}

func TestMultiHandler_HandleDispatchesToEnabledOnly(t *testing.T) {
	enabled := newMockHandler(true)
	disabled := newMockHandler(false)
	h := NewMultiHandler(enabled, disabled)

	require.NoError(t, h.Handle(context.Background(), newRecord(slog.LevelInfo, "encoded")))

	assert.Equal(t, 1, enabled.count())
	assert.Equal(t, 0, disabled.count())
	assert.Equal(t, 2, h.Len())
}

func TestMultiHandler_HandleJoinsErrors(t *testing.T) {
	h1 := newMockHandler(true)
	h1.handleError = errHandler1
	h2 := newMockHandler(true)
	h2.handleError = errHandler2
	h3 := newMockHandler(true)

	err := NewMultiHandler(h1, h2, h3).Handle(context.Background(), newRecord(slog.LevelError, "failed"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errHandler1)
	assert.ErrorIs(t, err, errHandler2)
	assert.Equal(t, 1, h3.count(), "later handlers still receive the record")
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	inner := newMockHandler(true)
	h := NewMultiHandler(inner)

	withAttrs, ok := h.WithAttrs([]slog.Attr{slog.String("run_id", "01J")}).(*MultiHandler)
	require.True(t, ok)
	got, ok := withAttrs.handlers[0].(*mockHandler)
	require.True(t, ok)
	assert.Equal(t, []slog.Attr{slog.String("run_id", "01J")}, got.attrs)
	assert.Empty(t, inner.attrs, "original handler must not change")

	withGroup, ok := h.WithGroup("batch").(*MultiHandler)
	require.True(t, ok)
	got, ok = withGroup.handlers[0].(*mockHandler)
	require.True(t, ok)
	assert.Equal(t, []string{"batch"}, got.groups)
}
