// Package testutil provides helpers shared by tests: loggers and fixture files.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Entry is one recorded log record with its attributes flattened to strings.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder keeps every record logged through its logger.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns a debug-level logger whose records can be inspected.
func NewRecorder() (*slog.Logger, *Recorder) {
	rec := &Recorder{}
	return slog.New(&recordHandler{rec: rec}), rec
}

// Entries returns a copy of the recorded entries in logging order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Messages returns the recorded messages in logging order.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

type recordHandler struct {
	rec   *Recorder
	attrs []slog.Attr
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	h.rec.entries = append(h.rec.entries, Entry{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

func (h *recordHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordHandler{rec: h.rec, attrs: append(slices.Clip(h.attrs), attrs...)}
}

// WithGroup is a no-op: recorded attributes are flat.
func (h *recordHandler) WithGroup(string) slog.Handler { return h }

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
