package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// timeLayout is the timestamp format used in file log lines.
const timeLayout = "2006-01-02 15:04:05"

// pipeHandler is a slog.Handler that writes pipe-separated lines:
//
//	2025-01-02 15:04:05 | INFO | main.go:42 | message key=value
type pipeHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func newPipeHandler(w io.Writer, level slog.Level) *pipeHandler {
	return &pipeHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *pipeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *pipeHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteString(" | ")
	b.WriteString(r.Level.String())
	b.WriteString(" | ")
	b.WriteString(source(r.PC))
	b.WriteString(" | ")
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value.Resolve().Any())
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *pipeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *pipeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// source resolves a record's program counter to "file.go:line".
func source(pc uintptr) string {
	if pc == 0 {
		return "?:0"
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return "?:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

// Console fallback ------------------------------------------------------------

// Level tags for the console fallback. Colors are applied only when stderr is
// a terminal; the color package disables itself otherwise.
var levelTags = map[slog.Level]func() string{
	slog.LevelDebug: func() string { return color.New(color.FgCyan).Sprint("[DEBUG]") },
	slog.LevelInfo:  func() string { return color.New(color.FgGreen).Sprint("[INFO]") },
	slog.LevelWarn:  func() string { return color.New(color.FgYellow).Sprint("[WARN]") },
	slog.LevelError: func() string { return color.New(color.FgRed).Sprint("[ERROR]") },
}

// consoleHandler is the degraded-mode slog.Handler: prefixed plain lines on
// the console, no timestamps or source locations.
type consoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, level slog.Level) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	tag, ok := levelTags[r.Level]
	if !ok {
		tag = func() string { return "[" + r.Level.String() + "]" }
	}

	var b strings.Builder
	b.WriteString(tag())
	b.WriteByte(' ')
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value.Resolve().Any())
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// Compile-time interface assertions.
var (
	_ slog.Handler = (*pipeHandler)(nil)
	_ slog.Handler = (*consoleHandler)(nil)
)
