package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled reports false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger shared by every engine package.
// The engine is silent until a logger is set; nil restores the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: scene mount/unmount transitions, GPU buffer growth
//   - [slog.LevelInfo]: lifecycle events (adapter selected, profiler reports)
//   - [slog.LevelWarn]: recoverable problems (skipped frames, surface loss)
//   - [slog.LevelError]: recovered panics on the render goroutine
//
// Parameters:
//   - l: the logger to install
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// NewTextLogger builds a text logger for command-line tools.
//
// Parameters:
//   - w: the destination, usually os.Stderr
//   - level: one of "debug", "info", "warn", "error" (case-insensitive)
//
// Returns:
//   - *slog.Logger: the logger
//   - error: an error if the level name is unknown
func NewTextLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
