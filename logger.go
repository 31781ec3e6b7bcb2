package fontinfo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that drops every record. Enabled reports
// false so callers skip attribute formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. It is swapped atomically so SetLogger
// may race with measurement passes running on timer goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by fontinfo and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by fontinfo:
//   - [slog.LevelDebug]: individual measurements and monitor passes
//   - [slog.LevelInfo]: clamped entries that stabilised
//   - [slog.LevelWarn]: degenerate measurements (font not loaded yet)
//
// Example:
//
//	fontinfo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by fontinfo.
// Measurement backends call this so that one SetLogger call configures
// the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
