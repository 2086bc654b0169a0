package vpath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records, Enabled returns false so that callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by vpath and its renderers. By default nothing is logged, pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: degenerate geometry fallbacks, joins, resampling and fitting statistics
//   - [slog.LevelWarn]: renderer features that are not supported by a backend
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger, it is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
