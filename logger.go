package scatter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every log record. Enabled reports false, so slog
// never formats messages for it.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger behind an atomic pointer so SetLogger
// may race freely with logging goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger installs the logger the package reports through. The package
// is silent until one is installed; passing nil silences it again.
// SetLogger is safe for concurrent use.
//
// Two levels are emitted: [slog.LevelWarn] when non-finite coordinate pairs
// are dropped during density estimation, and [slog.LevelDebug] for internal
// diagnostics such as the chosen bandwidth factor. Hook the warnings up
// with, for instance:
//
//	scatter.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently installed with SetLogger, or the
// silent default. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
