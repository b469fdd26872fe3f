// Package logging holds the logger shared by the wirepipe packages.
//
// Nothing is logged by default. The line pipeline itself never logs; the
// model loader, wireframe helpers and the viewer do.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger. Pass nil to restore silence.
//
// Levels:
//   - [slog.LevelDebug]: per-model and per-frame details (edges loaded, meshes culled)
//   - [slog.LevelInfo]: viewer lifecycle (mode selected, snapshot written)
//   - [slog.LevelWarn]: skipped input (unsupported glTF primitives)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
