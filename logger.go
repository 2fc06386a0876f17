package specrend

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. It is never enabled, so the per-sample
// traces in Pipeline cost a single level check when logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is nil until SetLogger installs a logger.
var current atomic.Pointer[slog.Logger]

// SetLogger routes specrend diagnostics to l. Debug records describe
// individual samples (gamut corrections, black results); Info records
// describe registry changes. A nil l silences the package again.
//
// A Pipeline built with [WithLogger] ignores this setting.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a logger that
// discards everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
