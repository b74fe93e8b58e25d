// Package telemetry is the logging seam used by the picker engine, the
// recents store and the CLI.
package telemetry

import (
	"context"

	"goa.design/clue/log"
)

type (
	// Logger records structured messages. keyvals alternate string keys and
	// values.
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Error(msg string, err error, keyvals ...any)
	}

	// ClueLogger delegates to goa.design/clue/log using the context it was
	// built with, which carries format and debug settings.
	ClueLogger struct {
		ctx context.Context
	}

	// NoopLogger discards everything.
	NoopLogger struct{}
)

// NewClueLogger returns a Logger bound to ctx. Configure ctx with
// log.Context, log.WithFormat and log.WithDebug.
func NewClueLogger(ctx context.Context) Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return ClueLogger{ctx: ctx}
}

// NewNoopLogger returns a Logger that discards all messages.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

// Context builds the CLI logging context: terminal format on a TTY, JSON
// otherwise, debug messages only when asked for.
func Context(ctx context.Context, debug bool) context.Context {
	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx = log.Context(ctx, log.WithFormat(format))
	if debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}
	return ctx
}

// Debug emits a debug message.
func (l ClueLogger) Debug(msg string, keyvals ...any) {
	log.Debug(l.ctx, fielders(msg, keyvals)...)
}

// Info emits an info message.
func (l ClueLogger) Info(msg string, keyvals ...any) {
	log.Info(l.ctx, fielders(msg, keyvals)...)
}

// Error emits an error message.
func (l ClueLogger) Error(msg string, err error, keyvals ...any) {
	log.Error(l.ctx, err, fielders(msg, keyvals)...)
}

// Debug discards the message.
func (NoopLogger) Debug(string, ...any) {}

// Info discards the message.
func (NoopLogger) Info(string, ...any) {}

// Error discards the message.
func (NoopLogger) Error(string, error, ...any) {}

func fielders(msg string, keyvals []any) []log.Fielder {
	out := make([]log.Fielder, 0, 1+len(keyvals)/2)
	out = append(out, log.KV{K: "msg", V: msg})
	for i := 0; i < len(keyvals); i += 2 {
		k, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		out = append(out, log.KV{K: k, V: v})
	}
	return out
}
