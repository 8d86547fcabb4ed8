// Package logging decouples the intranet packages from a concrete log
// backend. The server wires the slog adapter below; tests swap in a
// handler writing wherever they can inspect.
package logging

import "context"

// Logger is the leveled, context-aware logger the rest of the code logs
// through. Args are alternating key/value pairs, slog style:
//
//	log.Info(ctx, "server listening", "addr", cfg.Addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that stamps the given key/value pairs
	// onto every record.
	With(args ...any) Logger
}
