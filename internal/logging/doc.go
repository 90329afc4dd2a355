// Package logging assembles structured slog loggers and formatting helpers used
// across ffext.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags log lines with a per-invocation identifier carried on
// the context. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging
