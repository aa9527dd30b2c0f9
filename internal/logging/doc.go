// Package logging assembles the structured slog loggers used across backdate.
//
// It owns the console and JSON handler plumbing, centralizes level parsing,
// and exposes typed attribute helpers so every component emits log lines with
// the same shape. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
