// Package logging builds the slog loggers used across the CLI and pipeline:
// a console handler for terminals, a JSON handler for machine consumption,
// and helpers for component-scoped loggers and test no-ops.
package logging
