// Package logging assembles structured slog loggers and formatting helpers used
// across lexstat.
//
// It owns the configurable console/JSON handlers, routes log output to
// standard error so standard output stays reserved for the statistics
// report, and exposes context-aware helpers that tag every line of a run with
// its correlation ID. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
