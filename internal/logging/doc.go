// Package logging builds slog loggers for the prepress CLI.
//
// Two formats are supported: a compact console layout for interactive use
// (with ANSI color when the destination is a terminal) and JSON for log files
// or machine consumption. NewFromConfig wires the [logging] config section,
// fanning output out to stderr plus an optional per-run log file.
package logging
