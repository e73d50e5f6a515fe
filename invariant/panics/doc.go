// Package panics is the terminal step of every failed invariant.
//
// A single process-wide Handler receives the composed message, the source
// location and the backtrace. The default handler prints a report to
// standard error, traps into an attached debugger in debug builds, and
// exits with ExitCode. Tests and embedders install their own handler with
// SetHandler; a handler that returns lets execution continue.
//
// Recover, RecoverWithContext and Go route Go runtime panics through the
// same handler after recording metrics, a span event and an external
// error report.
package panics
