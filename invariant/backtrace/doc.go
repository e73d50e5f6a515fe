// Package backtrace captures and renders goroutine call stacks.
//
// Capture goes through a swappable Provider so tests and embedders can
// supply canned or externally symbolized stacks.
package backtrace
