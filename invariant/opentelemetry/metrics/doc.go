// Package metrics provides a small factory for OpenTelemetry counters.
//
// MetricsFactory caches instruments by name and hands out CounterBuilder
// values that carry an immutable attribute set.
package metrics
