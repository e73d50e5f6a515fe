// Package constant holds the telemetry names shared by the assert and
// panics packages: metric names, span event names and attribute keys.
//
// Keep this package free of runtime behavior.
package constant
