// Package log defines the Logger interface used by the panic and assertion
// layers, typed fields, and two small implementations: GoLogger on the
// standard library and NopLogger.
//
// The zap package provides a production adapter.
package log
