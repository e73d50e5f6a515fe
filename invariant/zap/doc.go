// Package zap adapts go.uber.org/zap to the log.Logger interface.
//
// Loggers built with New tee every entry into the OpenTelemetry log bridge
// and tag entries with the active trace and span IDs.
package zap
