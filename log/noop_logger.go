package log

import "go.uber.org/zap"

// NoOpLogger discards everything. Used in tests and when no logger is configured.
type NoOpLogger struct{}

var _ Logger = &NoOpLogger{}

// Debug implements Logger.
func (*NoOpLogger) Debug(msg string, fields ...zap.Field) {}

// Error implements Logger.
func (*NoOpLogger) Error(msg string, fields ...zap.Field) {}

// Info implements Logger.
func (*NoOpLogger) Info(msg string, fields ...zap.Field) {}

// Warn implements Logger.
func (*NoOpLogger) Warn(msg string, fields ...zap.Field) {}
