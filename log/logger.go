package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging facade used by every component of the router.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = &loggerImpl{}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// NewLogger creates a zap backed logger.
// In production mode, JSON encoding is used. Otherwise, a colored console encoder.
// If fileName is non-empty, the logs are additionally written to that file.
// An empty level defaults to info.
func NewLogger(isProduction bool, fileName string, logLevelStr string) (Logger, error) {
	logLevel := zapcore.InfoLevel
	if logLevelStr != "" {
		if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level (%s): %w", logLevelStr, err)
		}
	}

	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.Level = zap.NewAtomicLevelAt(logLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if fileName != "" {
		config.OutputPaths = append(config.OutputPaths, fileName)
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, fileName)
	}

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &loggerImpl{
		zapLogger: zapLogger,
	}, nil
}
