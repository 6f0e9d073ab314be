// Package logger provides a structured logging wrapper using zap.
//
// Stdout belongs to the interactive quiz, so every logger built here writes
// to stderr.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// L is the global logger instance
	L    *zap.Logger
	once sync.Once
)

// Init initializes the global logger.
// If debug is true, uses development config with DEBUG level.
// Otherwise uses production config at WARN level so that routine events
// don't interleave with quiz prompts.
func Init(debug bool) {
	once.Do(func() {
		var err error
		if debug {
			config := zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			config.OutputPaths = []string{"stderr"}
			L, err = config.Build()
		} else {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			config.EncoderConfig.TimeKey = "timestamp"
			config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			config.OutputPaths = []string{"stderr"}
			L, err = config.Build()
		}
		if err != nil {
			// Fallback to nop logger if initialization fails
			L = zap.NewNop()
		}
	})
}

// Sync flushes any buffered log entries.
// Should be called before the application exits.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}

// Default returns the global logger, initializing a quiet one if needed.
func Default() *zap.Logger {
	if L == nil {
		Init(false)
	}
	return L
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	Default().Error(msg, fields...)
}
