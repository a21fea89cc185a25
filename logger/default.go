package logger

import (
	"sync"

	"github.com/seqlog/seqlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The default configuration is statically valid, so Build cannot fail
	defaultLogger, _ = NewBuilder("default").
		WithLevel(core.InfoLevel).
		WithLevelName(true).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Event logs an application event message using the default logger
func Event(msg string) {
	Default().Event(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Eventf logs a formatted application event message using the default logger
func Eventf(format string, args ...interface{}) {
	Default().Eventf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}
