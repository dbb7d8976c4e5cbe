// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelError only logs errors
	LogLevelError = "error"

	// LogLevelWarn logs warnings and errors
	LogLevelWarn = "warn"

	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// Levels lists the supported log levels, by increasing order of verbosity
func Levels() []string {
	return []string{LogLevelNone, LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug}
}

// GetLogger returns a zap logger with the specified level.
//
// Diagnostics go to stderr, so the standard output of commands remains parsable.
func GetLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == LogLevelNone || logLevel == "" {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.Sampling = nil
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}

// MustGetLogger returns a zap logger with the specified level or panics
func MustGetLogger(logLevel string) *zap.Logger {
	l, err := GetLogger(logLevel)
	if err != nil {
		panic(err)
	}
	return l
}
