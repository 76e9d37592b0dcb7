// Package logger provides the diagnostic logger for xn. Diagnostics always go
// to stderr so that stdout carries only the run report.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel is consulted when no level is passed on the command line.
const EnvLogLevel = "XN_LOG_LEVEL"

// Logger is the global logger instance used throughout xn.
var Logger = newLogger(os.Stderr, log.WarnLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "xn"})
	l.SetTimeFormat("")
	l.SetLevel(level)
	return l
}

// Configure sets the log level with precedence: argument > XN_LOG_LEVEL > warn.
// Unknown level names fall back to warn.
func Configure(level string) {
	SetOutput(os.Stderr, level)
}

// SetOutput replaces the logger with one writing to w at the given level.
func SetOutput(w io.Writer, level string) {
	Logger = newLogger(w, parseLevel(level))
}

func parseLevel(level string) log.Level {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
