// Package logger provides the logging interface used across fashionbench.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger is the interface for diagnostic logging.
// Compatible with slog, zap, logrus, and other structured loggers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// defaultLogger is a simple logger that writes to the standard log output.
type defaultLogger struct {
	debug bool
}

// NewDefaultLogger creates the default logger. Debug logging is enabled if
// FASHIONBENCH_DEBUG=true.
func NewDefaultLogger() Logger {
	debug := strings.ToLower(os.Getenv("FASHIONBENCH_DEBUG")) == "true"
	return &defaultLogger{debug: debug}
}

func (l *defaultLogger) Debug(msg string, args ...any) {
	if l.debug {
		l.log("DEBUG", msg, args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...any) {
	l.log("INFO", msg, args...)
}

func (l *defaultLogger) Warn(msg string, args ...any) {
	l.log("WARN", msg, args...)
}

func (l *defaultLogger) Error(msg string, args ...any) {
	l.log("ERROR", msg, args...)
}

func (l *defaultLogger) log(level, msg string, args ...any) {
	formatted := fmt.Sprintf("[fashionbench] %s: %s", level, msg)
	if len(args) > 0 {
		formatted += " " + formatArgs(args)
	}
	log.Println(formatted)
}

// formatArgs renders key=value pairs from alternating args.
func formatArgs(args []any) string {
	var b strings.Builder
	for i := 0; i < len(args); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i+1 < len(args) {
			fmt.Fprintf(&b, "%v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&b, "%v", args[i])
		}
	}
	return b.String()
}

// discardLogger drops all log messages.
type discardLogger struct{}

// Discard returns a logger that discards everything.
func Discard() Logger { return discardLogger{} }

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Info(string, ...any)  {}
func (discardLogger) Warn(string, ...any)  {}
func (discardLogger) Error(string, ...any) {}
