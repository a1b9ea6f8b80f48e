// Package logger provides the leveled logging capability injected into
// each adapter instance at construction, so instances are testable
// without a process-global sink.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var errUnknownLevel = fmt.Errorf("unknown log level")

// ParseLevel maps a config string to a Level. An empty string defaults
// to info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", errUnknownLevel, s)
	}
}

// Logger is the logging capability consumed by the adapter and its
// collaborators.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type logLogger struct {
	min Level
	out *log.Logger
}

// New returns a Logger writing to w, dropping messages below min.
func New(w io.Writer, min Level) Logger {
	return &logLogger{
		min: min,
		out: log.New(w, "", log.LstdFlags),
	}
}

func (l *logLogger) Debug(format string, args ...interface{}) {
	l.output(LevelDebug, "DEBUG: ", format, args...)
}

func (l *logLogger) Info(format string, args ...interface{}) {
	l.output(LevelInfo, "INFO: ", format, args...)
}

func (l *logLogger) Warn(format string, args ...interface{}) {
	l.output(LevelWarn, "WARN: ", format, args...)
}

func (l *logLogger) Error(format string, args ...interface{}) {
	l.output(LevelError, "ERROR: ", format, args...)
}

func (l *logLogger) output(level Level, prefix, format string, args ...interface{}) {
	if level < l.min {
		return
	}

	l.out.Printf(prefix+format, args...)
}
