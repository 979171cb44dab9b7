package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level is a logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" or "error" to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Logger wraps standard log with level-based output
type Logger struct {
	min   Level
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
	debug *log.Logger
	now   func() time.Time
}

// NewLogger creates a logger writing info/warn/debug to stdout and errors to stderr
func NewLogger() *Logger {
	return newLogger(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger writing every level to w
func NewLoggerTo(w io.Writer) *Logger {
	return newLogger(w, w)
}

func newLogger(out, errOut io.Writer) *Logger {
	flags := log.Lmsgprefix
	return &Logger{
		min:   LevelInfo,
		info:  log.New(out, "[INFO]  ", flags),
		warn:  log.New(out, "[WARN]  ", flags),
		error: log.New(errOut, "[ERROR] ", flags),
		debug: log.New(out, "[DEBUG] ", flags),
		now:   time.Now,
	}
}

// SetLevel drops messages below min
func (l *Logger) SetLevel(min Level) *Logger {
	l.min = min
	return l
}

func (l *Logger) prefix() string {
	return fmt.Sprintf(" %s ", l.now().Format("15:04:05"))
}

func (l *Logger) logf(level Level, dst *log.Logger, msg string, args []interface{}) {
	if level < l.min {
		return
	}
	dst.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.logf(LevelInfo, l.info, msg, args)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.logf(LevelWarn, l.warn, msg, args)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.logf(LevelError, l.error, msg, args)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.logf(LevelDebug, l.debug, msg, args)
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return NewLoggerTo(io.Discard).SetLevel(LevelError + 1)
}
