// Package logger provides levelled, prefixed logging for the game hosts.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes info, warning and error lines through separate prefixed
// standard loggers.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing info and warnings to stdout and errors to stderr.
func New() *Logger {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a logger with explicit destinations.
func NewWithWriters(out, errOut io.Writer) *Logger {
	const flags = log.Ldate | log.Ltime | log.Lmicroseconds
	return &Logger{
		infoLogger:  log.New(out, "[BLOCKFALL-INFO] ", flags),
		warnLogger:  log.New(out, "[BLOCKFALL-WARN] ", flags),
		errorLogger: log.New(errOut, "[BLOCKFALL-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriters(io.Discard, io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Event logs a game event with a type tag and free-form details.
func (l *Logger) Event(eventType string, details string) {
	l.infoLogger.Printf("[EVENT:%s] %s", eventType, details)
}
