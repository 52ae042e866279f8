// Package testlogger records log output so tests can assert on diagnostics
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
}

type sink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger implements log.Logger and keeps every entry in memory.
// Loggers derived through WithFields share the parent's entries.
type TestLogger struct {
	sink   *sink
	fields []any
}

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{sink: &sink{}}
}

func (l *TestLogger) log(level, msg string) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.entries = append(l.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append([]any(nil), l.fields...),
	})
}

func (l *TestLogger) Debug(args ...any)                 { l.log("DEBUG", fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) { l.log("DEBUG", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Debugln(args ...any)               { l.log("DEBUG", fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)                  { l.log("INFO", fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any)  { l.log("INFO", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Infoln(args ...any)                { l.log("INFO", fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)                  { l.log("WARN", fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.log("WARN", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Warnln(args ...any)                { l.log("WARN", fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)                 { l.log("ERROR", fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) { l.log("ERROR", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Errorln(args ...any)               { l.log("ERROR", fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)                 { l.log("FATAL", fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) { l.log("FATAL", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Fatalln(args ...any)               { l.log("FATAL", fmt.Sprintln(args...)) }

// WithFields returns a logger that tags its entries with fields
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	return &TestLogger{sink: l.sink, fields: append(append([]any(nil), l.fields...), fields...)}
}

// WithDefaultMessageTemplate implements log.Logger
func (l *TestLogger) WithDefaultMessageTemplate(string) log.Logger { return l }

// Sync implements log.Logger
func (l *TestLogger) Sync() error { return nil }

// Entries returns a copy of all log entries
func (l *TestLogger) Entries() []LogEntry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	return append([]LogEntry(nil), l.sink.entries...)
}

// Count returns the number of log entries for the given level
func (l *TestLogger) Count(level string) int {
	count := 0

	for _, e := range l.Entries() {
		if e.Level == level {
			count++
		}
	}

	return count
}

// Contains reports whether an entry at level contains every substring
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	for _, e := range l.Entries() {
		if e.Level != level {
			continue
		}

		all := true

		for _, s := range substrings {
			if !strings.Contains(e.Message, s) {
				all = false
				break
			}
		}

		if all {
			return true
		}
	}

	return false
}
