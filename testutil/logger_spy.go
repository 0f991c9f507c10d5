package testutil

import (
	"strings"
	"sync"
)

// LoggerSpy records log calls so tests can assert that operations were logged
// at the expected level with the expected message.
type LoggerSpy struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is one recorded log call.
type LogEntry struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates an empty LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (s *LoggerSpy) Debug(msg string, args ...any) { s.record("DEBUG", msg, args) }
func (s *LoggerSpy) Info(msg string, args ...any)  { s.record("INFO", msg, args) }
func (s *LoggerSpy) Warn(msg string, args ...any)  { s.record("WARN", msg, args) }
func (s *LoggerSpy) Error(msg string, args ...any) { s.record("ERROR", msg, args) }

func (s *LoggerSpy) record(level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, LogEntry{Level: level, Message: msg, Args: args})
}

// Entries returns a copy of all recorded log calls.
func (s *LoggerSpy) Entries() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]LogEntry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

// HasMessageContaining reports whether any recorded message contains the
// given substring.
func (s *LoggerSpy) HasMessageContaining(substring string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if strings.Contains(entry.Message, substring) {
			return true
		}
	}

	return false
}

// Reset discards all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
}
