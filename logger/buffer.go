package logger

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time
	Level     string
	Message   string
}

// LogBuffer is a thread-safe buffer for log entries
type LogBuffer struct {
	entries []LogEntry
	maxSize int
	mu      sync.RWMutex
}

// NewLogBuffer creates a new log buffer
func NewLogBuffer(maxSize int) *LogBuffer {
	return &LogBuffer{
		entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add adds a new log entry
func (lb *LogBuffer) Add(level, message string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}

	lb.entries = append(lb.entries, entry)

	// Keep only the last maxSize entries
	if len(lb.entries) > lb.maxSize {
		lb.entries = lb.entries[len(lb.entries)-lb.maxSize:]
	}
}

// GetRecent returns the most recent log entries
func (lb *LogBuffer) GetRecent(count int) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if count > len(lb.entries) {
		count = len(lb.entries)
	}

	start := len(lb.entries) - count
	if start < 0 {
		start = 0
	}

	result := make([]LogEntry, count)
	copy(result, lb.entries[start:])
	return result
}

// GetAll returns all log entries
func (lb *LogBuffer) GetAll() []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	result := make([]LogEntry, len(lb.entries))
	copy(result, lb.entries)
	return result
}

// Clear removes all log entries from the buffer
func (lb *LogBuffer) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries = make([]LogEntry, 0, lb.maxSize)
}

// FormatLogEntry formats a log entry for display
func FormatLogEntry(entry LogEntry) string {
	return fmt.Sprintf("[%s] %s: %s",
		entry.Timestamp.Format("15:04:05"),
		entry.Level,
		entry.Message,
	)
}

// LogBufferWriter is an io.Writer that writes to the log buffer.
// It extracts the level from log lines in the format "[LEVEL] message".
type LogBufferWriter struct {
	buffer *LogBuffer
	buf    bytes.Buffer
	mu     sync.Mutex
}

var levelRegex = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)

// NewLogBufferWriter creates a new writer that writes to the log buffer
func NewLogBufferWriter(buffer *LogBuffer) *LogBufferWriter {
	return &LogBufferWriter{
		buffer: buffer,
	}
}

// Write implements io.Writer
func (lw *LogBufferWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	// Buffer until we get a newline
	lw.buf.Write(p)

	// Process complete lines
	for {
		line, err := lw.buf.ReadString('\n')
		if err == io.EOF {
			// ReadString consumed the unterminated remainder; put it back
			// so the next write can complete the line
			lw.buf.WriteString(line)
			break
		}
		if err != nil {
			return len(p), err
		}

		// Remove newline
		line = strings.TrimSuffix(line, "\n")
		if len(line) == 0 {
			continue
		}

		// Try to extract the level from format "[LEVEL] message"
		level := "INFO"
		message := line

		matches := levelRegex.FindStringSubmatch(line)
		if len(matches) == 3 {
			level = matches[1]
			message = matches[2]
		}

		// Add to log buffer
		lw.buffer.Add(level, message)
	}

	return len(p), nil
}
