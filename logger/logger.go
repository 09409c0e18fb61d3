// Package logger provides a configurable logger that can write to multiple outputs.
// Init must be called early in the application lifecycle before using other logger functions.
// AddOutput will return an error if called before Init.
//
// The topology and inventory packages never log through this package
// directly; they take an injected warning sink that the commands wire to
// Warnf.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger is a configurable logger that can write to multiple outputs
type Logger struct {
	mu      sync.Mutex
	outputs []io.Writer
	prefix  string
}

var (
	globalLogger *Logger
	once         sync.Once
	globalBuffer *LogBuffer
	bufferOnce   sync.Once
)

// GetGlobalLogBuffer returns the global log buffer
func GetGlobalLogBuffer() *LogBuffer {
	bufferOnce.Do(func() {
		globalBuffer = NewLogBuffer(1000) // Keep last 1000 log entries
	})
	return globalBuffer
}

// Init initializes the global logger. When writeToStderr is set, log lines
// go to standard error; standard output stays reserved for the membership
// listing.
func Init(prefix string, writeToStderr bool) {
	once.Do(func() {
		outputs := []io.Writer{}
		if writeToStderr {
			outputs = append(outputs, os.Stderr)
		}
		globalLogger = &Logger{
			outputs: outputs,
			prefix:  prefix,
		}
	})
}

// AddOutput adds an additional output writer (e.g., the interactive log pane).
// Returns an error if called before Init.
func AddOutput(w io.Writer) error {
	if globalLogger == nil {
		return errors.New("logger not initialized: call logger.Init() first")
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.outputs = append(globalLogger.outputs, w)
	return nil
}

// Printf logs a formatted message
func Printf(format string, v ...interface{}) {
	if globalLogger == nil {
		// Fallback to standard log if not initialized
		log.Printf(format, v...)
		return
	}

	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	msg := fmt.Sprintf(format, v...)
	// Remove trailing newline if present (we'll add it back)
	msg = strings.TrimSuffix(msg, "\n")

	// Add prefix if specified
	if globalLogger.prefix != "" {
		msg = fmt.Sprintf("[%s] %s", globalLogger.prefix, msg)
	}

	// Write to all outputs
	if len(globalLogger.outputs) > 0 {
		msgWithNewline := msg + "\n"
		for _, output := range globalLogger.outputs {
			output.Write([]byte(msgWithNewline))
		}
	}
}

// Infof logs an info-level formatted message
func Infof(format string, v ...interface{}) {
	Printf("[INFO] "+format, v...)
}

// Warnf logs a warning-level formatted message
func Warnf(format string, v ...interface{}) {
	Printf("[WARN] "+format, v...)
}

// Errorf logs an error-level formatted message
func Errorf(format string, v ...interface{}) {
	Printf("[ERROR] "+format, v...)
}
