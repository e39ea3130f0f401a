package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level is the severity of a log message
type Level int

const (
	// LevelDebug is for per-file and per-class tracing
	LevelDebug Level = iota
	// LevelInfo is for pipeline milestones (files scanned, rules written)
	LevelInfo
	// LevelWarn is for recoverable problems such as unreadable files or undefined tokens
	LevelWarn
	// LevelError is for failures that abort a command
	LevelError
)

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	minLevel Level     = LevelInfo
	prefix   string    = "[TUC]"
)

// ParseLevel maps a level name (debug, info, warn, error) to a Level
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// SetOutput sets the output destination (primarily for testing)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetLevel sets the minimum log level to display
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum log level
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	write(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	write(LevelInfo, format, args...)
}

// Warn logs a warning
func Warn(format string, args ...any) {
	write(LevelWarn, format, args...)
}

// Error logs an error
func Error(format string, args ...any) {
	write(LevelError, format, args...)
}

func write(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel || output == nil {
		return
	}

	fmt.Fprintf(output, prefix+" "+format+"\n", args...)
}
