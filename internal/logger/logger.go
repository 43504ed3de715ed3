package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging severity level
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu       sync.RWMutex
	current  = LevelInfo
	std      = log.New(os.Stderr, "", log.LstdFlags)
	levelTag = map[Level]string{
		LevelTrace: "TRACE",
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelFatal: "FATAL",
	}
)

// ParseLevel parses a level name like "debug" or "warn"
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal", "panic":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// SetLevel sets the global logging level
func SetLevel(l Level) {
	mu.Lock()
	current = l
	mu.Unlock()
}

// GetLevel returns the current logging level
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w *os.File) {
	mu.Lock()
	std = log.New(w, "", log.LstdFlags)
	mu.Unlock()
}

func logf(l Level, format string, args ...any) {
	mu.RLock()
	enabled := l >= current
	out := std
	mu.RUnlock()
	if !enabled {
		return
	}
	out.Printf("["+levelTag[l]+"] "+format, args...)
}

// Trace logs at trace level
func Trace(format string, args ...any) { logf(LevelTrace, format, args...) }

// Debug logs at debug level
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs at info level
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs at warn level
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error logs at error level
func Error(format string, args ...any) { logf(LevelError, format, args...) }

// Fatal logs at fatal level and exits
func Fatal(format string, args ...any) {
	logf(LevelFatal, format, args...)
	os.Exit(1)
}
