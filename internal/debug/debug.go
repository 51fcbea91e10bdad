// Package debug provides development logging for the league CLI.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const stampLayout = "15:04:05.000"

var (
	enabled bool
	logFile *os.File
	mu      sync.Mutex
	logPath string
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logPath = path
	enabled = true

	// Written under the lock; Log would deadlock here.
	now := time.Now()
	stamp := now.Format(stampLayout)
	header := fmt.Sprintf("[%s] === League Debug Session Started ===\n", stamp)
	header += fmt.Sprintf("[%s] Time: %s\n", stamp, now.Format(time.RFC3339))
	header += fmt.Sprintf("[%s] Log file: %s\n", stamp, path)
	header += fmt.Sprintf("[%s] ===================================\n", stamp)
	_, _ = logFile.WriteString(header)
	_ = logFile.Sync()

	return nil
}

// Disable turns off debug logging and closes the file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(stampLayout), fmt.Sprintf(format, args...))
	_, _ = logFile.WriteString(line)
	_ = logFile.Sync() // Flush immediately for tail -f
}

// LogPath returns the path to the log file.
func LogPath() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Event logs an event with component context.
func Event(component, eventType, details string) {
	Log("[%s] %s: %s", component, eventType, details)
}

// Error logs an error with context.
func Error(component string, err error, context string) {
	Log("[%s] ERROR: %s - %v", component, context, err)
}
