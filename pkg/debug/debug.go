// Package debug provides optional file-based debug logging.
//
// When the PRESS_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// file resolves the log destination once. Caller must hold mu.
func file() *os.File {
	if checked {
		return logFile
	}
	checked = true

	path := os.Getenv("PRESS_DEBUG")
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	logFile = f
	return logFile
}

// Log writes a timestamped message to the debug log. No-op unless
// PRESS_DEBUG points at a writable path.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f := file()
	if f == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(f, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	checked = false
	return err
}
