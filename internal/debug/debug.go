package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvVar names the environment variable holding a debug log path.
const EnvVar = "GITSY_DEBUG"

var (
	enabled bool
	logFile *os.File
	mu      sync.Mutex
)

// Enable starts appending debug output to the file at path.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// LogToFile points the standard logger at the file so nothing leaks
	// onto the alternate screen.
	f, err := tea.LogToFile(path, "gitsy")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	logFile = f
	enabled = true
	log.Printf("debug logging enabled (pid %d)", os.Getpid())
	return nil
}

// EnableFromEnv enables logging when EnvVar is set. It is a no-op otherwise.
func EnableFromEnv() error {
	path := strings.TrimSpace(os.Getenv(EnvVar))
	if path == "" {
		return nil
	}
	return Enable(path)
}

// Close flushes and closes the debug log.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if enabled {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Logf writes a debug message if debugging is enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	log.Printf(format, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("git worktree list")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Logf("%s started", name)

	return func() {
		Logf("%s completed in %v", name, time.Since(start))
	}
}
