package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "FLEXUI_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	loaded  bool
)

// newLogger creates a logger with the timestamp layout used across the module.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "flexui",
	})
}

// Init directs debug logging to the file at path, creating parent directories
// as needed.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
	if path == "" {
		path = "flexui-debug.log"
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f, log.DebugLevel)
	loaded = true
	return nil
}

// SetOutput sends debug logging to w at the given level. A nil writer
// disables logging.
func SetOutput(w io.Writer, level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	if w == nil {
		logger = nil
		return
	}
	logger = newLogger(w, level)
}

// Close closes the debug log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// current returns the active logger, lazily honoring FLEXUI_DEBUG on first use.
// Caller must hold mu.
func current() *log.Logger {
	if !loaded {
		loaded = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "flexui: %v\n", err)
			}
		}
	}
	return logger
}

// Log writes a debug-level message.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

// Error writes an error-level message with structured key/value pairs.
func Error(msg string, keyvals ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l := current(); l != nil {
		l.Error(msg, keyvals...)
	}
}

// Enabled reports whether debug output is currently going anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return current() != nil
}
