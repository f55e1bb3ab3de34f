package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, log.DebugLevel)
	defer SetOutput(nil, log.DebugLevel)

	Log("store %s set to %d", "count", 3)
	Error("subscriber panicked", "op", "Store.Set")

	out := buf.String()
	if !strings.Contains(out, "store count set to 3") {
		t.Errorf("output %q missing debug message", out)
	}
	if !strings.Contains(out, "subscriber panicked") || !strings.Contains(out, "op=Store.Set") {
		t.Errorf("output %q missing error message", out)
	}
}

func TestSetOutput_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, log.ErrorLevel)
	defer SetOutput(nil, log.DebugLevel)

	Log("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message written at error level: %q", buf.String())
	}
}

func TestDisabled(t *testing.T) {
	SetOutput(nil, log.DebugLevel)
	if Enabled() {
		t.Error("Enabled() = true after SetOutput(nil)")
	}
	Log("dropped")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello %d", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello 1") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello 1")
	}
}
