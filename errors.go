package flexui

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// ErrNoSources is the panic value of ComputeN when given no source stores.
var ErrNoSources = errors.New("flexui: compute requires at least one source store")

// ErrWindowOpen is returned when opening a window that is already open.
var ErrWindowOpen = errors.New("flexui: window is already open")

// ErrDuplicateName is returned by Window.Layout when two widgets share a
// layout key.
var ErrDuplicateName = errors.New("flexui: duplicate widget name")

// PanicError describes a subscriber or handler that panicked during dispatch.
type PanicError struct {
	// Op is the operation that was dispatching (e.g., "Store.Set").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic was recovered.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: panic: %v", e.Op, e.Value)
}

// BuildError reports an element that could not be built into a window.
type BuildError struct {
	// Element names the failing element (its name, or its kind if unnamed).
	Element string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("flexui: build %s: %v", e.Element, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives panics recovered while dispatching store changes.
type ErrorHandler interface {
	HandlePanic(err *PanicError)
}

// LogHandler is an ErrorHandler that writes to the debug log.
type LogHandler struct {
	// Verbose includes the stack trace.
	Verbose bool
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if h.Verbose {
		debug.Error("subscriber panicked", "op", err.Op, "value", err.Value, "stack", err.StackTrace)
		return
	}
	debug.Error("subscriber panicked", "op", err.Op, "value", err.Value)
}

var (
	handlerMu    sync.RWMutex
	errorHandler ErrorHandler = &LogHandler{}
)

// SetErrorHandler replaces the global handler for recovered panics.
// Pass nil to restore the default LogHandler.
func SetErrorHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	errorHandler = h
}

func reportPanic(op string, value any) {
	err := &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: captureStack(),
		Timestamp:  time.Now(),
	}
	handlerMu.RLock()
	h := errorHandler
	handlerMu.RUnlock()
	h.HandlePanic(err)
}

func captureStack() string {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
