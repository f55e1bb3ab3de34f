package flexui

import (
	"fmt"
	"sort"

	"github.com/grindlemire/go-flexui/pkg/layout"
)

// MockHost is an in-memory Host for testing and tooling.
// It records every window, widget, property write and bounds change.
type MockHost struct {
	windows []*MockWindow

	// EchoWrites makes widgets fire their "onChange" handler whenever a
	// property is written, the way some real widgets report programmatic
	// changes as user changes.
	EchoWrites bool

	// FailWidget, when set, makes CreateWidget fail for widgets of that kind.
	FailWidget string
}

// Ensure the mocks implement the host interfaces.
var (
	_ Host       = (*MockHost)(nil)
	_ HostWindow = (*MockWindow)(nil)
	_ HostWidget = (*MockWidget)(nil)
)

// NewMockHost creates an empty mock host.
func NewMockHost() *MockHost {
	return &MockHost{}
}

// OpenWindow records and returns a new MockWindow.
func (h *MockHost) OpenWindow(spec WindowSpec) (HostWindow, error) {
	w := &MockWindow{host: h, Spec: spec, props: make(map[string]any)}
	h.windows = append(h.windows, w)
	return w, nil
}

// Windows returns every window opened so far, including closed ones.
func (h *MockHost) Windows() []*MockWindow {
	return h.windows
}

// LastWindow returns the most recently opened window, or nil.
func (h *MockHost) LastWindow() *MockWindow {
	if len(h.windows) == 0 {
		return nil
	}
	return h.windows[len(h.windows)-1]
}

// MockWindow is a window created by MockHost.
type MockWindow struct {
	host    *MockHost
	Spec    WindowSpec
	widgets []*MockWidget
	props   map[string]any
	closed  bool
}

// SetProperty records a window property write.
func (w *MockWindow) SetProperty(key string, value any) {
	w.props[key] = value
}

// Property returns the last value written to key.
func (w *MockWindow) Property(key string) any {
	return w.props[key]
}

// CreateWidget records and returns a new MockWidget.
func (w *MockWindow) CreateWidget(spec WidgetSpec) (HostWidget, error) {
	if w.host.FailWidget != "" && spec.Kind == w.host.FailWidget {
		return nil, fmt.Errorf("mock host refuses widget kind %q", spec.Kind)
	}
	wd := &MockWidget{
		window:   w,
		Spec:     spec,
		bounds:   spec.Bounds,
		props:    make(map[string]any),
		handlers: make(map[string]func(any)),
	}
	w.widgets = append(w.widgets, wd)
	return wd, nil
}

// Close marks the window closed.
func (w *MockWindow) Close() {
	w.closed = true
}

// Closed reports whether Close was called.
func (w *MockWindow) Closed() bool {
	return w.closed
}

// Widgets returns the widgets in creation order.
func (w *MockWindow) Widgets() []*MockWidget {
	return w.widgets
}

// Widget returns the widget with the given name, or nil.
func (w *MockWindow) Widget(name string) *MockWidget {
	for _, wd := range w.widgets {
		if wd.Spec.Name == name {
			return wd
		}
	}
	return nil
}

// WidgetAt returns the topmost widget containing the point, or nil.
// Later widgets are on top.
func (w *MockWindow) WidgetAt(x, y int) *MockWidget {
	for i := len(w.widgets) - 1; i >= 0; i-- {
		if w.widgets[i].bounds.Contains(x, y) {
			return w.widgets[i]
		}
	}
	return nil
}

// MockWidget is a widget created by MockWindow.
type MockWidget struct {
	window   *MockWindow
	Spec     WidgetSpec
	bounds   layout.Rect
	props    map[string]any
	handlers map[string]func(any)
	writes   []PropertyWrite
}

// PropertyWrite is one recorded SetProperty call.
type PropertyWrite struct {
	Key   string
	Value any
}

// SetProperty records the write and, when the host echoes writes, fires the
// widget's onChange handler.
func (m *MockWidget) SetProperty(key string, value any) {
	m.props[key] = value
	m.writes = append(m.writes, PropertyWrite{Key: key, Value: value})
	if m.window.host.EchoWrites {
		if fn := m.handlers["onChange"]; fn != nil {
			fn(value)
		}
	}
}

// SetBounds records new bounds.
func (m *MockWidget) SetBounds(bounds layout.Rect) {
	m.bounds = bounds
}

// Handle registers an event handler, replacing any previous one.
func (m *MockWidget) Handle(event string, fn func(any)) {
	m.handlers[event] = fn
}

// Fire simulates the user triggering event with value. It reports whether a
// handler was registered.
func (m *MockWidget) Fire(event string, value any) bool {
	fn := m.handlers[event]
	if fn == nil {
		return false
	}
	fn(value)
	return true
}

// Bounds returns the widget's current bounds.
func (m *MockWidget) Bounds() layout.Rect {
	return m.bounds
}

// Property returns the last value written to key.
func (m *MockWidget) Property(key string) any {
	return m.props[key]
}

// Writes returns every property write in order.
func (m *MockWidget) Writes() []PropertyWrite {
	return m.writes
}

// Keys returns the written property keys, sorted.
func (m *MockWidget) Keys() []string {
	keys := make([]string, 0, len(m.props))
	for k := range m.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
