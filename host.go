package flexui

import "github.com/grindlemire/go-flexui/pkg/layout"

// WindowSpec describes a window for the host to create.
type WindowSpec struct {
	Classification string
	Title          string
	Width, Height  int
}

// WidgetSpec describes a widget for the host to create.
type WidgetSpec struct {
	Kind   string
	Name   string
	Bounds layout.Rect
}

// Host creates concrete windows. It is passed explicitly to Window.Open.
type Host interface {
	OpenWindow(spec WindowSpec) (HostWindow, error)
}

// HostWindow is a window owned by the host.
type HostWindow interface {
	Target
	CreateWidget(spec WidgetSpec) (HostWidget, error)
	Close()
}

// HostWidget is a widget owned by the host.
type HostWidget interface {
	Target
	SetBounds(bounds layout.Rect)
	// Handle registers fn for a user-interaction event such as "onChange".
	Handle(event string, fn func(value any))
}
