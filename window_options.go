package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/pkg/layout"
)

// Defaults applied by NewWindow.
const (
	DefaultWindowWidth  = 200
	DefaultWindowHeight = 150
)

var (
	defaultWindowPadding = layout.PaddingAll(layout.Px(5))
	defaultSpacing       = layout.Px(4)
)

// WindowOption is a functional option for configuring a Window.
type WindowOption func(*Window) error

// WithTitle sets the window title. A bound source keeps the host window's
// "title" property current while open.
func WithTitle(title Source[string]) WindowOption {
	return func(w *Window) error {
		w.title = title
		return nil
	}
}

// WithSize sets the window size in pixels. Both dimensions must be positive.
func WithSize(width, height int) WindowOption {
	return func(w *Window) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("window size must be positive, got %dx%d", width, height)
		}
		w.width, w.height = width, height
		return nil
	}
}

// WithWindowPadding sets the padding between the window edge and its content.
// Default is 5px on every edge. Edges a partial spec leaves out keep the
// padding set by earlier options.
func WithWindowPadding(spec any) WindowOption {
	return func(w *Window) error {
		current := w.root.style.Padding
		p, err := layout.ParsePadding(spec, &current)
		if err != nil {
			return fmt.Errorf("window padding: %w", err)
		}
		w.root.style.Padding = p
		return nil
	}
}

// WithWindowSpacing sets the default gap between children of every flexible
// container that does not set its own. Default is 4px.
func WithWindowSpacing(spec any) WindowOption {
	return func(w *Window) error {
		s, err := layout.ParseScale(spec)
		if err != nil {
			return fmt.Errorf("window spacing: %w", err)
		}
		if s != nil {
			w.spacing = *s
		}
		return nil
	}
}

// WithDirection sets the direction of the window's top-level content.
// Default is vertical.
func WithDirection(dir layout.Direction) WindowOption {
	return func(w *Window) error {
		w.root.style.Direction = dir
		if dir == layout.Horizontal {
			w.root.kind = KindHorizontal
		} else {
			w.root.kind = KindVertical
		}
		return nil
	}
}

// WithContent appends top-level elements.
func WithContent(children ...*Element) WindowOption {
	return func(w *Window) error {
		w.root.children = append(w.root.children, children...)
		return nil
	}
}

// WithClassification sets the identifier passed to the host. Default is a
// random "flexui-<uuid>".
func WithClassification(id string) WindowOption {
	return func(w *Window) error {
		if id == "" {
			return fmt.Errorf("classification must not be empty")
		}
		w.classification = id
		return nil
	}
}

// WithOnOpen registers a hook that runs after the window opens.
func WithOnOpen(fn func()) WindowOption {
	return func(w *Window) error {
		w.onOpen = append(w.onOpen, fn)
		return nil
	}
}

// WithOnUpdate registers a hook that runs on every Window.Update while open.
func WithOnUpdate(fn func()) WindowOption {
	return func(w *Window) error {
		w.onUpdate = append(w.onUpdate, fn)
		return nil
	}
}

// WithOnClose registers a hook that runs after the window closes.
func WithOnClose(fn func()) WindowOption {
	return func(w *Window) error {
		w.onClose = append(w.onClose, fn)
		return nil
	}
}
