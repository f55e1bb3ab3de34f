package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/pkg/layout"
)

var _ layout.Layoutable = (*Element)(nil)

// Container kinds. Any other kind names a host widget type.
const (
	KindHorizontal = "horizontal"
	KindVertical   = "vertical"
	KindAbsolute   = "absolute"
)

// Element is a node of a declared window tree: either a container that
// places its children, or a leaf that becomes a host widget.
// It implements layout.Layoutable and owns its children directly.
type Element struct {
	kind     string
	name     string
	children []*Element

	style   layout.Style
	spacing *layout.Scale // nil = inherit the window default
	layout  layout.Layout

	props  []Property
	widget HostWidget

	// err holds the first option that failed to parse; reported by Window.Open.
	err error
}

func newElement(kind string, opts []Option) *Element {
	e := &Element{kind: kind, style: layout.DefaultStyle()}
	switch kind {
	case KindVertical:
		e.style.Direction = layout.Vertical
	case KindAbsolute:
		e.style.Mode = layout.ModeAbsolute
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Horizontal declares a container that places its children left to right.
func Horizontal(opts ...Option) *Element {
	return newElement(KindHorizontal, opts)
}

// Vertical declares a container that places its children top to bottom.
func Vertical(opts ...Option) *Element {
	return newElement(KindVertical, opts)
}

// Absolute declares a container whose children position themselves with
// WithX, WithY, WithWidth and WithHeight.
func Absolute(opts ...Option) *Element {
	return newElement(KindAbsolute, opts)
}

// Widget declares a leaf that the host turns into a widget of the given kind,
// such as "label" or "button".
func Widget(kind string, opts ...Option) *Element {
	return newElement(kind, opts)
}

// Kind returns the container kind or widget type.
func (e *Element) Kind() string {
	return e.kind
}

// Name returns the element's name, or "" if none was set.
func (e *Element) Name() string {
	return e.name
}

// IsContainer reports whether the element places children rather than
// becoming a widget.
func (e *Element) IsContainer() bool {
	switch e.kind {
	case KindHorizontal, KindVertical, KindAbsolute:
		return true
	}
	return false
}

// Children returns the direct children in placement order.
func (e *Element) Children() []*Element {
	return e.children
}

// Properties returns the properties declared on the element.
func (e *Element) Properties() []Property {
	return e.props
}

// Widget returns the host widget built for this element, or nil while the
// window is closed or for containers.
func (e *Element) Widget() HostWidget {
	return e.widget
}

// Bounds returns the element's last computed content rectangle.
func (e *Element) Bounds() layout.Rect {
	return e.layout.ContentRect
}

// LayoutStyle implements layout.Layoutable.
func (e *Element) LayoutStyle() layout.Style {
	return e.style
}

// LayoutChildren implements layout.Layoutable.
func (e *Element) LayoutChildren() []layout.Layoutable {
	if !e.IsContainer() {
		return nil
	}
	out := make([]layout.Layoutable, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// SetLayout implements layout.Layoutable.
func (e *Element) SetLayout(l layout.Layout) {
	e.layout = l
}

// GetLayout implements layout.Layoutable.
func (e *Element) GetLayout() layout.Layout {
	return e.layout
}

// label identifies the element in errors and layout reports.
func (e *Element) label() string {
	if e.name != "" {
		return e.name
	}
	return e.kind
}

// walk visits e and its descendants depth-first in declaration order.
func (e *Element) walk(fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	for _, c := range e.children {
		if err := c.walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// validate reports the first declaration error in the subtree.
func (e *Element) validate() error {
	return e.walk(func(el *Element) error {
		if el.err != nil {
			return &BuildError{Element: el.label(), Err: el.err}
		}
		if el.kind == "" {
			return &BuildError{Element: el.label(), Err: fmt.Errorf("element has no kind")}
		}
		if !el.IsContainer() && len(el.children) > 0 {
			return &BuildError{Element: el.label(), Err: fmt.Errorf("widget %q cannot have children", el.kind)}
		}
		return nil
	})
}

// inheritSpacing fills unset container spacing with def.
func (e *Element) inheritSpacing(def layout.Scale) {
	_ = e.walk(func(el *Element) error {
		if el.spacing != nil {
			el.style.Spacing = *el.spacing
		} else {
			el.style.Spacing = def
		}
		return nil
	})
}
