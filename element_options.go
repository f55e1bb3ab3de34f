package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/pkg/layout"
)

// Option configures an Element.
type Option func(*Element)

// setErr keeps the first declaration error.
func (e *Element) setErr(err error) {
	if e.err == nil {
		e.err = err
	}
}

// parseInto parses spec with layout.ParseScale and stores it in dst.
func (e *Element) parseInto(field string, spec any, dst **layout.Scale) {
	s, err := layout.ParseScale(spec)
	if err != nil {
		e.setErr(fmt.Errorf("%s: %w", field, err))
		return
	}
	*dst = s
}

// --- Identity ---

// WithName names the element. Named widgets are reported by name in
// Window.Layout.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets the width. spec is anything layout.ParseScale accepts,
// e.g. 120, "50%" or "2w".
func WithWidth(spec any) Option {
	return func(e *Element) {
		e.parseInto("width", spec, &e.style.Width)
	}
}

// WithHeight sets the height. spec is anything layout.ParseScale accepts.
func WithHeight(spec any) Option {
	return func(e *Element) {
		e.parseInto("height", spec, &e.style.Height)
	}
}

// WithX sets the horizontal offset inside an absolute container.
func WithX(spec any) Option {
	return func(e *Element) {
		e.parseInto("x", spec, &e.style.X)
	}
}

// WithY sets the vertical offset inside an absolute container.
func WithY(spec any) Option {
	return func(e *Element) {
		e.parseInto("y", spec, &e.style.Y)
	}
}

// --- Spacing Options ---

// WithPadding sets the padding. spec is anything layout.ParsePadding
// accepts; missing record edges are 0px.
func WithPadding(spec any) Option {
	return func(e *Element) {
		p, err := layout.ParsePadding(spec, nil)
		if err != nil {
			e.setErr(err)
			return
		}
		e.style.Padding = p
	}
}

// WithSpacing sets the gap between children of a flexible container.
// Containers without it use the window's spacing.
func WithSpacing(spec any) Option {
	return func(e *Element) {
		e.parseInto("spacing", spec, &e.spacing)
	}
}

// --- Tree Options ---

// WithChildren appends children in placement order.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.children = append(e.children, children...)
	}
}

// WithProperty attaches properties to a widget.
func WithProperty(props ...Property) Option {
	return func(e *Element) {
		e.props = append(e.props, props...)
	}
}
