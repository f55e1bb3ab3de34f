package flexui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grindlemire/go-flexui/internal/debug"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

// Window builds a declared element tree into host widgets and keeps their
// properties bound to stores while it is open.
//
// Example:
//
//	count := flexui.NewStore(0)
//	win, err := flexui.NewWindow(
//	    flexui.WithTitle(flexui.Static("Counter")),
//	    flexui.WithSize(200, 80),
//	    flexui.WithContent(
//	        flexui.Widget("label", flexui.WithProperty(
//	            flexui.PropConv("text", flexui.Bound(count), func(n int) any {
//	                return fmt.Sprintf("Count: %d", n)
//	            }),
//	        )),
//	    ),
//	)
//	if err != nil { ... }
//	if err := win.Open(host); err != nil { ... }
//	defer win.Close()
type Window struct {
	classification string
	title          Source[string]
	width, height  int
	spacing        layout.Scale
	root           *Element

	onOpen, onUpdate, onClose []func()

	host    HostWindow
	binder  *Binder
	widgets []*Element
	open    bool
}

// NewWindow creates a closed window from options.
func NewWindow(opts ...WindowOption) (*Window, error) {
	w := &Window{
		classification: "flexui-" + uuid.NewString(),
		title:          Static(""),
		width:          DefaultWindowWidth,
		height:         DefaultWindowHeight,
		spacing:        defaultSpacing,
		root:           Vertical(),
	}
	w.root.style.Padding = defaultWindowPadding

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Classification returns the identifier passed to the host.
func (w *Window) Classification() string {
	return w.classification
}

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Root returns the top-level container holding the window content.
func (w *Window) Root() *Element {
	return w.root
}

// IsOpen reports whether the window is open.
func (w *Window) IsOpen() bool {
	return w.open
}

// Open validates the declaration, asks host for a window, solves the layout,
// creates every widget and binds all store-backed properties.
// On failure nothing stays open.
func (w *Window) Open(host Host) error {
	if w.open {
		return ErrWindowOpen
	}
	if host == nil {
		return fmt.Errorf("flexui: nil host")
	}
	if err := w.root.validate(); err != nil {
		return err
	}

	hw, err := host.OpenWindow(WindowSpec{
		Classification: w.classification,
		Title:          w.title.Get(),
		Width:          w.width,
		Height:         w.height,
	})
	if err != nil {
		return fmt.Errorf("flexui: open window %s: %w", w.classification, err)
	}

	binder := NewBinder()
	Add(binder, hw, "title", w.title, nil)

	w.solve()

	var widgets []*Element
	buildErr := w.root.walk(func(el *Element) error {
		if el.IsContainer() {
			return nil
		}
		widget, err := hw.CreateWidget(WidgetSpec{Kind: el.kind, Name: el.name, Bounds: el.Bounds()})
		if err != nil {
			return &BuildError{Element: el.label(), Err: err}
		}
		el.widget = widget
		widgets = append(widgets, el)
		for _, p := range el.props {
			if err := p.apply(binder, widget); err != nil {
				return &BuildError{Element: el.label(), Err: fmt.Errorf("property %s: %w", p.Key(), err)}
			}
		}
		return nil
	})
	if buildErr != nil {
		for _, el := range widgets {
			el.widget = nil
		}
		hw.Close()
		return buildErr
	}

	binder.Bind()
	w.host, w.binder, w.widgets, w.open = hw, binder, widgets, true
	debug.Log("Window.Open: %s with %d widgets, %d bindings", w.classification, len(widgets), binder.Len())

	runHooks(w.onOpen)
	return nil
}

// solve lays out the tree inside the window bounds.
func (w *Window) solve() {
	w.root.inheritSpacing(w.spacing)
	layout.Calculate(w.root, layout.NewRect(0, 0, w.width, w.height))
}

// Update runs the update hooks. It does nothing while the window is closed.
func (w *Window) Update() {
	if !w.open {
		return
	}
	runHooks(w.onUpdate)
}

// Resize changes the window size and, when open, re-solves the layout and
// moves every widget to its new bounds.
func (w *Window) Resize(width, height int) error {
	if err := WithSize(width, height)(w); err != nil {
		return err
	}
	if !w.open {
		return nil
	}

	w.solve()
	w.host.SetProperty("width", width)
	w.host.SetProperty("height", height)
	for _, el := range w.widgets {
		el.widget.SetBounds(el.Bounds())
	}
	debug.Log("Window.Resize: %s to %dx%d", w.classification, width, height)
	return nil
}

// Close releases every binding, closes the host window and runs the close
// hooks. Closing a closed window is a no-op.
func (w *Window) Close() {
	if !w.open {
		return
	}
	w.binder.Unbind()
	w.host.Close()
	for _, el := range w.widgets {
		el.widget = nil
	}
	w.host, w.binder, w.widgets, w.open = nil, nil, nil, false
	debug.Log("Window.Close: %s", w.classification)

	runHooks(w.onClose)
}

// Layout solves the current declaration and returns each widget's bounds,
// keyed by name. Unnamed widgets are keyed "<kind>#<n>" with n counting
// widgets in declaration order. Two widgets with the same key are an
// ErrDuplicateName.
func (w *Window) Layout() (map[string]layout.Rect, error) {
	if err := w.root.validate(); err != nil {
		return nil, err
	}
	w.solve()

	out := make(map[string]layout.Rect)
	n := 0
	err := w.root.walk(func(el *Element) error {
		if el.IsContainer() {
			return nil
		}
		key := el.name
		if key == "" {
			key = fmt.Sprintf("%s#%d", el.kind, n)
		}
		n++
		if _, dup := out[key]; dup {
			return &BuildError{Element: key, Err: ErrDuplicateName}
		}
		out[key] = el.Bounds()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func runHooks(hooks []func()) {
	for _, fn := range hooks {
		if fn != nil {
			invoke("Window.hook", func(struct{}) { fn() }, struct{}{})
		}
	}
}
