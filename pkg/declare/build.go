package declare

import (
	"fmt"
	"sort"

	"github.com/grindlemire/go-flexui"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

// NodeError reports a structural problem at a node path such as
// "content[1].children[0]".
type NodeError struct {
	Path string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Build builds a closed window from the declaration. defaults are applied
// first, so values in the file win over them.
func (f *File) Build(defaults ...flexui.WindowOption) (*flexui.Window, error) {
	decl := f.Window

	opts := append([]flexui.WindowOption{}, defaults...)
	if decl.Title != "" {
		opts = append(opts, flexui.WithTitle(flexui.Static(decl.Title)))
	}
	if decl.Padding != nil {
		opts = append(opts, flexui.WithWindowPadding(decl.Padding))
	}
	if decl.Spacing != nil {
		opts = append(opts, flexui.WithWindowSpacing(decl.Spacing))
	}
	if decl.Direction != "" {
		dir, err := parseDirection(decl.Direction)
		if err != nil {
			return nil, &NodeError{Path: "window.direction", Err: err}
		}
		opts = append(opts, flexui.WithDirection(dir))
	}

	content := make([]*flexui.Element, len(decl.Content))
	for i, n := range decl.Content {
		el, err := n.element(fmt.Sprintf("content[%d]", i))
		if err != nil {
			return nil, err
		}
		content[i] = el
	}
	opts = append(opts, flexui.WithContent(content...))

	w, err := flexui.NewWindow(opts...)
	if err != nil {
		return nil, err
	}

	if decl.Width != 0 || decl.Height != 0 {
		width, height := w.Size()
		if decl.Width != 0 {
			width = decl.Width
		}
		if decl.Height != 0 {
			height = decl.Height
		}
		if err := w.Resize(width, height); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Element builds the node and its descendants.
func (n Node) Element() (*flexui.Element, error) {
	return n.element(n.Type)
}

func (n Node) element(path string) (*flexui.Element, error) {
	if n.Type == "" {
		return nil, &NodeError{Path: path, Err: fmt.Errorf("missing type")}
	}

	var opts []flexui.Option
	if n.Name != "" {
		opts = append(opts, flexui.WithName(n.Name))
	}
	if n.Width != nil {
		opts = append(opts, flexui.WithWidth(n.Width))
	}
	if n.Height != nil {
		opts = append(opts, flexui.WithHeight(n.Height))
	}
	if n.X != nil {
		opts = append(opts, flexui.WithX(n.X))
	}
	if n.Y != nil {
		opts = append(opts, flexui.WithY(n.Y))
	}
	if n.Padding != nil {
		opts = append(opts, flexui.WithPadding(n.Padding))
	}
	if n.Spacing != nil {
		opts = append(opts, flexui.WithSpacing(n.Spacing))
	}

	if len(n.Children) > 0 {
		children := make([]*flexui.Element, len(n.Children))
		for i, c := range n.Children {
			el, err := c.element(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children[i] = el
		}
		opts = append(opts, flexui.WithChildren(children...))
	}

	if len(n.Props) > 0 {
		keys := make([]string, 0, len(n.Props))
		for k := range n.Props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		props := make([]flexui.Property, len(keys))
		for i, k := range keys {
			props[i] = flexui.Prop(k, flexui.Static(n.Props[k]))
		}
		opts = append(opts, flexui.WithProperty(props...))
	}

	switch n.Type {
	case flexui.KindHorizontal:
		return flexui.Horizontal(opts...), nil
	case flexui.KindVertical:
		return flexui.Vertical(opts...), nil
	case flexui.KindAbsolute:
		return flexui.Absolute(opts...), nil
	default:
		if len(n.Children) > 0 {
			return nil, &NodeError{Path: path, Err: fmt.Errorf("widget %q cannot have children", n.Type)}
		}
		return flexui.Widget(n.Type, opts...), nil
	}
}

func parseDirection(s string) (layout.Direction, error) {
	switch s {
	case "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
