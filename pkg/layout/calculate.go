package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout populated.
//
// The root receives area as its cell; its own padding is applied with
// weight-typed content, and its children are placed in what remains.
func Calculate(root Layoutable, area Rect) {
	if root == nil {
		return
	}
	content := area
	ApplyPadding(&content, root.LayoutStyle().Padding, Size{})
	root.SetLayout(Layout{Rect: area, ContentRect: content})
	layoutChildren(root, content)
}

// layoutChildren solves the direct children of node inside contentRect and
// recurses into each child's content rect.
func layoutChildren(node Layoutable, contentRect Rect) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	style := node.LayoutStyle()
	var layouts []Layout
	switch style.Mode {
	case ModeAbsolute:
		items := make([]AbsoluteItem, len(children))
		for i, child := range children {
			cs := child.LayoutStyle()
			items[i] = AbsoluteItem{X: cs.X, Y: cs.Y, Width: cs.Width, Height: cs.Height, Padding: cs.Padding}
		}
		layouts = absolute(items, contentRect)
	default:
		items := make([]FlexItem, len(children))
		for i, child := range children {
			cs := child.LayoutStyle()
			items[i] = FlexItem{Width: cs.Width, Height: cs.Height, Padding: cs.Padding}
		}
		layouts = flexible(items, contentRect, style.Direction, style.Spacing)
	}

	for i, child := range children {
		child.SetLayout(layouts[i])
		layoutChildren(child, layouts[i].ContentRect)
	}
}
