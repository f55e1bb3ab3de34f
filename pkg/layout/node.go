package layout

// Node is a plain Layoutable tree node.
type Node struct {
	// Configuration (user-set)
	Style    Style
	Children []*Node

	// Computed (set by layout engine)
	Layout Layout
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{Style: style}
}

// AddChild appends children in placement order.
func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// LayoutStyle implements Layoutable.
func (n *Node) LayoutStyle() Style {
	return n.Style
}

// LayoutChildren implements Layoutable.
func (n *Node) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.Children))
	for i, c := range n.Children {
		out[i] = c
	}
	return out
}

// SetLayout implements Layoutable.
func (n *Node) SetLayout(l Layout) {
	n.Layout = l
}

// GetLayout implements Layoutable.
func (n *Node) GetLayout() Layout {
	return n.Layout
}
