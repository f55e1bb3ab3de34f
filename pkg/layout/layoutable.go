package layout

// Layoutable is a node of a tree that Calculate can solve. The engine reads
// style and children through it and writes the result back with SetLayout,
// so any tree type can be laid out without conversion.
type Layoutable interface {
	LayoutStyle() Style

	// LayoutChildren returns the children in placement order.
	LayoutChildren() []Layoutable

	SetLayout(Layout)
	GetLayout() Layout
}
