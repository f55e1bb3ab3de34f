package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the cell the parent allocated to this node, padding included.
	Rect Rect

	// ContentRect is Rect minus padding: the widget bounds for a leaf and the
	// area children are placed in for a container.
	ContentRect Rect
}
