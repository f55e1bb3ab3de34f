package layout

// Edges is a padding resolved to pixels.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeTRBL creates Edges in CSS order.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
