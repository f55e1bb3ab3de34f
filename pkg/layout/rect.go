package layout

import "fmt"

// Rect is an axis-aligned rectangle in pixels with its origin at the top-left.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the pixel at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely within r. An empty other
// is contained when its origin is within r's bounds, edges included.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return other.X >= r.X && other.X <= r.Right() && other.Y >= r.Y && other.Y <= r.Bottom()
	}
	return other.X >= r.X && other.Right() <= r.Right() && other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Inset shrinks r by resolved edges. The size never goes below zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Horizontal()),
		Height: max(0, r.Height-e.Vertical()),
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of r and other, or the zero Rect when they
// do not overlap. Touching edges do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x, y := max(r.X, other.X), max(r.Y, other.Y)
	right, bottom := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rectangle covering r and other. Empty
// rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	x, y := min(r.X, other.X), min(r.Y, other.Y)
	right, bottom := max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
