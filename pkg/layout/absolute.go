package layout

// AbsoluteItem is a child of an absolute container. X and Y default to 0px,
// Width and Height default to 100% of the container.
type AbsoluteItem struct {
	X, Y, Width, Height *Scale
	Padding             Padding
}

// Absolute positions every item independently inside area and returns each
// item's content rectangle, in declaration order.
//
// Each property forms its own pool across all items: widths compete with
// widths, heights with heights, x offsets with x offsets and y offsets with
// y offsets. Items may overlap.
func Absolute(items []AbsoluteItem, area Rect) []Rect {
	layouts := absolute(items, area)
	rects := make([]Rect, len(layouts))
	for i, l := range layouts {
		rects[i] = l.ContentRect
	}
	return rects
}

func absolute(items []AbsoluteItem, area Rect) []Layout {
	if len(items) == 0 {
		return nil
	}

	xs := resolvePool(items, area.Width, Px(0), func(it AbsoluteItem) *Scale { return it.X })
	ys := resolvePool(items, area.Height, Px(0), func(it AbsoluteItem) *Scale { return it.Y })
	widths := resolvePool(items, area.Width, Pct(100), func(it AbsoluteItem) *Scale { return it.Width })
	heights := resolvePool(items, area.Height, Pct(100), func(it AbsoluteItem) *Scale { return it.Height })

	layouts := make([]Layout, len(items))
	for i, item := range items {
		cell := NewRect(xs[i], ys[i], max(0, widths[i]), max(0, heights[i])).Translate(area.X, area.Y)
		content := cell
		ApplyPadding(&content, item.Padding, Size{})
		layouts[i] = Layout{Rect: cell, ContentRect: content}
	}
	return layouts
}

// resolvePool distributes one property of every item over dimension.
func resolvePool(items []AbsoluteItem, dimension int, fallback Scale, get func(AbsoluteItem) *Scale) []int {
	scales := make([]Scale, len(items))
	for i, it := range items {
		if s := get(it); s != nil {
			scales[i] = *s
		} else {
			scales[i] = fallback
		}
	}
	return Distribute(dimension, scales)
}
