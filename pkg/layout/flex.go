package layout

// Direction specifies the main axis of a flexible container.
type Direction uint8

const (
	Horizontal Direction = iota // Children placed left-to-right
	Vertical                    // Children placed top-to-bottom
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// FlexItem is a child of a flexible container.
// A nil main-axis size means one unit of weight; a nil cross-axis size fills
// the container's cross extent.
type FlexItem struct {
	Width, Height *Scale
	Padding       Padding
}

// Flexible places items one after another along the main axis of area and
// returns each item's content rectangle, in declaration order.
//
// Pass 1 gathers every consumer on the main axis: each item's leading padding,
// size and trailing padding, plus the spacing between neighbours. Pass 2 runs
// them through a single Distribute so weighted sizes, weighted padding and
// weighted spacing all share one pool, then walks the items with a running
// offset. The cross axis is solved per item against the full cross extent.
func Flexible(items []FlexItem, area Rect, dir Direction, spacing Scale) []Rect {
	layouts := flexible(items, area, dir, spacing)
	rects := make([]Rect, len(layouts))
	for i, l := range layouts {
		rects[i] = l.ContentRect
	}
	return rects
}

func flexible(items []FlexItem, area Rect, dir Direction, spacing Scale) []Layout {
	if len(items) == 0 {
		return nil
	}
	isRow := dir == Horizontal

	mainSize, crossSize := area.Width, area.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Pass 1: main-axis consumers in placement order.
	consumers := make([]Scale, 0, len(items)*4)
	for i, item := range items {
		if i > 0 {
			consumers = append(consumers, spacing)
		}
		lead, trail := item.mainEdges(isRow)
		consumers = append(consumers, lead, item.mainSize(isRow), trail)
	}

	// Pass 2: distribute and place.
	sizes := Distribute(mainSize, consumers)
	layouts := make([]Layout, len(items))
	offset, k := 0, 0
	for i, item := range items {
		if i > 0 {
			offset += sizes[k]
			k++
		}
		lead, size, trail := sizes[k], max(0, sizes[k+1]), sizes[k+2]
		k += 3

		crossLeadScale, crossTrailScale := item.crossEdges(isRow)
		crossLead, crossContent, _ := distributeAxis(crossSize, crossLeadScale, item.crossScale(isRow), crossTrailScale)

		var cell, content Rect
		if isRow {
			cell = Rect{X: area.X + offset, Y: area.Y, Width: max(0, lead+size+trail), Height: max(0, area.Height)}
			content = Rect{X: area.X + offset + lead, Y: area.Y + crossLead, Width: size, Height: crossContent}
		} else {
			cell = Rect{X: area.X, Y: area.Y + offset, Width: max(0, area.Width), Height: max(0, lead+size+trail)}
			content = Rect{X: area.X + crossLead, Y: area.Y + offset + lead, Width: crossContent, Height: size}
		}
		layouts[i] = Layout{Rect: cell, ContentRect: content}

		offset += lead + size + trail
	}
	return layouts
}

func (it FlexItem) mainSize(isRow bool) Scale {
	s := it.Height
	if isRow {
		s = it.Width
	}
	if s == nil {
		return Wt(1)
	}
	return *s
}

func (it FlexItem) crossScale(isRow bool) *Scale {
	if isRow {
		return it.Height
	}
	return it.Width
}

func (it FlexItem) mainEdges(isRow bool) (lead, trail Scale) {
	if isRow {
		return it.Padding.Left, it.Padding.Right
	}
	return it.Padding.Top, it.Padding.Bottom
}

func (it FlexItem) crossEdges(isRow bool) (lead, trail Scale) {
	if isRow {
		return it.Padding.Top, it.Padding.Bottom
	}
	return it.Padding.Left, it.Padding.Right
}
