package layout

import "math"

// Size is the content size declared on each axis. A nil field means the
// content has no size of its own and is treated as one unit of weight.
type Size struct {
	Width, Height *Scale
}

// Distribute resolves every consumer on an axis of the given dimension.
//
// Pixel consumers keep their amount and percentage consumers take a percent of
// the full dimension. What remains after both is the leftover, which weight
// consumers split in proportion to their weight. Each share is floored, and a
// negative leftover gives weights nothing.
func Distribute(dimension int, consumers []Scale) []int {
	sizes := make([]int, len(consumers))
	leftover := dimension
	totalWeight := 0.0

	for i, c := range consumers {
		if c.IsWeight() {
			totalWeight += c.Amount
			continue
		}
		sizes[i] = c.fixed(dimension)
		leftover -= sizes[i]
	}

	if totalWeight <= 0 || leftover <= 0 {
		return sizes
	}
	for i, c := range consumers {
		if c.IsWeight() {
			sizes[i] = max(0, int(math.Floor(float64(leftover)*c.Amount/totalWeight)))
		}
	}
	return sizes
}

// distributeAxis sizes a leading edge, content and trailing edge on one axis.
//
// Weight-typed content joins the pool as a single unit and absorbs whatever
// the edges leave, so rounding remainders stay inside the content. Fixed
// content is excluded from the pool and keeps its own size; only the weighted
// edges split what is left beside it.
func distributeAxis(dimension int, lead Scale, content *Scale, trail Scale) (leadPx, contentPx, trailPx int) {
	if content == nil || content.IsWeight() {
		sizes := Distribute(dimension, []Scale{lead, Wt(1), trail})
		leadPx, trailPx = sizes[0], sizes[2]
		return leadPx, max(0, dimension-leadPx-trailPx), trailPx
	}
	sizes := Distribute(dimension, []Scale{lead, *content, trail})
	return sizes[0], max(0, sizes[1]), sizes[2]
}

// Resolve returns the pixel size of each padding edge inside area for content
// of the given size.
func (p Padding) Resolve(area Rect, content Size) Edges {
	left, _, right := distributeAxis(area.Width, p.Left, content.Width, p.Right)
	top, _, bottom := distributeAxis(area.Height, p.Top, content.Height, p.Bottom)
	return EdgeTRBL(top, right, bottom, left)
}

// ApplyPadding shrinks area in place by the resolved padding.
//
// The area moves right by the left edge and down by the top edge. Weight-typed
// content keeps everything between the edges; fixed content keeps its own
// size. Width and height never go below zero.
func ApplyPadding(area *Rect, padding Padding, content Size) {
	left, width, _ := distributeAxis(area.Width, padding.Left, content.Width, padding.Right)
	top, height, _ := distributeAxis(area.Height, padding.Top, content.Height, padding.Bottom)
	area.X += left
	area.Y += top
	area.Width = width
	area.Height = height
}
