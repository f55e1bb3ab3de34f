package layout

// Mode specifies how a container places its children.
type Mode uint8

const (
	ModeFlexible Mode = iota // Sequential placement along Direction
	ModeAbsolute             // Independent placement from X/Y/Width/Height
)

func (m Mode) String() string {
	if m == ModeAbsolute {
		return "absolute"
	}
	return "flexible"
}

// Style contains the layout properties of a node.
type Style struct {
	// Sizing, read by the parent container. X and Y are only used by
	// absolute parents.
	Width, Height *Scale
	X, Y          *Scale
	Padding       Padding

	// Container properties
	Mode      Mode
	Direction Direction
	Spacing   Scale // Gap between flexible children
}

// DefaultStyle returns a horizontal flexible style with no padding or spacing.
func DefaultStyle() Style {
	return Style{Mode: ModeFlexible, Direction: Horizontal, Spacing: Px(0), Padding: PaddingAll(Px(0))}
}
