package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlexible(t *testing.T) {
	type tc struct {
		items   []FlexItem
		area    Rect
		dir     Direction
		spacing Scale
		want    []Rect
	}

	tests := map[string]tc{
		"fixed and weighted row": {
			items: []FlexItem{
				{Width: ptr(Px(20))},
				{Width: ptr(Wt(1))},
				{Width: ptr(Wt(3))},
			},
			area: NewRect(0, 0, 100, 50),
			dir:  Horizontal,
			want: []Rect{
				NewRect(0, 0, 20, 50),
				NewRect(20, 0, 20, 50),
				NewRect(40, 0, 60, 50),
			},
		},
		"unspecified size is one weight": {
			items: []FlexItem{{}, {}},
			area:  NewRect(5, 5, 40, 10),
			dir:   Horizontal,
			want: []Rect{
				NewRect(5, 5, 20, 10),
				NewRect(25, 5, 20, 10),
			},
		},
		"pixel spacing between children": {
			items:   []FlexItem{{}, {}, {}},
			area:    NewRect(0, 0, 100, 10),
			dir:     Horizontal,
			spacing: Px(5),
			want: []Rect{
				NewRect(0, 0, 30, 10),
				NewRect(35, 0, 30, 10),
				NewRect(70, 0, 30, 10),
			},
		},
		"weighted spacing shares the pool": {
			items: []FlexItem{
				{Width: ptr(Wt(2))},
				{Width: ptr(Wt(2))},
			},
			area:    NewRect(0, 0, 50, 10),
			dir:     Horizontal,
			spacing: Wt(1),
			want: []Rect{
				NewRect(0, 0, 20, 10),
				NewRect(30, 0, 20, 10),
			},
		},
		"vertical with percentage and cross size": {
			items: []FlexItem{
				{Height: ptr(Pct(25)), Width: ptr(Pct(50))},
				{},
			},
			area: NewRect(10, 20, 40, 200),
			dir:  Vertical,
			want: []Rect{
				NewRect(10, 20, 20, 50),
				NewRect(10, 70, 40, 150),
			},
		},
		"padding takes part on both axes": {
			items: []FlexItem{
				{Padding: PaddingAll(Px(5))},
				{Width: ptr(Px(20))},
			},
			area: NewRect(0, 0, 100, 50),
			dir:  Horizontal,
			want: []Rect{
				NewRect(5, 5, 70, 40),
				NewRect(80, 0, 20, 50),
			},
		},
		"weighted cross padding centers fixed content": {
			items: []FlexItem{
				{Height: ptr(Px(20)), Padding: Padding{Top: Wt(1), Bottom: Wt(1)}},
			},
			area: NewRect(0, 0, 30, 50),
			dir:  Horizontal,
			want: []Rect{NewRect(0, 15, 30, 20)},
		},
		"overflow leaves weighted child empty": {
			items: []FlexItem{
				{Width: ptr(Px(80))},
				{},
				{Width: ptr(Px(80))},
			},
			area: NewRect(0, 0, 100, 10),
			dir:  Horizontal,
			want: []Rect{
				NewRect(0, 0, 80, 10),
				NewRect(80, 0, 0, 10),
				NewRect(80, 0, 80, 10),
			},
		},
		"no items": {
			area: NewRect(0, 0, 10, 10),
			want: []Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Flexible(tt.items, tt.area, tt.dir, tt.spacing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flexible() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlexible_DeclarationOrder(t *testing.T) {
	items := []FlexItem{{Width: ptr(Px(30))}, {Width: ptr(Px(10))}, {Width: ptr(Px(20))}}
	rects := Flexible(items, NewRect(0, 0, 100, 10), Horizontal, Px(0))
	for i := 1; i < len(rects); i++ {
		if rects[i].X != rects[i-1].Right() {
			t.Errorf("rects[%d].X = %d, want %d", i, rects[i].X, rects[i-1].Right())
		}
	}
}

func TestFlexible_CellIncludesPadding(t *testing.T) {
	layouts := flexible([]FlexItem{{Width: ptr(Px(40)), Padding: PaddingAll(Px(3))}}, NewRect(0, 0, 100, 20), Horizontal, Px(0))
	if got, want := layouts[0].Rect, NewRect(0, 0, 46, 20); got != want {
		t.Errorf("cell = %v, want %v", got, want)
	}
	if got, want := layouts[0].ContentRect, NewRect(3, 3, 40, 14); got != want {
		t.Errorf("content = %v, want %v", got, want)
	}
}
