package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistribute(t *testing.T) {
	type tc struct {
		dimension int
		consumers []Scale
		want      []int
	}

	tests := map[string]tc{
		"fixed only": {
			dimension: 100,
			consumers: []Scale{Px(10), Px(20)},
			want:      []int{10, 20},
		},
		"weights split leftover": {
			dimension: 100,
			consumers: []Scale{Px(20), Wt(1), Wt(3)},
			want:      []int{20, 20, 60},
		},
		"percentage resolves against full dimension": {
			dimension: 200,
			consumers: []Scale{Pct(25), Wt(1)},
			want:      []int{50, 150},
		},
		"shares are floored": {
			dimension: 10,
			consumers: []Scale{Wt(1), Wt(1), Wt(1)},
			want:      []int{3, 3, 3},
		},
		"negative leftover gives weights nothing": {
			dimension: 50,
			consumers: []Scale{Px(80), Wt(1)},
			want:      []int{80, 0},
		},
		"zero total weight": {
			dimension: 50,
			consumers: []Scale{Wt(0), Px(5)},
			want:      []int{0, 5},
		},
		"empty": {
			dimension: 50,
			consumers: []Scale{},
			want:      []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(tt.dimension, tt.consumers)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Distribute(%d, %v) mismatch (-want +got):\n%s", tt.dimension, tt.consumers, diff)
			}
		})
	}
}

func TestApplyPadding(t *testing.T) {
	weights := Padding{Top: Wt(1), Right: Wt(2), Bottom: Wt(3), Left: Wt(4)}
	fallback := PaddingAll(Px(15))
	topOnly, err := ParsePadding(PaddingSpec{Top: "25px"}, &fallback)
	if err != nil {
		t.Fatalf("ParsePadding() error = %v", err)
	}

	type tc struct {
		area    Rect
		padding Padding
		content Size
		want    Rect
	}

	tests := map[string]tc{
		"weighted edges with weighted content": {
			area:    NewRect(10, 20, 77, 200),
			padding: weights,
			want:    NewRect(54, 60, 11, 40),
		},
		"weighted edges with fixed content": {
			area:    NewRect(10, 20, 100, 200),
			padding: weights,
			content: Size{Width: ptr(Px(70)), Height: ptr(Px(20))},
			want:    NewRect(30, 65, 70, 20),
		},
		"pixel edges from fallback": {
			area:    NewRect(10, 20, 77, 200),
			padding: topOnly,
			want:    NewRect(25, 45, 47, 160),
		},
		"percentage edges": {
			area:    NewRect(0, 0, 200, 100),
			padding: PaddingSymmetric(Pct(10), Pct(5)),
			want:    NewRect(10, 10, 180, 80),
		},
		"explicit weight content counts as one unit": {
			area:    NewRect(0, 0, 90, 90),
			padding: PaddingAll(Wt(1)),
			content: Size{Width: ptr(Wt(7)), Height: ptr(Wt(7))},
			want:    NewRect(30, 30, 30, 30),
		},
		"oversized padding clamps to zero": {
			area:    NewRect(0, 0, 10, 10),
			padding: PaddingAll(Px(8)),
			want:    NewRect(8, 8, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.area
			ApplyPadding(&got, tt.padding, tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ApplyPadding() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyPadding_ZeroIsIdentity(t *testing.T) {
	zero, err := ParsePadding(0, nil)
	if err != nil {
		t.Fatalf("ParsePadding(0) error = %v", err)
	}

	for _, area := range []Rect{
		NewRect(0, 0, 0, 0),
		NewRect(10, 20, 77, 200),
		NewRect(-5, -5, 3, 1),
	} {
		got := area
		ApplyPadding(&got, zero, Size{})
		if got != area {
			t.Errorf("ApplyPadding(%v, 0) = %v, want unchanged", area, got)
		}
	}
}

func TestPadding_Resolve(t *testing.T) {
	p := Padding{Top: Wt(1), Right: Wt(2), Bottom: Wt(3), Left: Wt(4)}
	got := p.Resolve(NewRect(10, 20, 77, 200), Size{})
	want := EdgeTRBL(40, 22, 120, 44)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
	if inset := NewRect(10, 20, 77, 200).Inset(got); inset != NewRect(54, 60, 11, 40) {
		t.Errorf("Inset(Resolve()) = %v, want (54,60 11x40)", inset)
	}
}
