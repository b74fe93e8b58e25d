package overlay

import "testing"

func TestPlaceFlipsAboveWhenBottomIsTight(t *testing.T) {
	anchor := Rect{Top: 700, Left: 100, Width: 200, Height: 32}
	panel := Rect{Width: 320, Height: 300}
	pos := Place(anchor, panel, Size{Width: 1024, Height: 800}, Point{}, DefaultOptions())
	if pos.Placement != SideTop {
		t.Fatalf("expected placement top, got %s", pos.Placement)
	}
	if pos.Top != 700-300-8 {
		t.Fatalf("unexpected top %v", pos.Top)
	}
}

func TestPlaceOpensBelowWhenItFits(t *testing.T) {
	anchor := Rect{Top: 100, Left: 40, Width: 200, Height: 32}
	panel := Rect{Width: 320, Height: 300}
	pos := Place(anchor, panel, Size{Width: 1024, Height: 800}, Point{X: 0, Y: 250}, DefaultOptions())
	if pos.Placement != SideBottom {
		t.Fatalf("expected placement bottom, got %s", pos.Placement)
	}
	if pos.Top != 132+8+250 {
		t.Fatalf("unexpected top %v", pos.Top)
	}
	if pos.Left != 40 {
		t.Fatalf("unexpected left %v", pos.Left)
	}
}

func TestPlaceBottomBoundaryIsInclusive(t *testing.T) {
	// 460 + 32 + 8 + 292 == 800 - 8
	anchor := Rect{Top: 460, Left: 0, Width: 100, Height: 32}
	pos := Place(anchor, Rect{Width: 100, Height: 292}, Size{Width: 400, Height: 800}, Point{}, DefaultOptions())
	if pos.Placement != SideBottom {
		t.Fatalf("expected exact fit to stay below, got %s", pos.Placement)
	}
}

func TestPlaceClampsLeft(t *testing.T) {
	opts := DefaultOptions()
	tests := map[string]struct {
		anchor Rect
		panel  Rect
		vp     Size
		scroll Point
		want   float64
	}{
		"right edge": {
			anchor: Rect{Left: 900, Top: 10, Height: 20},
			panel:  Rect{Width: 300, Height: 100},
			vp:     Size{Width: 1000, Height: 800},
			want:   1000 - 300 - 8,
		},
		"left edge": {
			anchor: Rect{Left: 2, Top: 10, Height: 20},
			panel:  Rect{Width: 300, Height: 100},
			vp:     Size{Width: 1000, Height: 800},
			want:   8,
		},
		"wider than viewport": {
			anchor: Rect{Left: 50, Top: 10, Height: 20},
			panel:  Rect{Width: 600, Height: 100},
			vp:     Size{Width: 400, Height: 800},
			want:   8,
		},
		"scrolled": {
			anchor: Rect{Left: 900, Top: 10, Height: 20},
			panel:  Rect{Width: 300, Height: 100},
			vp:     Size{Width: 1000, Height: 800},
			scroll: Point{X: 50},
			want:   50 + 1000 - 300 - 8,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Place(tc.anchor, tc.panel, tc.vp, tc.scroll, opts)
			if got.Left != tc.want {
				t.Fatalf("left = %v, want %v", got.Left, tc.want)
			}
		})
	}
}

func TestPresent(t *testing.T) {
	if Present(639, 0) != Sheet {
		t.Fatalf("639 should be a sheet")
	}
	if Present(640, 0) != Popover {
		t.Fatalf("640 should be a popover")
	}
	if Present(100, 80) != Popover {
		t.Fatalf("custom breakpoint ignored")
	}
}
