// Package overlay computes where an anchored picker panel goes and manages
// the resources an open overlay holds: document listeners, the shared
// scroll lock, scheduled repositioning and deferred focus.
package overlay

import "math"

// Rect is a box in viewport coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the lower edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Size is a width and height.
type Size struct {
	Width  float64
	Height float64
}

// Point is a scroll offset.
type Point struct {
	X float64
	Y float64
}

// Side says which side of the anchor the panel opens on.
type Side string

const (
	// SideBottom opens below the anchor.
	SideBottom Side = "bottom"
	// SideTop opens above the anchor.
	SideTop Side = "top"
)

// Position is the computed panel origin in document coordinates.
type Position struct {
	Top       float64
	Left      float64
	Placement Side
}

// Options are the spacing constants of the placement math.
type Options struct {
	// Padding keeps the panel away from the viewport edges.
	Padding float64
	// Gap separates the panel from its anchor.
	Gap float64
}

// DefaultOptions returns the 8px padding and gap used by browser hosts.
func DefaultOptions() Options {
	return Options{Padding: 8, Gap: 8}
}

// Place positions panel next to anchor. The panel opens below the anchor when
// it fits above the bottom padding and flips above it otherwise. The left
// edge follows the anchor and is clamped so the panel stays inside the
// horizontal padding.
func Place(anchor, panel Rect, viewport Size, scroll Point, opts Options) Position {
	hasBottomSpace := anchor.Bottom()+opts.Gap+panel.Height <= viewport.Height-opts.Padding

	pos := Position{Placement: SideBottom}
	if hasBottomSpace {
		pos.Top = anchor.Bottom() + opts.Gap + scroll.Y
	} else {
		pos.Placement = SideTop
		pos.Top = anchor.Top - panel.Height - opts.Gap + scroll.Y
	}

	lo := scroll.X + opts.Padding
	hi := math.Max(lo, scroll.X+viewport.Width-panel.Width-opts.Padding)
	pos.Left = clamp(anchor.Left+scroll.X, lo, hi)
	return pos
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Presentation is how an open overlay is shown.
type Presentation string

const (
	// Popover is a panel anchored to its field.
	Popover Presentation = "popover"
	// Sheet is a full width panel docked to the bottom of the viewport.
	Sheet Presentation = "sheet"
)

// DefaultSheetBreakpoint is the viewport width below which overlays become
// sheets.
const DefaultSheetBreakpoint = 640

// Present picks sheet or popover from the viewport width alone.
func Present(viewportWidth, breakpoint float64) Presentation {
	if breakpoint <= 0 {
		breakpoint = DefaultSheetBreakpoint
	}
	if viewportWidth < breakpoint {
		return Sheet
	}
	return Popover
}
