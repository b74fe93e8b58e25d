// Package place provides the CLI runner for overlay placement.
package place

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/printers"
)

// Place computes where a panel of size Panel opens next to Anchor.
type Place struct {
	Anchor     overlay.Rect
	Panel      overlay.Size
	Viewport   overlay.Size
	Scroll     overlay.Point
	Options    overlay.Options
	Breakpoint float64
	Printer    *printers.PrettyPrint
}

// Result is the panel origin and how the overlay is shown.
type Result struct {
	Presentation overlay.Presentation `json:"presentation" yaml:"presentation"`
	Placement    overlay.Side         `json:"placement" yaml:"placement"`
	Top          float64              `json:"top" yaml:"top"`
	Left         float64              `json:"left" yaml:"left"`
}

// Run places without printing. Sheets ignore the popover origin but it is
// still reported.
func (p *Place) Run() Result {
	panel := overlay.Rect{Width: p.Panel.Width, Height: p.Panel.Height}
	pos := overlay.Place(p.Anchor, panel, p.Viewport, p.Scroll, p.Options)
	return Result{
		Presentation: overlay.Present(p.Viewport.Width, p.Breakpoint),
		Placement:    pos.Placement,
		Top:          pos.Top,
		Left:         pos.Left,
	}
}

func (p *Place) Do(_ context.Context) error {
	if p.Printer == nil {
		return errors.New("place: no printer")
	}
	res := p.Run()
	return p.Printer.Fields(res, [][2]string{
		{"Presentation", string(res.Presentation)},
		{"Placement", string(res.Placement)},
		{"Top", num(res.Top)},
		{"Left", num(res.Left)},
	})
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseRect reads "top,left,width,height".
func ParseRect(s string) (overlay.Rect, error) {
	v, err := floats(s, 4)
	if err != nil {
		return overlay.Rect{}, fmt.Errorf("rect %q: %w", s, err)
	}
	return overlay.Rect{Top: v[0], Left: v[1], Width: v[2], Height: v[3]}, nil
}

// ParseSize reads "width,height".
func ParseSize(s string) (overlay.Size, error) {
	v, err := floats(s, 2)
	if err != nil {
		return overlay.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	return overlay.Size{Width: v[0], Height: v[1]}, nil
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (overlay.Point, error) {
	v, err := floats(s, 2)
	if err != nil {
		return overlay.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return overlay.Point{X: v[0], Y: v[1]}, nil
}

func floats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma separated numbers", n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
