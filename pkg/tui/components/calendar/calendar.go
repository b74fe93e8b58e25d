// Package calendar provides the month grid pickers drive through their
// calendar attributes.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
	"tableflip.dev/tempo/pkg/tui/theme"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Date       temporal.Date
	Disabled   bool
	IsToday    bool
	IsSelected bool
	InRange    bool
	IsCursor   bool
}

// Bounds are the parsed min and max dates. A zero side is open.
type Bounds struct {
	Min temporal.Date
	Max temporal.Date
}

// ParseBounds reads ISO min/max attributes. Anything else leaves that side
// open.
func ParseBounds(min, max string) Bounds {
	var b Bounds
	if d, ok := temporal.ParseISODate(min); ok {
		b.Min = d
	}
	if d, ok := temporal.ParseISODate(max); ok {
		b.Max = d
	}
	return b
}

// Allows reports whether d lies within the bounds.
func (b Bounds) Allows(d temporal.Date) bool {
	if !b.Min.IsZero() && d.Before(b.Min) {
		return false
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return false
	}
	return true
}

// Grid lays the month of month out as weeks starting on weekStart. Cells
// before the first and after the last day are zero dates.
func Grid(month temporal.Date, weekStart time.Weekday) [][]temporal.Date {
	first := month.StartOfMonth()
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	daysInMonth := temporal.DaysIn(first.Year, first.Month)
	totalCells := offset + daysInMonth
	rows := (totalCells + 6) / 7

	grid := make([][]temporal.Date, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]temporal.Date, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				continue
			}
			grid[row][col] = first.AddDays(day - 1)
		}
	}
	return grid
}

// WeekdayHeader renders two letter weekday names starting at weekStart.
func WeekdayHeader(weekStart time.Weekday) string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(weekStart) + i) % 7).String()[0:2]
	}
	return strings.Join(names, " ")
}

// Describe resolves the render state of d.
func Describe(d, today, cursor temporal.Date, sel span.Range[temporal.Date], b Bounds) Day {
	info := Day{
		Date:     d,
		Disabled: !b.Allows(d),
		IsToday:  d == today,
		IsCursor: d == cursor,
	}
	if (sel.Start != nil && d == *sel.Start) || (sel.End != nil && d == *sel.End) {
		info.IsSelected = true
	}
	if sel.Complete() {
		lo, hi := *sel.Start, *sel.End
		if hi.Before(lo) {
			lo, hi = hi, lo
		}
		info.InRange = d.After(lo) && d.Before(hi)
	}
	return info
}

// Render produces a multi-line calendar string for the grid.
func Render(title string, weekStart time.Weekday, grid [][]Day, th theme.CalendarTheme) string {
	const width = len("11 12 13 14 15 16 17")
	lines := []string{
		th.Title.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, title)),
		th.Header.Render(WeekdayHeader(weekStart)),
	}
	for _, week := range grid {
		cells := make([]string, 0, len(week))
		for _, info := range week {
			if info.Date.IsZero() {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(info, th))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(info Day, th theme.CalendarTheme) string {
	text := fmt.Sprintf("%2d", info.Date.Day)

	style := th.Day
	if info.Disabled {
		style = th.Disabled
	}
	switch {
	case info.IsSelected:
		style = th.Selected.Inherit(style)
	case info.InRange:
		style = th.InRange.Inherit(style)
	}
	if info.IsToday {
		style = th.Today.Inherit(style)
	}
	if info.IsCursor {
		style = th.Cursor.Inherit(style)
	}
	return style.Render(text)
}
