package calendar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/temporal"
	"tableflip.dev/tempo/pkg/tui/events"
	"tableflip.dev/tempo/pkg/tui/theme"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestGridHonorsWeekStart(t *testing.T) {
	march := temporal.MustDate(2026, 3, 15)

	sunday := Grid(march, time.Sunday)
	if got := sunday[0][0]; got != temporal.MustDate(2026, 3, 1) {
		t.Fatalf("march 2026 starts on a sunday, got %v first", got)
	}
	if len(sunday) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(sunday))
	}

	monday := Grid(march, time.Monday)
	if !monday[0][5].IsZero() || monday[0][6] != temporal.MustDate(2026, 3, 1) {
		t.Fatalf("with monday first the 1st lands in the last column: %v", monday[0])
	}
	if len(monday) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(monday))
	}
	if WeekdayHeader(time.Monday) != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", WeekdayHeader(time.Monday))
	}
}

func TestBoundsDisableDays(t *testing.T) {
	b := ParseBounds("2026-03-05", "2026-03-20T18:00")
	if b.Allows(temporal.MustDate(2026, 3, 4)) {
		t.Fatal("day before min must be disabled")
	}
	if !b.Allows(temporal.MustDate(2026, 3, 5)) {
		t.Fatal("min itself is allowed")
	}
	// Datetime bounds are trimmed by the picker before reaching the grid.
	if !b.Allows(temporal.MustDate(2026, 12, 31)) {
		t.Fatal("unparsed max leaves the side open")
	}
}

func TestSingleSelectionEmitsSelect(t *testing.T) {
	today := temporal.MustDate(2026, 3, 10)
	m := NewModel("cal", today, theme.Plain().Calendar, nil)
	m.SetAttrs(picker.CalendarAttrs{Selection: picker.SelectionSingle, Value: "2026-03-05"})
	m.Reset()
	if m.Cursor() != temporal.MustDate(2026, 3, 5) {
		t.Fatalf("reset should focus the value, got %v", m.Cursor())
	}

	m.Update(key("right"))
	cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a select command")
	}
	msg, ok := cmd().(events.CalendarSelectMsg)
	if !ok || msg.Select.Value != "2026-03-06" || msg.Component != "cal" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestRangeSelectionTwoSteps(t *testing.T) {
	m := NewModel("cal", temporal.MustDate(2026, 3, 10), theme.Plain().Calendar, nil)
	m.SetAttrs(picker.CalendarAttrs{Selection: picker.SelectionRange})

	first := m.Update(key("enter"))().(events.CalendarChangeMsg)
	if first.Change.Start != "2026-03-10" || first.Change.End != "" {
		t.Fatalf("unexpected first change %#v", first.Change)
	}
	if _, ok := m.Anchor(); !ok {
		t.Fatal("expected an anchor after the first pick")
	}

	m.Update(key("down"))
	second := m.Update(key("enter"))().(events.CalendarChangeMsg)
	if second.Change.Start != "2026-03-10" || second.Change.End != "2026-03-17" || second.Change.Mode != picker.SelectionRange {
		t.Fatalf("unexpected second change %#v", second.Change)
	}
	if _, ok := m.Anchor(); ok {
		t.Fatal("anchor should clear once the range is complete")
	}
}

func TestDisabledDaysAndReadonlyDoNotSelect(t *testing.T) {
	m := NewModel("cal", temporal.MustDate(2026, 3, 10), theme.Plain().Calendar, nil)
	m.SetAttrs(picker.CalendarAttrs{Selection: picker.SelectionSingle, Max: "2026-03-09"})
	if cmd := m.Update(key("enter")); cmd != nil {
		t.Fatal("today is past max and must not be selectable")
	}

	m.SetAttrs(picker.CalendarAttrs{Selection: picker.SelectionSingle, Readonly: true})
	if cmd := m.Update(key("enter")); cmd != nil {
		t.Fatal("readonly calendars do not select")
	}
}

func TestMonthNavigationAndView(t *testing.T) {
	m := NewModel("cal", temporal.MustDate(2026, 1, 31), theme.Plain().Calendar, nil)
	m.SetAttrs(picker.CalendarAttrs{Selection: picker.SelectionSingle, Locale: "de-DE", WeekStart: time.Monday})
	m.Update(key("]"))
	if m.Cursor() != temporal.MustDate(2026, 2, 28) {
		t.Fatalf("next month pins to the last day, got %v", m.Cursor())
	}
	view := m.View()
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "Februar 2026") {
		t.Fatalf("expected localized title, got %q", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", lines[1])
	}
	m.Update(key("t"))
	if m.Cursor() != temporal.MustDate(2026, 1, 31) {
		t.Fatalf("t jumps to today, got %v", m.Cursor())
	}
}
