package calendar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
	"tableflip.dev/tempo/pkg/tui/events"
	"tableflip.dev/tempo/pkg/tui/theme"
)

// Model is the interactive month grid. It renders what the picker's
// calendar attributes describe and reports picks as CalendarSelectMsg or
// CalendarChangeMsg.
type Model struct {
	id    events.ComponentID
	theme theme.CalendarTheme
	cache *temporal.Cache

	attrs  picker.CalendarAttrs
	value  span.Range[temporal.Date]
	bounds Bounds

	today  temporal.Date
	cursor temporal.Date
	// anchor is the first endpoint of a range being picked.
	anchor *temporal.Date
}

// NewModel creates a calendar positioned on today.
func NewModel(id events.ComponentID, today temporal.Date, th theme.CalendarTheme, cache *temporal.Cache) *Model {
	if cache == nil {
		cache = temporal.SharedCache()
	}
	return &Model{id: id, theme: th, cache: cache, today: today, cursor: today}
}

// ID returns the component id carried by emitted messages.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetAttrs syncs the grid with the picker. The cursor is left alone.
func (m *Model) SetAttrs(a picker.CalendarAttrs) {
	m.attrs = a
	m.bounds = ParseBounds(a.Min, a.Max)
	m.value = decodeValue(a)
}

// Reset drops a half picked range and moves the cursor to the selected
// value, or today.
func (m *Model) Reset() {
	m.anchor = nil
	switch {
	case m.value.Start != nil:
		m.cursor = *m.value.Start
	case m.value.End != nil:
		m.cursor = *m.value.End
	default:
		m.cursor = m.today
	}
}

// SetToday updates the reference date for marking today.
func (m *Model) SetToday(d temporal.Date) {
	m.today = d
}

// Cursor returns the focused day.
func (m *Model) Cursor() temporal.Date { return m.cursor }

// Anchor returns the first endpoint of a range in progress.
func (m *Model) Anchor() (temporal.Date, bool) {
	if m.anchor == nil {
		return temporal.Date{}, false
	}
	return *m.anchor, true
}

// Update handles navigation keys (hjkl/arrow keys, [ and ] for months) and
// selection.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		m.cursor = m.cursor.AddDays(-1)
	case "right", "l":
		m.cursor = m.cursor.AddDays(1)
	case "up", "k":
		m.cursor = m.cursor.AddDays(-7)
	case "down", "j":
		m.cursor = m.cursor.AddDays(7)
	case "pgup", "[":
		m.cursor = m.cursor.AddMonths(-1)
	case "pgdown", "]":
		m.cursor = m.cursor.AddMonths(1)
	case "t":
		m.cursor = m.today
	case "enter", "space":
		return m.selectCursor()
	}
	return nil
}

func (m *Model) selectCursor() tea.Cmd {
	if m.attrs.Disabled || m.attrs.Readonly || !m.bounds.Allows(m.cursor) {
		return nil
	}
	day := m.cursor.String()
	if m.attrs.Selection != picker.SelectionRange {
		return events.CalendarSelectCmd(m.id, day)
	}
	if m.anchor == nil {
		d := m.cursor
		m.anchor = &d
		return events.CalendarChangeCmd(m.id, day, "")
	}
	start := m.anchor.String()
	m.anchor = nil
	return events.CalendarChangeCmd(m.id, start, day)
}

// View renders the month holding the cursor.
func (m *Model) View() string {
	sel := m.value
	if m.anchor != nil {
		a := *m.anchor
		sel = span.Range[temporal.Date]{Start: &a}
	}

	dates := Grid(m.cursor, m.attrs.WeekStart)
	grid := make([][]Day, len(dates))
	for i, week := range dates {
		grid[i] = make([]Day, len(week))
		for j, d := range week {
			if d.IsZero() {
				continue
			}
			grid[i][j] = Describe(d, m.today, m.cursor, sel, m.bounds)
		}
	}
	return Render(m.title(), m.attrs.WeekStart, grid, m.theme)
}

func (m *Model) title() string {
	names := m.cache.MonthNames(m.attrs.Locale)
	return fmt.Sprintf("%s %d", names.Long[m.cursor.Month-1], m.cursor.Year)
}

func decodeValue(a picker.CalendarAttrs) span.Range[temporal.Date] {
	if a.Selection == picker.SelectionRange {
		r, err := span.Decode(a.Value, temporal.ParseISODate)
		if err != nil {
			return span.Range[temporal.Date]{}
		}
		return r
	}
	if d, ok := temporal.ParseISODate(a.Value); ok {
		return span.Range[temporal.Date]{Start: &d}
	}
	return span.Range[temporal.Date]{}
}
