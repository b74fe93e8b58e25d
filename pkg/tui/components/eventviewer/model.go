// Package eventviewer renders the debug log of messages flowing through the
// picker screen.
package eventviewer

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tempo/pkg/tui/theme"
	"tableflip.dev/tempo/pkg/tui/ui"
)

// Level is the severity of a logged message.
type Level int

const (
	LevelInfo Level = iota
	// LevelWarn marks rejected input.
	LevelWarn
	LevelError
)

// Entry is one logged message.
type Entry struct {
	Timestamp time.Time
	// Source is the picker id, or "tea" for runtime messages.
	Source  string
	Summary string
	Detail  string
	Level   Level
}

func (e Entry) text() string {
	if e.Detail == "" {
		return e.Summary
	}
	return e.Summary + ": " + e.Detail
}

// Model keeps the newest entries first, up to a limit, and can narrow the
// view to one source.
type Model struct {
	viewport viewport.Model
	theme    theme.EventsTheme

	entries []Entry
	limit   int
	filter  string
	// pinned keeps the newest entry in view until the user scrolls down.
	pinned  bool

	width  int
	height int
}

var _ ui.Component = (*Model)(nil)

// NewModel constructs a log keeping at most limit entries, 200 when limit
// is not positive.
func NewModel(limit int, th theme.EventsTheme) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		theme:    th,
		limit:    limit,
		pinned:   true,
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls with pgup and pgdown.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "pgdown":
		m.viewport.HalfPageDown()
	case "pgup":
		m.viewport.HalfPageUp()
	default:
		return m, nil
	}
	m.pinned = m.viewport.AtTop()
	return m, nil
}

// Len reports how many entries are kept, ignoring the filter.
func (m *Model) Len() int { return len(m.entries) }

// Filter narrows the view to entries from source. Empty shows everything.
func (m *Model) Filter(source string) {
	m.filter = source
	m.pinned = true
	m.render()
}

// Filtered reports the current source filter.
func (m *Model) Filtered() string { return m.filter }

// Visible returns the entries that pass the filter, newest first.
func (m *Model) Visible() []Entry {
	if m.filter == "" {
		return m.entries
	}
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.Source == m.filter {
			out = append(out, e)
		}
	}
	return out
}

// SetSize fits the pane, border and header included, into width x height.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height
	m.viewport.SetWidth(max(width-m.theme.Frame.GetHorizontalFrameSize(), 1))
	m.viewport.SetHeight(max(height-m.theme.Frame.GetVerticalFrameSize()-1, 1))
	m.render()
}

// View renders the framed log.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	title := "Events"
	if m.filter != "" {
		title += " · " + m.filter
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.theme.Header.Render(title), m.viewport.View())
	return m.theme.Frame.Width(m.width).Height(m.height).Render(body)
}

// Append logs e as the newest entry, dropping the oldest past the limit.
func (m *Model) Append(e Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Source == "" {
		e.Source = "tea"
	}
	if e.Summary == "" {
		e.Summary = "event"
	}
	m.entries = append(m.entries, Entry{})
	copy(m.entries[1:], m.entries)
	m.entries[0] = e
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.render()
}

// Clear drops every entry.
func (m *Model) Clear() {
	m.entries = nil
	m.render()
}

func (m *Model) render() {
	visible := m.Visible()
	if len(visible) == 0 {
		m.viewport.SetContent(m.theme.Time.Render("No events yet"))
		return
	}
	width := m.viewport.Width()
	lines := make([]string, len(visible))
	for i, e := range visible {
		lines[i] = m.line(e, width)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if m.pinned {
		m.viewport.GotoTop()
	}
}

// line renders one entry, cut to width so long details never wrap.
func (m *Model) line(e Entry, width int) string {
	ts := e.Timestamp.Format("15:04:05.000")
	src := "[" + e.Source + "]"
	text := e.text()
	if room := width - lipgloss.Width(ts) - lipgloss.Width(src) - 2; room > 1 {
		text = truncate.StringWithTail(text, uint(room), "…")
	}
	style := m.theme.Info
	switch e.Level {
	case LevelWarn:
		style = m.theme.Warn
	case LevelError:
		style = m.theme.Error
	}
	return m.theme.Time.Render(ts) + " " + m.theme.Source.Render(src) + " " + style.Render(text)
}
