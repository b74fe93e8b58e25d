// Package help renders the key reference overlay of the picker screen.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tempo/pkg/tui/theme"
)

// Binding documents one key.
type Binding struct {
	Keys   string
	Action string
}

// Section groups bindings under a title.
type Section struct {
	Title    string
	Bindings []Binding
}

// Model shows the sections in a scrollable framed viewport.
type Model struct {
	viewport viewport.Model
	sections []Section
	theme    theme.PanelTheme
	width    int
	height   int
}

// New constructs a help overlay sized to the provided bounds.
func New(sections []Section, th theme.PanelTheme, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	m := &Model{viewport: vp, sections: sections, theme: th}
	m.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the bindings inside the popover frame.
func (m *Model) View() string {
	return m.theme.Popover.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetSize fits the overlay into width x height, never smaller than 32x8.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 32), max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height

	// lipgloss v2 counts the border in Width and Height.
	innerWidth := max(width-m.theme.Popover.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.theme.Popover.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.viewport.SetContent(m.Content())
	m.viewport.SetYOffset(0)
}

// Content is the unframed text of every section.
func (m *Model) Content() string {
	keyWidth := 0
	for _, s := range m.sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Keys))
		}
	}
	var sb strings.Builder
	for i, s := range m.sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.theme.Title.Render(s.Title))
		sb.WriteString("\n")
		for _, b := range s.Bindings {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(b.Keys))
			sb.WriteString("  ")
			sb.WriteString(m.theme.Active.Render(b.Keys))
			sb.WriteString(pad + "  ")
			sb.WriteString(m.theme.Body.Render(b.Action))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
