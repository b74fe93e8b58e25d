// Package ui holds the contracts tempo's terminal widgets share.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a component that takes keyboard focus. A focused component
// may give focus up on its own, for example on tab; the host then moves it
// on.
type Focusable interface {
	Component
	Focus() tea.Cmd
	Blur()
	Focused() bool
}
