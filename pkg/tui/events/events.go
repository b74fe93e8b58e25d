// Package events defines the messages tempo's terminal components exchange.
package events

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/store"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// CalendarSelectMsg is emitted when a day is chosen in single selection.
type CalendarSelectMsg struct {
	Component ComponentID
	Select    picker.CalendarSelect
}

// Describe renders the selection for logs.
func (m CalendarSelectMsg) Describe() string {
	return fmt.Sprintf(`calendar select value:%q`, m.Select.Value)
}

// CalendarSelectCmd wraps CalendarSelectMsg in a tea.Cmd.
func CalendarSelectCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return CalendarSelectMsg{Component: component, Select: picker.CalendarSelect{Value: value}}
	}
}

// CalendarChangeMsg is emitted when a range endpoint is chosen.
type CalendarChangeMsg struct {
	Component ComponentID
	Change    picker.CalendarChange
}

// Describe renders the change for logs.
func (m CalendarChangeMsg) Describe() string {
	return fmt.Sprintf(`calendar change start:%q end:%q`, m.Change.Start, m.Change.End)
}

// CalendarChangeCmd wraps CalendarChangeMsg in a tea.Cmd.
func CalendarChangeCmd(component ComponentID, start, end string) tea.Cmd {
	return func() tea.Msg {
		return CalendarChangeMsg{
			Component: component,
			Change:    picker.CalendarChange{Mode: picker.SelectionRange, Start: start, End: end},
		}
	}
}

// PickerEventMsg carries an event a picker emitted during an update.
type PickerEventMsg struct {
	Component ComponentID
	Event     picker.Event
}

// Describe implements the logging helper.
func (m PickerEventMsg) Describe() string {
	return m.Event.Describe()
}

// FrameMsg asks the host to flush the frame queue.
type FrameMsg struct{}

// RecentsChangedMsg announces that another process changed the recents of
// a picker. Picker is empty when everything should be reloaded.
type RecentsChangedMsg struct {
	Picker picker.ComponentID
	// Closed is set once the watcher channel is drained.
	Closed bool
}

// Describe implements the logging helper.
func (m RecentsChangedMsg) Describe() string {
	if m.Closed {
		return "recents watcher closed"
	}
	return fmt.Sprintf(`recents changed picker:%q`, m.Picker)
}

// WaitRecents returns a command that waits for the next watcher event.
// Re-issue it after every RecentsChangedMsg to keep listening.
func WaitRecents(ctx context.Context, ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return RecentsChangedMsg{Closed: true}
		case ev, ok := <-ch:
			if !ok {
				return RecentsChangedMsg{Closed: true}
			}
			if ev.Type == store.EventRecentsInvalidated {
				return RecentsChangedMsg{}
			}
			return RecentsChangedMsg{Picker: ev.Picker}
		}
	}
}
