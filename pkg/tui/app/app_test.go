package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/tui/components/pickerview"
	"tableflip.dev/tempo/pkg/tui/events"
	"tableflip.dev/tempo/pkg/tui/theme"
)

type fakeRecents struct {
	lists    map[picker.ComponentID][]store.Recent
	listed   map[picker.ComponentID]int
	recorded []picker.ComponentID
	watch    chan store.Event
}

func newFakeRecents() *fakeRecents {
	return &fakeRecents{
		lists:  map[picker.ComponentID][]store.Recent{},
		listed: map[picker.ComponentID]int{},
		watch:  make(chan store.Event, 4),
	}
}

func (f *fakeRecents) List(id picker.ComponentID) ([]store.Recent, error) {
	f.listed[id]++
	return f.lists[id], nil
}

func (f *fakeRecents) Add(id picker.ComponentID, value string) error {
	f.lists[id] = append([]store.Recent{{Value: value}}, f.lists[id]...)
	return nil
}

func (f *fakeRecents) Clear(id picker.ComponentID) error {
	delete(f.lists, id)
	return nil
}

func (f *fakeRecents) IDs(context.Context) []picker.ComponentID { return nil }

func (f *fakeRecents) Record(c picker.Controller) func() {
	f.recorded = append(f.recorded, c.ID())
	return c.On(func(ev picker.Event) {
		if change, ok := ev.(picker.ChangeEvent); ok && change.Value != "" {
			_ = f.Add(change.Component, change.Value)
		}
	})
}

func (f *fakeRecents) Watch(context.Context) (<-chan store.Event, error) {
	return f.watch, nil
}

func pickerOptions(id string, v picker.Variant) pickerview.Options {
	return pickerview.Options{
		ID:      picker.ComponentID(id),
		Label:   id,
		Variant: v,
		Config:  picker.DefaultConfig(v),
		Now:     func() time.Time { return time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC) },
	}
}

func newScreen(t *testing.T, recents store.Recents) *Model {
	t.Helper()
	m, err := New(context.Background(), Options{
		Pickers: []pickerview.Options{
			pickerOptions("check-in", picker.VariantDate),
			pickerOptions("slot", picker.VariantTime),
		},
		Recents: recents,
		Theme:   theme.Plain(),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestTabCommitsAndMovesFocus(t *testing.T) {
	m := newScreen(t, nil)

	typeText(m, "2026-03-05")
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, 1, m.focus)

	typeText(m, "09:30")
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, 1, m.focus, "the last picker keeps focus slot")

	require.Equal(t, map[picker.ComponentID]string{
		"check-in": "2026-03-05",
		"slot":     "09:30",
	}, m.Values())
}

func TestViewStacksFieldsAndHelp(t *testing.T) {
	m := newScreen(t, nil)
	view, _ := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)
	require.Equal(t, "check-in", strings.TrimSpace(lines[0]))
	require.Equal(t, "slot", strings.TrimSpace(lines[3]))
	require.Contains(t, lines[23], "ctrl+c done")
}

func TestDebugPaneLogsMessages(t *testing.T) {
	m := newScreen(t, nil)
	m.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	require.True(t, m.debugEnabled)

	typeText(m, "2")
	require.GreaterOrEqual(t, m.eventViewer.Len(), 2)

	view, _ := m.View()
	require.Contains(t, view, "Events")

	m.Update(tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	require.Equal(t, "check-in", m.eventViewer.Filtered())
	for _, e := range m.eventViewer.Visible() {
		require.Equal(t, "check-in", e.Source)
	}
	m.Update(tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	require.Equal(t, "", m.eventViewer.Filtered())
}

func TestRecentsAreLoadedRecordedAndReloaded(t *testing.T) {
	rec := newFakeRecents()
	rec.lists["check-in"] = []store.Recent{{Value: "2026-02-01"}}
	m := newScreen(t, rec)

	require.Equal(t, []picker.ComponentID{"check-in", "slot"}, rec.recorded)
	require.Equal(t, 1, rec.listed["check-in"])

	typeText(m, "2026-03-05")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "2026-03-05", rec.lists["check-in"][0].Value, "commits are recorded")

	_, cmd := m.Update(events.RecentsChangedMsg{Picker: "check-in"})
	require.NotNil(t, cmd, "keeps waiting for the watcher")
	require.Equal(t, 2, rec.listed["check-in"])
	require.Equal(t, 1, rec.listed["slot"])

	m.Update(events.RecentsChangedMsg{})
	require.Equal(t, 3, rec.listed["check-in"])
	require.Equal(t, 2, rec.listed["slot"])
}

func TestHelpOverlayTogglesAndSwallowsKeys(t *testing.T) {
	m := newScreen(t, nil)
	m.Update(tea.KeyPressMsg{Code: tea.KeyF1})
	require.NotNil(t, m.help)

	view, _ := m.View()
	require.Contains(t, view, "commit the typed value")
	require.Len(t, strings.Split(view, "\n"), 24)

	typeText(m, "2026")
	require.Equal(t, "", m.views[0].Controller().FieldText(), "keys go to the help overlay")

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.Nil(t, m.help)
	typeText(m, "2026")
	require.Equal(t, "2026", m.views[0].Controller().FieldText())
}
