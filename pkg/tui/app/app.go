// Package teaui hosts the Bubble Tea program behind tempo pick.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/telemetry"
	"tableflip.dev/tempo/pkg/tui/components/eventviewer"
	"tableflip.dev/tempo/pkg/tui/components/help"
	"tableflip.dev/tempo/pkg/tui/components/pickerview"
	"tableflip.dev/tempo/pkg/tui/events"
	"tableflip.dev/tempo/pkg/tui/theme"
	uioverlay "tableflip.dev/tempo/pkg/tui/ui/overlay"
)

const helpText = "tab next · f4 open · ctrl+x clear · f1 keys · ctrl+g events · ctrl+c done"

// Options configures the picker screen.
type Options struct {
	Pickers []pickerview.Options
	// Recents feeds each picker its earlier values and records new commits.
	// Optional.
	Recents store.Recents
	Theme   theme.Theme
	Logger  telemetry.Logger
	// Debug shows the message log from the start.
	Debug bool
}

// Model stacks picker views and routes keys to the focused one.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    telemetry.Logger
	theme  theme.Theme

	views []*pickerview.Model
	focus int

	recents store.Recents
	watch   <-chan store.Event
	offs    []func()

	width  int
	height int

	debugEnabled bool
	eventViewer  *eventviewer.Model
	status       string

	help *help.Model
}

// New builds every picker of opts. The returned model must be closed.
func New(ctx context.Context, opts Options) (*Model, error) {
	if len(opts.Pickers) == 0 {
		return nil, fmt.Errorf("no pickers to show")
	}
	log := opts.Logger
	if log == nil {
		log = telemetry.NewNoopLogger()
	}
	ctx, cancel := context.WithCancel(ctx)
	m := &Model{
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
		theme:   opts.Theme,
		recents: opts.Recents,
		status:  "Ready",
	}

	lock := overlay.NewScrollLock(overlay.NewMemoryBody(overlay.BodyStyle{}))
	for _, po := range opts.Pickers {
		po.Theme = opts.Theme
		po.Logger = log
		po.Lock = lock
		if m.recents != nil {
			po.Recents = m.recentValues(po.ID)
		}
		view, err := pickerview.New(po)
		if err != nil {
			m.Close()
			return nil, err
		}
		if m.recents != nil {
			m.offs = append(m.offs, m.recents.Record(view.Controller()))
		}
		m.views = append(m.views, view)
	}
	for _, view := range m.views[1:] {
		view.Blur()
	}

	if m.recents != nil {
		ch, err := m.recents.Watch(ctx)
		if err != nil {
			log.Error("watch recents", err)
		} else {
			m.watch = ch
		}
	}
	if opts.Debug {
		m.toggleDebug()
	}
	return m, nil
}

// Run shows the screen until the user quits and returns the committed
// attribute of every picker.
func Run(ctx context.Context, opts Options) (map[picker.ComponentID]string, error) {
	m, err := New(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.Values(), nil
}

// Close stops the recents watcher and recording.
func (m *Model) Close() {
	for _, off := range m.offs {
		off()
	}
	m.offs = nil
	m.cancel()
}

// Values returns the committed attribute of every picker.
func (m *Model) Values() map[picker.ComponentID]string {
	out := make(map[picker.ComponentID]string, len(m.views))
	for _, view := range m.views {
		out[view.ID()] = view.Controller().Attribute()
	}
	return out
}

func (m *Model) recentValues(id picker.ComponentID) []string {
	list, err := m.recents.List(id)
	if err != nil {
		m.log.Error("load recents", err, "picker", string(id))
		return nil
	}
	values := make([]string, 0, len(list))
	for _, r := range list {
		values = append(values, r.Value)
	}
	return values
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.views[m.focus].Init()}
	if m.watch != nil {
		cmds = append(cmds, events.WaitRecents(m.ctx, m.watch))
	}
	return tea.Batch(cmds...)
}

// Update routes keys to the focused picker and everything else to all of
// them.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		cmds = append(cmds, m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.mainRows()})...)
		m.layoutContent()
		if m.help != nil {
			m.help.SetSize(m.helpSize())
		}
		return m, tea.Batch(cmds...)
	case tea.KeyPressMsg:
		if m.help != nil && v.String() != "ctrl+c" && v.String() != "f1" {
			if v.String() == "esc" {
				m.toggleHelp()
				return m, nil
			}
			return m, m.help.Update(v)
		}
		switch v.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.toggleHelp()
			return m, nil
		case "ctrl+f":
			if m.eventViewer != nil {
				m.toggleFilter()
				return m, nil
			}
		case "ctrl+g":
			m.toggleDebug()
			cmds = append(cmds, m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.mainRows()})...)
			return m, tea.Batch(cmds...)
		case "pgup", "pgdown":
			if m.eventViewer != nil && !m.views[m.focus].Controller().IsOpen() {
				m.eventViewer.Update(v)
				return m, nil
			}
		}
		if !m.views[m.focus].Focused() {
			// tab on a blurred screen brings focus back.
			if s := v.String(); s == "tab" || s == "shift+tab" {
				cmds = append(cmds, m.views[m.focus].Focus())
			}
			return m, tea.Batch(cmds...)
		}
		_, cmd := m.views[m.focus].Update(v)
		cmds = append(cmds, cmd)
		if !m.views[m.focus].Focused() {
			cmds = append(cmds, m.advance(v.String() == "shift+tab"))
		}
	case events.PickerEventMsg:
		m.status = v.Describe()
		return m, nil
	case events.RecentsChangedMsg:
		if v.Closed {
			return m, nil
		}
		m.reloadRecents(v.Picker)
		return m, events.WaitRecents(m.ctx, m.watch)
	default:
		cmds = append(cmds, m.broadcast(msg)...)
	}
	m.layoutContent()
	return m, tea.Batch(cmds...)
}

func (m *Model) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, view := range m.views {
		_, cmd := view.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// advance moves focus after the focused picker gave it up. The last picker
// keeps the screen blurred so tab can cycle back in.
func (m *Model) advance(back bool) tea.Cmd {
	next := m.focus + 1
	if back {
		next = m.focus - 1
	}
	if next < 0 || next >= len(m.views) {
		return nil
	}
	m.focus = next
	return m.views[next].Focus()
}

func (m *Model) reloadRecents(id picker.ComponentID) {
	if m.recents == nil {
		return
	}
	for _, view := range m.views {
		if id == "" || view.ID() == id {
			view.SetRecents(m.recentValues(view.ID()))
		}
	}
}

// layoutContent stacks the picker fields, one blank row apart.
func (m *Model) layoutContent() {
	row := 0
	for _, view := range m.views {
		view.SetOffset(row)
		row += lipgloss.Height(view.Field()) + 1
	}
}

func (m *Model) mainRows() int {
	rows := m.height - 1 - m.debugRows()
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) debugRows() int {
	if !m.debugEnabled || m.height <= 8 {
		return 0
	}
	return m.height / 3
}

// View renders the stacked fields, any open panel, the debug log and the
// help line.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width <= 0 || m.height <= 0 {
		return "initializing…", nil
	}
	fields := make([]string, 0, len(m.views))
	for _, view := range m.views {
		fields = append(fields, view.Field())
	}
	body := strings.Join(fields, "\n\n")
	for _, view := range m.views {
		body = view.Overlay(body)
	}
	body = normalizeHeight(body, m.mainRows())
	if m.help != nil {
		body = uioverlay.Compose(body, m.width, m.mainRows(), m.help.View(), uioverlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}

	if rows := m.debugRows(); rows > 0 && m.eventViewer != nil {
		m.eventViewer.SetSize(m.width, rows)
		body += "\n" + m.eventViewer.View()
	}

	footer := m.theme.Footer.Help.Render(helpText)
	if m.status != "" {
		footer += "  " + m.theme.Footer.Status.Render(m.status)
	}
	return body + "\n" + footer, m.views[m.focus].Cursor()
}

func normalizeHeight(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// toggleHelp shows the keys of the focused picker over the fields.
func (m *Model) toggleHelp() {
	if m.help != nil {
		m.help = nil
		m.status = "Ready"
		return
	}
	w, h := m.helpSize()
	sections := append(m.views[m.focus].KeySections(), help.Section{Title: "Screen", Bindings: []help.Binding{
		{Keys: "f1", Action: "this help"},
		{Keys: "ctrl+g", Action: "show or hide the event log"},
		{Keys: "ctrl+f", Action: "log only the focused picker"},
		{Keys: "pgup / pgdown", Action: "scroll the event log"},
		{Keys: "ctrl+c", Action: "done"},
	}})
	m.help = help.New(sections, m.theme.Panel, w, h)
	m.status = "esc closes help"
}

func (m *Model) helpSize() (int, int) {
	return min(m.width-4, 60), min(m.mainRows()-2, 22)
}

// toggleFilter narrows the event log to the focused picker, or widens it
// back to everything.
func (m *Model) toggleFilter() {
	if m.eventViewer.Filtered() != "" {
		m.eventViewer.Filter("")
		m.status = "Logging every source"
		return
	}
	id := string(m.views[m.focus].ID())
	m.eventViewer.Filter(id)
	m.status = "Logging " + id
}

func (m *Model) toggleDebug() {
	if m.debugEnabled {
		m.debugEnabled = false
		m.eventViewer = nil
		m.status = "Debug log hidden"
		return
	}
	m.debugEnabled = true
	if m.eventViewer == nil {
		m.eventViewer = eventviewer.NewModel(400, m.theme.Events)
	}
	m.appendEvent(eventviewer.Entry{
		Summary: "debug",
		Detail:  "Debug window enabled",
		Source:  "ui",
	})
	m.status = "Debug log visible"
}

func (m *Model) noteEvent(msg tea.Msg) {
	if m.eventViewer == nil {
		return
	}
	if _, ok := msg.(events.FrameMsg); ok {
		return
	}
	source := "tea"
	if s, ok := eventSource(msg); ok && s != "" {
		source = s
	}
	entry := eventviewer.Entry{
		Timestamp: time.Now(),
		Source:    source,
		Summary:   fmt.Sprintf("%T", msg),
		Detail:    describeMsg(msg),
		Level:     eventviewer.LevelInfo,
	}
	if ev, ok := msg.(events.PickerEventMsg); ok && ev.Event.EventKind() == picker.KindInvalid {
		entry.Level = eventviewer.LevelWarn
	}
	if entry.Detail == "" {
		entry.Detail = fmt.Sprintf("%v", msg)
	}
	m.eventViewer.Append(entry)
}

func (m *Model) appendEvent(entry eventviewer.Entry) {
	if m.eventViewer == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.eventViewer.Append(entry)
}

func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		return fmt.Sprintf("mouse=%s", v)
	default:
		return ""
	}
}

func eventSource(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case events.PickerEventMsg:
		return string(v.Component), true
	case events.CalendarSelectMsg:
		return string(v.Component), true
	case events.CalendarChangeMsg:
		return string(v.Component), true
	case events.RecentsChangedMsg:
		return "recents", true
	default:
		return "", false
	}
}
