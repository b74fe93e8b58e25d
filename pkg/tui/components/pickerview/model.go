// Package pickerview hosts one picker in the terminal: the text field the
// picker is anchored to and its panel, shown as a popover under the field or
// as a sheet docked to the bottom of narrow terminals.
package pickerview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/telemetry"
	"tableflip.dev/tempo/pkg/temporal"
	"tableflip.dev/tempo/pkg/tui/components/calendar"
	"tableflip.dev/tempo/pkg/tui/events"
	"tableflip.dev/tempo/pkg/tui/theme"
	"tableflip.dev/tempo/pkg/tui/ui"
	uioverlay "tableflip.dev/tempo/pkg/tui/ui/overlay"
)

// SheetBreakpoint is the terminal width, in columns, below which the panel
// becomes a bottom sheet. It replaces the pixel default of browser hosts.
const SheetBreakpoint = 60

const (
	fieldWidth   = 22
	endpointJoin = " – "
	panelWrap    = 30
)

// Options configures a picker view.
type Options struct {
	ID      picker.ComponentID
	Label   string
	Variant picker.Variant
	Config  picker.Config
	Theme   theme.Theme
	Cache   *temporal.Cache
	Logger  telemetry.Logger
	Now     func() time.Time
	// Value is the initial committed attribute.
	Value string
	// Recents are earlier committed attributes, newest first.
	Recents []string
	// Write receives every attribute the picker publishes.
	Write func(attr string)
	// Lock is the scroll lock shared by every sheet on screen. Defaults to
	// a lock of its own.
	Lock *overlay.ScrollLock
}

type focusArea int

const (
	focusField focusArea = iota
	focusPanel
	focusNone
)

type (
	dateSelector interface {
		SelectDate(picker.CalendarSelect) bool
	}
	rangeSelector interface {
		CalendarChange(picker.CalendarChange) bool
	}
	endpointTyper interface {
		TypeStart(raw string)
		TypeEnd(raw string)
		StartText() string
		EndText() string
	}
	rangeStepper interface {
		Step(e picker.Endpoint, delta int, shift bool)
	}
	presetter interface {
		Preset(id string) error
	}
	todayer interface {
		Today() bool
	}
	nower interface {
		Now() bool
	}
)

// Model is the terminal host of one picker controller.
type Model struct {
	id    picker.ComponentID
	label string
	ctrl  picker.Controller
	theme theme.Theme
	log   telemetry.Logger

	inputs []textinput.Model
	// active is the focused input, which is also the endpoint keyboard
	// stepping applies to in ranges.
	active int
	cal    *calendar.Model

	doc    *overlay.Dispatcher
	frames *overlay.ManualFrames
	tasks  *overlay.Microtasks
	lock   *overlay.ScrollLock

	width  int
	height int
	// offset is the screen row the view starts on.
	offset int
	pos    overlay.Position
	pres   overlay.Presentation
	placed bool

	focus   focusArea
	recents []string
	recent  int
	queued  []picker.Event
	ticking bool
}

var _ ui.Focusable = (*Model)(nil)

// New builds the picker for opts.Variant and the view around it.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg.SheetBreakpoint == 0 || cfg.SheetBreakpoint == overlay.DefaultSheetBreakpoint {
		cfg.SheetBreakpoint = SheetBreakpoint
	}
	log := opts.Logger
	if log == nil {
		log = telemetry.NewNoopLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := &Model{
		id:      opts.ID,
		label:   opts.Label,
		theme:   opts.Theme,
		log:     log,
		doc:     overlay.NewDispatcher(),
		frames:  overlay.NewManualFrames(),
		tasks:   &overlay.Microtasks{},
		lock:    opts.Lock,
		pres:    overlay.Popover,
		recents: opts.Recents,
	}
	if m.lock == nil {
		m.lock = overlay.NewScrollLock(overlay.NewMemoryBody(overlay.BodyStyle{}))
	}
	host := &overlay.Host{
		Document:   m.doc,
		Frames:     m.frames,
		Tasks:      m.tasks,
		Lock:       m.lock,
		Options:    overlay.Options{Padding: 1},
		Breakpoint: SheetBreakpoint,
	}
	ctrl, err := picker.New(opts.Variant, opts.ID, cfg, picker.Deps{
		Cache:   opts.Cache,
		Logger:  log,
		Host:    host,
		Measure: m.measure,
		Placed:  m.placedAt,
		Focus:   m.focusPanel,
		Write:   opts.Write,
		Now:     now,
	})
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	if opts.Value != "" {
		ctrl.SetAttribute(opts.Value)
	}
	ctrl.On(func(ev picker.Event) { m.queued = append(m.queued, ev) })

	count := 1
	if _, ok := ctrl.(endpointTyper); ok {
		count = 2
	}
	for i := 0; i < count; i++ {
		m.inputs = append(m.inputs, newInput(placeholder(opts.Variant)))
	}
	if host, ok := ctrl.(picker.CalendarHost); ok {
		m.cal = calendar.NewModel(events.ComponentID(opts.ID)+"/calendar", temporal.DateOf(now()), opts.Theme.Calendar, opts.Cache)
		m.cal.SetAttrs(host.CalendarAttrs())
		m.cal.Reset()
	}
	m.inputs[0].Focus()
	m.sync()
	return m, nil
}

func newInput(hint string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = hint
	in.CharLimit = 64
	in.SetWidth(fieldWidth)
	return in
}

func placeholder(v picker.Variant) string {
	switch v {
	case picker.VariantTime:
		return "HH:MM"
	case picker.VariantDateTime, picker.VariantDateTimeRange:
		return "YYYY-MM-DDTHH:MM"
	default:
		return "YYYY-MM-DD"
	}
}

// ID returns the picker id.
func (m *Model) ID() picker.ComponentID { return m.id }

// Controller exposes the hosted picker.
func (m *Model) Controller() picker.Controller { return m.ctrl }

// Presentation returns how the open panel is shown.
func (m *Model) Presentation() overlay.Presentation { return m.pres }

// ScrollLocked reports whether an open sheet holds the scroll lock.
func (m *Model) ScrollLocked() bool { return m.lock.Count() > 0 }

// SetRecents replaces the recent values offered by the panel.
func (m *Model) SetRecents(values []string) {
	m.recents = values
	m.recent = 0
}

// Init focuses the field.
func (m *Model) Init() tea.Cmd { return m.focusField() }

// Focus moves keyboard focus to the field.
func (m *Model) Focus() tea.Cmd { return m.focusField() }

// Blur commits typed text and drops keyboard focus.
func (m *Model) Blur() {
	m.ctrl.Blur()
	m.blurInputs()
	m.focus = focusNone
	m.sync()
}

// Focused reports whether the view takes keys.
func (m *Model) Focused() bool { return m.focus != focusNone }

// SetSize records the viewport and lets the overlay re-evaluate its
// presentation on the next frame.
func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	m.ctrl.Resize()
}

// SetOffset moves the view to row of a shared screen. Panel positions and
// pointer coordinates are in screen rows.
func (m *Model) SetOffset(row int) {
	if row == m.offset {
		return
	}
	m.offset = row
	m.ctrl.Scroll()
}

// Update maps keys and mouse presses onto the picker. Picker events come
// back as PickerEventMsg.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(v.Width, v.Height)
	case tea.KeyPressMsg:
		if m.focus != focusNone {
			cmds = append(cmds, m.handleKey(v))
		}
	case tea.MouseClickMsg:
		mouse := v.Mouse()
		m.doc.Dispatch(overlay.Event{Kind: overlay.PointerDown, X: float64(mouse.X), Y: float64(mouse.Y)})
	case events.CalendarSelectMsg:
		if m.cal != nil && v.Component == m.cal.ID() {
			if s, ok := m.ctrl.(dateSelector); ok {
				s.SelectDate(v.Select)
			}
		}
	case events.CalendarChangeMsg:
		if m.cal != nil && v.Component == m.cal.ID() {
			if s, ok := m.ctrl.(rangeSelector); ok {
				s.CalendarChange(v.Change)
			}
		}
	case events.FrameMsg:
		m.ticking = false
		m.frames.Flush()
	}
	cmds = append(cmds, m.settle()...)
	return m, batch(cmds)
}

func batch(cmds []tea.Cmd) tea.Cmd {
	live := cmds[:0]
	for _, c := range cmds {
		if c != nil {
			live = append(live, c)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return tea.Batch(live...)
}

// settle runs deferred work, resyncs the inputs and turns queued picker
// events into messages.
func (m *Model) settle() []tea.Cmd {
	m.tasks.Drain()
	m.sync()

	var cmds []tea.Cmd
	queued := m.queued
	m.queued = nil
	for _, ev := range queued {
		m.log.Debug("picker event", "picker", string(m.id), "event", ev.Describe())
		switch ev.(type) {
		case picker.OpenEvent:
			if m.cal != nil {
				m.cal.Reset()
			}
		case picker.CloseEvent:
			m.placed = false
			if m.focus == focusPanel {
				cmds = append(cmds, m.focusField())
			}
		}
		msg := events.PickerEventMsg{Component: events.ComponentID(m.id), Event: ev}
		cmds = append(cmds, func() tea.Msg { return msg })
	}

	if m.frames.Len() > 0 && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(overlay.FrameInterval, func(time.Time) tea.Msg { return events.FrameMsg{} }))
	}
	return cmds
}

// sync pulls field text and calendar attributes from the picker.
func (m *Model) sync() {
	if m.cal != nil {
		if host, ok := m.ctrl.(picker.CalendarHost); ok {
			m.cal.SetAttrs(host.CalendarAttrs())
		}
	}
	texts := m.fieldTexts()
	for i := range m.inputs {
		if i < len(texts) && m.inputs[i].Value() != texts[i] {
			m.inputs[i].SetValue(texts[i])
		}
	}
}

func (m *Model) fieldTexts() []string {
	if r, ok := m.ctrl.(endpointTyper); ok {
		return []string{r.StartText(), r.EndText()}
	}
	return []string{m.ctrl.FieldText()}
}

func (m *Model) handleKey(k tea.KeyPressMsg) tea.Cmd {
	key := k.String()
	wasOpen := m.ctrl.IsOpen()
	m.doc.Dispatch(overlay.Event{Kind: overlay.KeyDown, Key: key})
	if key == "esc" {
		if !wasOpen {
			m.ctrl.Cancel()
		}
		return nil
	}
	if m.focus == focusPanel {
		return m.panelKey(k)
	}
	return m.fieldKey(k)
}

func (m *Model) fieldKey(k tea.KeyPressMsg) tea.Cmd {
	switch k.String() {
	case "enter":
		m.ctrl.Enter()
		return nil
	case "alt+down", "ctrl+space", "f4":
		m.ctrl.Toggle()
		return nil
	case "ctrl+x":
		m.ctrl.Clear()
		return nil
	case "tab":
		if len(m.inputs) > 1 && m.active == 0 {
			return m.switchEndpoint(1)
		}
		m.Blur()
		return nil
	case "shift+tab":
		if len(m.inputs) > 1 && m.active == 1 {
			return m.switchEndpoint(0)
		}
		m.Blur()
		return nil
	case "down":
		if m.panelVisible() && m.cal != nil {
			m.focusPanel()
			return nil
		}
		m.step(-1, false)
		return nil
	case "up":
		m.step(1, false)
		return nil
	case "shift+up":
		m.step(1, true)
		return nil
	case "shift+down":
		m.step(-1, true)
		return nil
	}

	in := &m.inputs[m.active]
	prev := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(k)
	if value := in.Value(); value != prev {
		m.typeText(value)
	}
	return cmd
}

func (m *Model) panelKey(k tea.KeyPressMsg) tea.Cmd {
	key := k.String()
	switch key {
	case "/", "i":
		return m.focusField()
	case "tab":
		if len(m.inputs) > 1 {
			m.active = 1 - m.active
		}
		return nil
	case "a":
		m.ctrl.Apply()
		return nil
	case "T":
		switch c := m.ctrl.(type) {
		case todayer:
			c.Today()
		case nower:
			c.Now()
		}
		return nil
	case "R":
		m.nextRecent()
		return nil
	case "ctrl+x":
		m.ctrl.Clear()
		return nil
	case "+", "=":
		m.step(1, false)
		return nil
	case "-":
		m.step(-1, false)
		return nil
	case "shift+up":
		m.step(1, true)
		return nil
	case "shift+down":
		m.step(-1, true)
		return nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if m.preset(int(key[0] - '1')) {
			return nil
		}
	}
	if m.cal != nil {
		return m.cal.Update(k)
	}
	switch key {
	case "up", "k":
		m.step(1, false)
	case "down", "j":
		m.step(-1, false)
	case "enter":
		m.ctrl.Enter()
	}
	return nil
}

func (m *Model) typeText(value string) {
	if r, ok := m.ctrl.(endpointTyper); ok {
		if m.active == 0 {
			r.TypeStart(value)
		} else {
			r.TypeEnd(value)
		}
		return
	}
	m.ctrl.Type(value)
}

func (m *Model) step(delta int, shift bool) {
	switch s := m.ctrl.(type) {
	case picker.Stepper:
		s.Step(delta, shift)
	case rangeStepper:
		s.Step(m.endpoint(), delta, shift)
	}
}

func (m *Model) endpoint() picker.Endpoint {
	if m.active == 1 {
		return picker.EndpointEnd
	}
	return picker.EndpointStart
}

func (m *Model) preset(i int) bool {
	p, ok := m.ctrl.(presetter)
	if !ok {
		return false
	}
	presets := picker.Presets()
	if i >= len(presets) {
		return false
	}
	if err := p.Preset(presets[i].ID); err != nil {
		m.log.Error("apply preset", err, "picker", string(m.id), "preset", presets[i].ID)
	}
	return true
}

func (m *Model) nextRecent() {
	if len(m.recents) == 0 {
		return
	}
	m.ctrl.SelectRecent(m.recents[m.recent%len(m.recents)])
	m.recent++
}

func (m *Model) switchEndpoint(i int) tea.Cmd {
	m.inputs[m.active].Blur()
	m.active = i
	if m.focus == focusField {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *Model) focusField() tea.Cmd {
	m.focus = focusField
	return m.inputs[m.active].Focus()
}

// focusPanel is the overlay's deferred focus callback.
func (m *Model) focusPanel() {
	m.focus = focusPanel
	m.blurInputs()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) placedAt(pos overlay.Position, pres overlay.Presentation) {
	m.pos, m.pres, m.placed = pos, pres, true
}

func (m *Model) panelVisible() bool {
	return m.ctrl.IsOpen() || m.ctrl.Config().Inline()
}

// measure reports the field and panel boxes in cells.
func (m *Model) measure() (overlay.Layout, bool) {
	if m.width <= 0 || m.height <= 0 {
		return overlay.Layout{}, false
	}
	panel := m.renderPanel(overlay.Popover)
	return overlay.Layout{
		Anchor: m.anchorRect(),
		Panel: overlay.Rect{
			Width:  float64(lipgloss.Width(panel)),
			Height: float64(lipgloss.Height(panel)),
		},
		Viewport: overlay.Size{Width: float64(m.width), Height: float64(m.height)},
	}, true
}

func (m *Model) anchorRect() overlay.Rect {
	field := m.renderField()
	return overlay.Rect{
		Top:    float64(m.offset + m.fieldTop()),
		Width:  float64(lipgloss.Width(field)),
		Height: float64(lipgloss.Height(field)),
	}
}

func (m *Model) fieldTop() int {
	if m.label == "" {
		return 0
	}
	return 1
}

// View renders the field and, while open, the panel on top of it.
func (m *Model) View() string {
	return m.Overlay(m.Field())
}

// Field renders the label, the field, an inline error and, for inline
// pickers, the panel.
func (m *Model) Field() string {
	bg := m.background()
	if m.ctrl.Config().Inline() {
		return bg + "\n" + m.renderPanel(overlay.Popover)
	}
	return bg
}

// Overlay composes the open panel over background, a screen of the size
// set with SetSize.
func (m *Model) Overlay(background string) string {
	if !m.ctrl.IsOpen() || !m.placed || m.width <= 0 || m.height <= 0 {
		return background
	}
	panel := m.renderPanel(m.pres)
	if m.pres == overlay.Sheet {
		return uioverlay.Compose(background, m.width, m.height, panel, uioverlay.Placement{
			Horizontal: lipgloss.Left,
			Vertical:   lipgloss.Bottom,
			Width:      m.width,
		})
	}
	return uioverlay.ComposeAt(background, m.width, m.height, panel, int(m.pos.Left), int(m.pos.Top))
}

// Cursor places the terminal cursor inside the focused input.
func (m *Model) Cursor() *tea.Cursor {
	if m.focus != focusField {
		return nil
	}
	c := m.inputs[m.active].Cursor()
	if c == nil {
		return nil
	}
	copy := *c
	frame := m.fieldStyle()
	copy.X += frame.GetBorderLeftSize() + frame.GetPaddingLeft() + m.active*(fieldWidth+lipgloss.Width(endpointJoin))
	copy.Y += m.offset + m.fieldTop() + frame.GetBorderTopSize()
	return &copy
}

func (m *Model) background() string {
	var lines []string
	if m.label != "" {
		lines = append(lines, m.theme.Field.Label.Render(m.label))
	}
	lines = append(lines, m.renderField())
	if msg := m.ctrl.Error(); msg != "" {
		width := m.width
		if width < fieldWidth {
			width = fieldWidth
		}
		lines = append(lines, m.theme.Field.Error.Render(wordwrap.String(msg, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) fieldStyle() lipgloss.Style {
	if m.focus == focusField {
		return m.theme.Field.Focused
	}
	return m.theme.Field.Frame
}

func (m *Model) renderField() string {
	parts := make([]string, len(m.inputs))
	for i := range m.inputs {
		parts[i] = m.inputs[i].View()
	}
	inner := fieldWidth*len(parts) + lipgloss.Width(endpointJoin)*(len(parts)-1)
	content := lipgloss.NewStyle().Width(inner).Render(strings.Join(parts, endpointJoin))
	return m.fieldStyle().Render(content)
}

func (m *Model) renderPanel(pres overlay.Presentation) string {
	var sections []string
	if m.cal != nil {
		sections = append(sections, m.cal.View())
	}
	if m.ctrl.Variant().HasTime() {
		sections = append(sections, m.timeLines()...)
	}
	if _, ok := m.ctrl.(presetter); ok {
		sections = append(sections, m.presetLines())
	}
	if len(m.recents) > 0 {
		next := m.recents[m.recent%len(m.recents)]
		sections = append(sections, m.theme.Panel.Option.Render("R "+next))
	}
	sections = append(sections, m.theme.Panel.Option.Render(wordwrap.String(m.hints(), panelWrap)))

	style := m.theme.Panel.Popover
	if pres == overlay.Sheet {
		style = m.theme.Panel.Sheet
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) timeLines() []string {
	r, ok := m.ctrl.(endpointTyper)
	if !ok {
		return []string{m.theme.Panel.Active.Render("Time  " + m.ctrl.FieldText())}
	}
	lines := []string{"Start " + r.StartText(), "End   " + r.EndText()}
	for i := range lines {
		if i == m.active {
			lines[i] = m.theme.Panel.Active.Render(lines[i])
		} else {
			lines[i] = m.theme.Panel.Option.Render(lines[i])
		}
	}
	return lines
}

func (m *Model) presetLines() string {
	presets := picker.Presets()
	items := make([]string, 0, len(presets))
	for i, p := range presets {
		if i >= 9 {
			break
		}
		items = append(items, fmt.Sprintf("%d %s", i+1, strings.ReplaceAll(p.Label, " ", " ")))
	}
	return m.theme.Panel.Option.Render(wordwrap.String(strings.Join(items, "  "), panelWrap))
}

func (m *Model) hints() string {
	var hints []string
	if m.cal != nil {
		hints = append(hints, "enter pick")
	}
	if m.ctrl.Variant().HasTime() {
		hints = append(hints, "+/- step")
	}
	if m.ctrl.Variant().IsRange() {
		hints = append(hints, "a apply")
	}
	hints = append(hints, "/ type", "esc close")
	return strings.Join(hints, " · ")
}
