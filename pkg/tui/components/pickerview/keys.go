package pickerview

import (
	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/tui/components/help"
)

// KeySections lists the keys this view answers to, for the help overlay.
func (m *Model) KeySections() []help.Section {
	field := help.Section{Title: "Field", Bindings: []help.Binding{
		{Keys: "enter", Action: "commit the typed value"},
		{Keys: "f4 / alt+down", Action: "open or close the panel"},
		{Keys: "ctrl+x", Action: "clear"},
		{Keys: "esc", Action: "discard pending, close"},
	}}
	if len(m.inputs) > 1 {
		field.Bindings = append(field.Bindings, help.Binding{Keys: "tab", Action: "start, end, next picker"})
	} else {
		field.Bindings = append(field.Bindings, help.Binding{Keys: "tab", Action: "next picker"})
	}
	switch m.ctrl.(type) {
	case picker.Stepper, rangeStepper:
		field.Bindings = append(field.Bindings,
			help.Binding{Keys: "up / down", Action: "step by the minute step"},
			help.Binding{Keys: "shift+up/down", Action: "step five times as far"},
		)
	}

	panel := help.Section{Title: "Panel", Bindings: []help.Binding{
		{Keys: "/ i", Action: "back to the field"},
		{Keys: "a", Action: "apply pending"},
		{Keys: "R", Action: "next recent value"},
	}}
	switch m.ctrl.(type) {
	case todayer:
		panel.Bindings = append(panel.Bindings, help.Binding{Keys: "T", Action: "today"})
	case nower:
		panel.Bindings = append(panel.Bindings, help.Binding{Keys: "T", Action: "now"})
	}
	if _, ok := m.ctrl.(presetter); ok {
		panel.Bindings = append(panel.Bindings, help.Binding{Keys: "1-9", Action: "range preset"})
	}

	sections := []help.Section{field, panel}
	if m.cal != nil {
		sections = append(sections, help.Section{Title: "Calendar", Bindings: []help.Binding{
			{Keys: "arrows / hjkl", Action: "move by day or week"},
			{Keys: "pgup / pgdown", Action: "previous or next month"},
			{Keys: "t", Action: "jump to today"},
			{Keys: "enter / space", Action: "pick the day"},
		}})
	}
	return sections
}
