package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Field    FieldTheme
	Panel    PanelTheme
	Calendar CalendarTheme
	Footer   FooterTheme
	Events   EventsTheme
}

// FieldTheme styles the text field a picker is anchored to.
type FieldTheme struct {
	Label   lipgloss.Style
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Value   lipgloss.Style
}

// PanelTheme styles the popover and the bottom sheet.
type PanelTheme struct {
	Popover lipgloss.Style
	Sheet   lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Option  lipgloss.Style
	Active  lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Disabled lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	InRange  lipgloss.Style
	Cursor   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// EventsTheme styles the debug log pane.
type EventsTheme struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Time   lipgloss.Style
	Source lipgloss.Style
	Info   lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Theme{
		Field: FieldTheme{
			Label:   lipgloss.NewStyle().Bold(true),
			Frame:   frame.BorderForeground(lipgloss.Color("241")),
			Focused: frame.BorderForeground(accent),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Value:   lipgloss.NewStyle().Foreground(muted),
		},
		Panel: PanelTheme{
			Popover: frame.BorderForeground(accent),
			Sheet: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(accent).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Option: lipgloss.NewStyle().Foreground(muted),
			Active: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			InRange:  lipgloss.NewStyle().Background(lipgloss.Color("60")),
			Cursor:   lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
		},
		Events: EventsTheme{
			Frame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
			Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
			Time:   lipgloss.NewStyle().Foreground(muted),
			Source: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Info:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
	}
}

// Plain returns a theme without any styling, for tests and dumb terminals.
func Plain() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Field:    FieldTheme{Label: s, Frame: s, Focused: s, Error: s, Value: s},
		Panel:    PanelTheme{Popover: s, Sheet: s, Title: s, Body: s, Option: s, Active: s},
		Calendar: CalendarTheme{Title: s, Header: s, Day: s, Disabled: s, Today: s, Selected: s, InRange: s, Cursor: s},
		Footer:   FooterTheme{Help: s, Status: s},
		Events:   EventsTheme{Frame: s, Header: s, Time: s, Source: s, Info: s, Warn: s, Error: s},
	}
}
