// Package picker drives the five temporal picker variants: a shared
// pending/committed state machine parameterized by a value codec, and thin
// orchestrators that feed it from typed text, calendar clicks, time
// segments, presets, recents and keyboard stepping.
package picker

// Source tags every event with the interaction that produced it.
type Source string

const (
	SourceTyping       Source = "typing"
	SourceBlur         Source = "blur"
	SourceEnter        Source = "enter"
	SourceCalendar     Source = "calendar"
	SourceApply        Source = "apply"
	SourceClear        Source = "clear"
	SourceToday        Source = "today"
	SourceNow          Source = "now"
	SourcePreset       Source = "preset"
	SourceRecent       Source = "recent"
	SourceDrag         Source = "drag"
	SourceSlider       Source = "slider"
	SourcePicker       Source = "picker"
	SourceKeyboardStep Source = "keyboard-step"
	SourceAPI          Source = "api"
	SourceOutside      Source = "outside"
	SourceEscape       Source = "escape"
	SourceToggle       Source = "toggle"
	SourceCancel       Source = "cancel"
)

var sources = []Source{
	SourceTyping, SourceBlur, SourceEnter, SourceCalendar, SourceApply,
	SourceClear, SourceToday, SourceNow, SourcePreset, SourceRecent,
	SourceDrag, SourceSlider, SourcePicker, SourceKeyboardStep, SourceAPI,
	SourceOutside, SourceEscape, SourceToggle, SourceCancel,
}

// Sources lists every known source.
func Sources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	for _, known := range sources {
		if s == known {
			return true
		}
	}
	return false
}

// discards reports whether closing for this source throws the draft away.
func (s Source) discards() bool {
	return s == SourceEscape || s == SourceCancel
}
