package picker

import (
	"fmt"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/span"
)

// ComponentID identifies a picker instance in emitted events.
type ComponentID string

// Kind names an event.
type Kind string

const (
	// KindInput means the pending value changed.
	KindInput Kind = "input"
	// KindChange means the committed value changed.
	KindChange Kind = "change"
	// KindInvalid means a commit was rejected.
	KindInvalid Kind = "invalid"
	// KindOpen means the overlay opened.
	KindOpen Kind = "open"
	// KindClose means the overlay closed.
	KindClose Kind = "close"
)

// Event is anything a picker emits.
type Event interface {
	EventKind() Kind
	EventSource() Source
	// Describe renders the event for logs.
	Describe() string
}

// InputEvent is emitted whenever the pending value changes. Value is the
// attribute form of the new pending value; Raw holds typed text.
type InputEvent struct {
	Component ComponentID
	Source    Source
	Value     string
	Raw       string
}

// EventKind implements Event.
func (InputEvent) EventKind() Kind { return KindInput }

// EventSource implements Event.
func (e InputEvent) EventSource() Source { return e.Source }

// Describe implements Event.
func (e InputEvent) Describe() string {
	if e.Raw != "" {
		return fmt.Sprintf(`input source:%q value:%q raw:%q`, e.Source, e.Value, e.Raw)
	}
	return fmt.Sprintf(`input source:%q value:%q`, e.Source, e.Value)
}

// ChangeEvent is emitted after a commit changed the committed value.
type ChangeEvent struct {
	Component ComponentID
	Source    Source
	Value     string
	Previous  string
}

// EventKind implements Event.
func (ChangeEvent) EventKind() Kind { return KindChange }

// EventSource implements Event.
func (e ChangeEvent) EventSource() Source { return e.Source }

// Describe implements Event.
func (e ChangeEvent) Describe() string {
	return fmt.Sprintf(`change source:%q value:%q prev:%q`, e.Source, e.Value, e.Previous)
}

// InvalidEvent is emitted when a commit is rejected.
type InvalidEvent struct {
	Component ComponentID
	Source    Source
	Raw       string
	Reason    span.Reason
}

// EventKind implements Event.
func (InvalidEvent) EventKind() Kind { return KindInvalid }

// EventSource implements Event.
func (e InvalidEvent) EventSource() Source { return e.Source }

// Describe implements Event.
func (e InvalidEvent) Describe() string {
	return fmt.Sprintf(`invalid source:%q reason:%q raw:%q`, e.Source, e.Reason, e.Raw)
}

// OpenEvent is emitted when the overlay opens.
type OpenEvent struct {
	Component    ComponentID
	Source       Source
	Presentation overlay.Presentation
}

// EventKind implements Event.
func (OpenEvent) EventKind() Kind { return KindOpen }

// EventSource implements Event.
func (e OpenEvent) EventSource() Source { return e.Source }

// Describe implements Event.
func (e OpenEvent) Describe() string {
	return fmt.Sprintf(`open source:%q as:%q`, e.Source, e.Presentation)
}

// CloseEvent is emitted when the overlay closes.
type CloseEvent struct {
	Component ComponentID
	Source    Source
}

// EventKind implements Event.
func (CloseEvent) EventKind() Kind { return KindClose }

// EventSource implements Event.
func (e CloseEvent) EventSource() Source { return e.Source }

// Describe implements Event.
func (e CloseEvent) Describe() string {
	return fmt.Sprintf(`close source:%q`, e.Source)
}
