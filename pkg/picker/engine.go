package picker

import (
	"errors"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/telemetry"
)

// State is where the engine sits in the commit cycle.
type State string

const (
	// StateClean means pending equals committed.
	StateClean State = "clean"
	// StateDirty means pending diverged from committed.
	StateDirty State = "dirty"
	// StateCommitted means the last commit was accepted.
	StateCommitted State = "committed"
	// StateInvalid means the last commit was rejected.
	StateInvalid State = "invalid"
)

// Engine is the pending/committed state machine shared by every picker. It
// is single threaded: call it from one goroutine, such as a bubbletea
// Update loop.
type Engine[T any] struct {
	id    ComponentID
	codec Codec[T]
	log   telemetry.Logger

	pending   T
	committed T
	attribute string
	draft     string
	drafting  bool
	errText   string
	reason    span.Reason
	state     State

	writing   bool
	onWrite   func(string)
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Event)
}

// NewEngine returns a clean engine holding the empty value. onWrite, when
// set, receives every attribute the engine itself writes.
func NewEngine[T any](id ComponentID, codec Codec[T], log telemetry.Logger, onWrite func(string)) *Engine[T] {
	if log == nil {
		log = telemetry.NewNoopLogger()
	}
	return &Engine[T]{id: id, codec: codec, log: log, onWrite: onWrite, state: StateClean}
}

// On registers fn for every event. The returned func unregisters it.
func (e *Engine[T]) On(fn func(Event)) (off func()) {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to the listeners.
func (e *Engine[T]) Emit(ev Event) {
	e.log.Debug("picker event", "picker", string(e.id), "event", ev.Describe())
	for _, l := range append([]listener(nil), e.listeners...) {
		l.fn(ev)
	}
}

// ID returns the component id.
func (e *Engine[T]) ID() ComponentID { return e.id }

// Codec returns the value codec.
func (e *Engine[T]) Codec() Codec[T] { return e.codec }

// Pending returns the live draft value.
func (e *Engine[T]) Pending() T { return e.pending }

// Value returns the committed value.
func (e *Engine[T]) Value() T { return e.committed }

// Attribute returns the public attribute form of the committed value.
func (e *Engine[T]) Attribute() string { return e.attribute }

// Draft returns typed text that has not been committed yet.
func (e *Engine[T]) Draft() (string, bool) { return e.draft, e.drafting }

// Error returns the inline error text, empty when the last commit succeeded.
func (e *Engine[T]) Error() string { return e.errText }

// Reason returns the reason of the last rejection.
func (e *Engine[T]) Reason() span.Reason { return e.reason }

// State returns the current state.
func (e *Engine[T]) State() State { return e.state }

// Dirty reports whether pending diverges from committed or text is being
// typed.
func (e *Engine[T]) Dirty() bool {
	return e.drafting || !e.codec.Equal(e.pending, e.committed)
}

// Input replaces the pending value and emits input. Committed is untouched.
func (e *Engine[T]) Input(v T, src Source) {
	e.pending = v
	e.draft, e.drafting = "", false
	e.settle()
	e.log.Debug("pending updated", "picker", string(e.id), "source", string(src))
	e.Emit(InputEvent{Component: e.id, Source: src, Value: e.codec.Format(v)})
}

// Type records typed text. When the text parses the pending value follows
// it; otherwise the draft waits for commit to be rejected.
func (e *Engine[T]) Type(raw string) {
	e.draft, e.drafting = raw, true
	if v, err := e.codec.Parse(raw); err == nil {
		e.pending = v
	}
	e.state = StateDirty
	e.Emit(InputEvent{Component: e.id, Source: SourceTyping, Value: e.codec.Format(e.pending), Raw: raw})
}

// Commit accepts the pending value: parse any draft, clamp, normalize, then
// publish. It reports whether the value was accepted. Accepting a value equal
// to the committed one emits nothing.
func (e *Engine[T]) Commit(src Source) bool {
	candidate := e.pending
	raw := ""
	if e.drafting {
		raw = e.draft
		v, err := e.codec.Parse(e.draft)
		if err != nil {
			e.reject(raw, reasonOf(err), src)
			return false
		}
		candidate = v
	}

	if e.codec.Clamp != nil && !e.codec.Empty(candidate) {
		candidate = e.codec.Clamp(candidate)
	}
	if e.codec.Normalize != nil {
		v, err := e.codec.Normalize(candidate)
		if err != nil {
			if raw == "" {
				raw = e.codec.Format(candidate)
			}
			e.reject(raw, reasonOf(err), src)
			return false
		}
		candidate = v
	}

	e.draft, e.drafting = "", false
	e.errText, e.reason = "", ""
	e.pending = candidate
	if e.codec.Equal(candidate, e.committed) {
		e.state = StateClean
		e.log.Debug("commit unchanged", "picker", string(e.id), "source", string(src))
		return true
	}

	prev := e.attribute
	e.committed = candidate
	e.write(e.codec.Format(candidate))
	e.state = StateCommitted
	e.log.Debug("committed", "picker", string(e.id), "source", string(src), "value", e.attribute)

	e.Emit(InputEvent{Component: e.id, Source: src, Value: e.attribute})
	e.Emit(ChangeEvent{Component: e.id, Source: src, Value: e.attribute, Previous: prev})
	return true
}

// CommitValue sets pending to v and commits it.
func (e *Engine[T]) CommitValue(v T, src Source) bool {
	e.pending = v
	e.draft, e.drafting = "", false
	return e.Commit(src)
}

// Reject fails a commit from outside the codec, for drafts the orchestrator
// keeps itself.
func (e *Engine[T]) Reject(raw string, reason span.Reason, src Source) {
	e.reject(raw, reason, src)
}

// Cancel resets pending to committed and clears the draft and the error.
func (e *Engine[T]) Cancel() {
	e.pending = e.committed
	e.draft, e.drafting = "", false
	e.errText, e.reason = "", ""
	e.state = StateClean
	e.log.Debug("pending reset", "picker", string(e.id))
}

// SetAttribute is an external write of the public attribute. Writes made by
// the engine itself are ignored. Otherwise committed and pending both take
// the decoded value, empty when it does not decode, and the error clears.
func (e *Engine[T]) SetAttribute(raw string) {
	if e.writing {
		return
	}
	v, ok := e.codec.Decode(raw)
	if !ok {
		e.log.Debug("attribute ignored", "picker", string(e.id), "raw", raw)
		var zero T
		v = zero
	}
	e.committed, e.pending = v, v
	e.attribute = e.codec.Format(v)
	e.draft, e.drafting = "", false
	e.errText, e.reason = "", ""
	e.state = StateClean
}

func (e *Engine[T]) write(attr string) {
	e.attribute = attr
	if e.onWrite == nil {
		return
	}
	e.writing = true
	defer func() { e.writing = false }()
	e.onWrite(attr)
}

func (e *Engine[T]) reject(raw string, reason span.Reason, src Source) {
	e.errText = ErrorText(e.codec.Variant, reason)
	e.reason = reason
	e.state = StateInvalid
	e.log.Debug("commit rejected", "picker", string(e.id), "source", string(src), "reason", string(reason), "raw", raw)
	e.Emit(InvalidEvent{Component: e.id, Source: src, Raw: raw, Reason: reason})
}

func (e *Engine[T]) settle() {
	if e.codec.Equal(e.pending, e.committed) {
		e.state = StateClean
		return
	}
	e.state = StateDirty
}

func reasonOf(err error) span.Reason {
	var inv *span.InvalidError
	if errors.As(err, &inv) {
		return inv.Reason
	}
	return span.ReasonParse
}

// ErrorText is the inline message shown for a rejection.
func ErrorText(v Variant, reason span.Reason) string {
	switch reason {
	case span.ReasonParse:
		switch v {
		case VariantTime:
			return "Enter a valid time"
		case VariantDateTime:
			return "Enter a valid date and time"
		case VariantDateRange, VariantDateTimeRange:
			return "Enter valid dates"
		default:
			return "Enter a valid date"
		}
	case span.ReasonOrder:
		return "Start must be before end"
	case span.ReasonPartial:
		return "Choose both a start and an end"
	case span.ReasonRange:
		return "Start and end must be on different days"
	}
	return "Invalid value"
}
