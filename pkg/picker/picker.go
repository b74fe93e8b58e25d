package picker

import (
	"fmt"
	"time"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/telemetry"
	"tableflip.dev/tempo/pkg/temporal"
)

// Deps are the collaborators a picker is built with. Every field is
// optional.
type Deps struct {
	// Cache holds locale month names and formatters. Defaults to the shared
	// process cache.
	Cache  *temporal.Cache
	Logger telemetry.Logger
	// Host is the overlay environment. Without one the picker only renders
	// inline.
	Host *overlay.Host
	// Measure reports the anchor, panel and viewport geometry.
	Measure overlay.Measurer
	// Placed receives each recomputed overlay position.
	Placed func(overlay.Position, overlay.Presentation)
	// Focus moves focus into the panel after it opens.
	Focus func()
	// Write receives every attribute value the picker publishes.
	Write func(attr string)
	// Now is the clock used by today, now and presets.
	Now func() time.Time
}

func (d Deps) cache() *temporal.Cache {
	if d.Cache == nil {
		return temporal.SharedCache()
	}
	return d.Cache
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// picker holds what every orchestrator shares: config, engine and the
// optional overlay.
type picker[T any] struct {
	cfg     Config
	deps    Deps
	engine  *Engine[T]
	overlay *overlay.Lifecycle
	// dismiss closes for the overlay's outside and escape callbacks so
	// wrappers can extend Close.
	dismiss func(Source) bool
}

func newPicker[T any](id ComponentID, v Variant, cfg Config, deps Deps, codec func(Config, *temporal.Cache) Codec[T]) (*picker[T], error) {
	if err := cfg.Validate(v); err != nil {
		return nil, fmt.Errorf("%s picker %q: %w", v, id, err)
	}
	p := &picker[T]{cfg: cfg, deps: deps}
	p.dismiss = p.Close
	p.engine = NewEngine(id, codec(cfg, deps.cache()), deps.Logger, deps.Write)
	if !cfg.Inline() && deps.Host != nil {
		host := *deps.Host
		if cfg.SheetBreakpoint > 0 {
			host.Breakpoint = cfg.SheetBreakpoint
		}
		p.overlay = overlay.NewLifecycle(host, deps.Measure, overlay.Callbacks{
			Outside: func() { p.dismiss(SourceOutside) },
			Escape:  func() { p.dismiss(SourceEscape) },
			Placed:  deps.Placed,
			Focus:   deps.Focus,
		})
	}
	return p, nil
}

// ID returns the component id.
func (p *picker[T]) ID() ComponentID { return p.engine.ID() }

// Config returns the validated configuration.
func (p *picker[T]) Config() Config { return p.cfg }

// Engine exposes the state machine.
func (p *picker[T]) Engine() *Engine[T] { return p.engine }

// Overlay returns the overlay lifecycle, nil in inline mode.
func (p *picker[T]) Overlay() *overlay.Lifecycle { return p.overlay }

// On subscribes to events.
func (p *picker[T]) On(fn func(Event)) func() { return p.engine.On(fn) }

// Value returns the committed value.
func (p *picker[T]) Value() T { return p.engine.Value() }

// Pending returns the pending value.
func (p *picker[T]) Pending() T { return p.engine.Pending() }

// Attribute returns the public attribute.
func (p *picker[T]) Attribute() string { return p.engine.Attribute() }

// Error returns the inline error text.
func (p *picker[T]) Error() string { return p.engine.Error() }

// SetAttribute resynchronizes the picker from an external write.
func (p *picker[T]) SetAttribute(raw string) { p.engine.SetAttribute(raw) }

// IsOpen reports whether the overlay is open. Inline pickers are never
// open.
func (p *picker[T]) IsOpen() bool {
	return p.overlay != nil && p.overlay.IsOpen()
}

func (p *picker[T]) interactive() bool {
	return !p.cfg.Disabled && !p.cfg.Readonly
}

// Open resets pending to committed and opens the overlay.
func (p *picker[T]) Open(src Source) bool {
	if p.overlay == nil || !p.interactive() {
		return false
	}
	if p.overlay.IsOpen() {
		return false
	}
	p.engine.Cancel()
	if !p.overlay.Open() {
		return false
	}
	p.engine.Emit(OpenEvent{Component: p.ID(), Source: src, Presentation: p.overlay.Presentation()})
	return true
}

// Close closes the overlay without committing. Escape and cancel also
// discard the pending value.
func (p *picker[T]) Close(src Source) bool {
	if src.discards() {
		p.engine.Cancel()
	}
	if p.overlay == nil || !p.overlay.Close() {
		return false
	}
	p.engine.Emit(CloseEvent{Component: p.ID(), Source: src})
	return true
}

// Toggle opens a closed overlay and closes an open one.
func (p *picker[T]) Toggle() bool {
	if p.IsOpen() {
		return p.Close(SourceToggle)
	}
	return p.Open(SourceToggle)
}

// Cancel discards the pending value and closes the overlay.
func (p *picker[T]) Cancel() {
	p.engine.Cancel()
	p.Close(SourceCancel)
}

// Type records typed text.
func (p *picker[T]) Type(raw string) {
	if !p.interactive() {
		return
	}
	p.engine.Type(raw)
}

// Enter commits and closes on success.
func (p *picker[T]) Enter() bool {
	return p.commitAndClose(SourceEnter)
}

// Blur commits without touching the overlay.
func (p *picker[T]) Blur() bool {
	if !p.interactive() {
		return false
	}
	return p.engine.Commit(SourceBlur)
}

// Apply commits and closes on success.
func (p *picker[T]) Apply() bool {
	return p.commitAndClose(SourceApply)
}

// Clear commits the empty value when the picker is clearable.
func (p *picker[T]) Clear() bool {
	if !p.cfg.Clearable || !p.interactive() {
		return false
	}
	var zero T
	return p.engine.CommitValue(zero, SourceClear)
}

// SelectRecent loads a previously committed attribute into pending.
func (p *picker[T]) SelectRecent(attr string) bool {
	if !p.interactive() {
		return false
	}
	v, ok := p.engine.Codec().Decode(attr)
	if !ok {
		return false
	}
	p.engine.Input(v, SourceRecent)
	return true
}

func (p *picker[T]) commitAndClose(src Source) bool {
	if !p.interactive() {
		return false
	}
	if !p.engine.Commit(src) {
		return false
	}
	p.Close(src)
	return true
}

// pick handles a calendar selection: commit and close when close-on-select
// is set, otherwise only update pending.
func (p *picker[T]) pick(v T) {
	if !p.interactive() {
		return
	}
	if p.cfg.CloseOnSelect {
		if p.engine.CommitValue(v, SourceCalendar) {
			p.Close(SourceCalendar)
		}
		return
	}
	p.engine.Input(v, SourceCalendar)
}

// Resize forwards a viewport change to the overlay.
func (p *picker[T]) Resize() {
	if p.overlay != nil {
		p.overlay.Resize()
	}
}

// Scroll schedules a coalesced reposition.
func (p *picker[T]) Scroll() {
	if p.overlay != nil {
		p.overlay.RequestReposition()
	}
}
