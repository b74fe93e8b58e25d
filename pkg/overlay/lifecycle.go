package overlay

import "sync"

// Layout is a measurement of the anchor, the panel and the viewport.
type Layout struct {
	Anchor   Rect
	Panel    Rect
	Viewport Size
	Scroll   Point
}

// Measurer measures the current layout. It reports false when the anchor or
// the panel does not exist, which turns placement into a no-op.
type Measurer func() (Layout, bool)

// Host is the shared environment overlays live in.
type Host struct {
	Document   Document
	Frames     FrameScheduler
	Tasks      *Microtasks
	Lock       *ScrollLock
	Options    Options
	Breakpoint float64
}

// Callbacks connect a Lifecycle to its owner. Every field is optional.
type Callbacks struct {
	// Outside runs on a pointer press outside both anchor and panel.
	Outside func()
	// Escape runs on a global Escape key.
	Escape func()
	// Placed runs after each recompute.
	Placed func(Position, Presentation)
	// Focus runs once after open, after the render pass.
	Focus func()
}

// Lifecycle is the overlay state of one picker instance: created on open,
// torn down on close.
type Lifecycle struct {
	mu        sync.Mutex
	host      Host
	measure   Measurer
	cb        Callbacks
	coalescer *Coalescer

	open         bool
	generation   uint64
	presentation Presentation
	position     Position
	placed       bool
	layout       Layout
	removers     []func()
	release      func()
	tracking     func()
}

// NewLifecycle returns a closed overlay bound to host.
func NewLifecycle(host Host, measure Measurer, cb Callbacks) *Lifecycle {
	if host.Options == (Options{}) {
		host.Options = DefaultOptions()
	}
	l := &Lifecycle{host: host, measure: measure, cb: cb, presentation: Popover}
	l.coalescer = NewCoalescer(host.Frames, l.reposition)
	return l
}

// Open attaches document listeners, takes the scroll lock in sheet mode,
// computes the first position and queues focus. It reports false when the
// overlay was already open. Without any viewport measurement the overlay
// opens as a popover and the scroll lock is left alone.
func (l *Lifecycle) Open() bool {
	width, measured := l.viewportWidth()
	l.mu.Lock()
	if l.open {
		l.mu.Unlock()
		return false
	}
	l.open = true
	l.generation++
	gen := l.generation
	l.presentation = Popover
	if measured {
		l.presentation = Present(width, l.host.Breakpoint)
	}
	if l.presentation == Sheet {
		l.acquireLocked()
	}
	if d := l.host.Document; d != nil {
		l.removers = append(l.removers,
			d.AddListener(PointerDown, l.onPointer),
			d.AddListener(KeyDown, l.onKey),
		)
	}
	l.mu.Unlock()

	l.reposition()

	if l.cb.Focus != nil {
		focus := func() {
			l.mu.Lock()
			current := l.open && l.generation == gen
			l.mu.Unlock()
			if current {
				l.cb.Focus()
			}
		}
		if l.host.Tasks != nil {
			l.host.Tasks.Defer(focus)
		} else {
			focus()
		}
	}
	return true
}

// Close detaches listeners, releases the scroll lock, and cancels pointer
// tracking and any scheduled recompute. It reports false when the overlay
// was already closed. Close never commits anything.
func (l *Lifecycle) Close() bool {
	l.mu.Lock()
	if !l.open {
		l.mu.Unlock()
		return false
	}
	l.open = false
	l.generation++
	removers := l.removers
	l.removers = nil
	tracking := l.tracking
	l.tracking = nil
	l.releaseLocked()
	l.placed = false
	l.mu.Unlock()

	for _, remove := range removers {
		remove()
	}
	if tracking != nil {
		tracking()
	}
	l.coalescer.Cancel()
	return true
}

// IsOpen reports whether the overlay is open.
func (l *Lifecycle) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// RequestReposition schedules a recompute on the next frame. Bursts of
// scroll and resize signals collapse into one.
func (l *Lifecycle) RequestReposition() {
	if !l.IsOpen() {
		return
	}
	if l.host.Frames == nil {
		l.reposition()
		return
	}
	l.coalescer.Schedule()
}

// Resize re-evaluates sheet versus popover for the new viewport width and
// schedules a recompute. An unmeasurable viewport keeps the current
// presentation.
func (l *Lifecycle) Resize() {
	width, measured := l.viewportWidth()
	l.mu.Lock()
	if !l.open {
		l.mu.Unlock()
		return
	}
	next := l.presentation
	if measured {
		next = Present(width, l.host.Breakpoint)
	}
	if next != l.presentation {
		if next == Sheet {
			l.acquireLocked()
		} else {
			l.releaseLocked()
		}
		l.presentation = next
	}
	l.mu.Unlock()
	l.RequestReposition()
}

// TrackPointer registers an in-flight drag. cancel runs if the overlay
// closes before the drag ends. The returned done func ends tracking.
func (l *Lifecycle) TrackPointer(cancel func()) (done func()) {
	l.mu.Lock()
	if !l.open {
		l.mu.Unlock()
		return func() {}
	}
	prev := l.tracking
	l.tracking = cancel
	gen := l.generation
	l.mu.Unlock()
	if prev != nil {
		prev()
	}
	return func() {
		l.mu.Lock()
		if l.generation == gen {
			l.tracking = nil
		}
		l.mu.Unlock()
	}
}

// Tracking reports whether a drag is in flight.
func (l *Lifecycle) Tracking() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tracking != nil
}

// Position returns the last computed position.
func (l *Lifecycle) Position() (Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position, l.placed
}

// Presentation returns the current presentation.
func (l *Lifecycle) Presentation() Presentation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.presentation
}

func (l *Lifecycle) reposition() {
	if l.measure == nil {
		return
	}
	layout, ok := l.measure()
	l.mu.Lock()
	if !l.open || !ok {
		l.mu.Unlock()
		return
	}
	l.layout = layout
	l.position = Place(layout.Anchor, layout.Panel, layout.Viewport, layout.Scroll, l.host.Options)
	l.placed = true
	pos, pres := l.position, l.presentation
	l.mu.Unlock()

	if l.cb.Placed != nil {
		l.cb.Placed(pos, pres)
	}
}

func (l *Lifecycle) onPointer(e Event) {
	l.mu.Lock()
	open := l.open
	layout := l.layout
	placed := l.placed
	pos := l.position
	l.mu.Unlock()
	if !open || l.cb.Outside == nil {
		return
	}
	if placed {
		panel := Rect{
			Top:    pos.Top - layout.Scroll.Y,
			Left:   pos.Left - layout.Scroll.X,
			Width:  layout.Panel.Width,
			Height: layout.Panel.Height,
		}
		if layout.Anchor.Contains(e.X, e.Y) || panel.Contains(e.X, e.Y) {
			return
		}
	}
	l.cb.Outside()
}

func (l *Lifecycle) onKey(e Event) {
	if e.Key != "Escape" && e.Key != "esc" {
		return
	}
	if !l.IsOpen() || l.cb.Escape == nil {
		return
	}
	l.cb.Escape()
}

// viewportWidth reports the current viewport width, falling back to the last
// successful measurement. It reports false when neither exists.
func (l *Lifecycle) viewportWidth() (float64, bool) {
	if l.measure != nil {
		if layout, ok := l.measure(); ok {
			return layout.Viewport.Width, true
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.layout.Viewport.Width <= 0 {
		return 0, false
	}
	return l.layout.Viewport.Width, true
}

func (l *Lifecycle) acquireLocked() {
	if l.release != nil || l.host.Lock == nil {
		return
	}
	l.release = l.host.Lock.Acquire()
}

func (l *Lifecycle) releaseLocked() {
	if l.release == nil {
		return
	}
	l.release()
	l.release = nil
}
