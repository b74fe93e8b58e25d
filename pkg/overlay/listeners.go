package overlay

import (
	"sort"
	"sync"
)

// EventKind names a document level event.
type EventKind string

const (
	// PointerDown fires on any press; used for outside-click dismissal.
	PointerDown EventKind = "pointerdown"
	// KeyDown fires on any key; used for global Escape.
	KeyDown EventKind = "keydown"
)

// Event is a document level event as seen by listeners.
type Event struct {
	Kind EventKind
	// X and Y are set for pointer events.
	X, Y float64
	// Key is set for key events.
	Key string
}

// Listener handles a document event.
type Listener func(Event)

// Document accepts document level listeners. The returned remove func must
// be safe to call more than once.
type Document interface {
	AddListener(kind EventKind, fn Listener) (remove func())
}

// Dispatcher is an in-process Document. Hosts feed it events with Dispatch.
type Dispatcher struct {
	mu        sync.Mutex
	next      int
	listeners map[EventKind]map[int]Listener
}

// NewDispatcher returns a Dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventKind]map[int]Listener)}
}

// AddListener implements Document.
func (d *Dispatcher) AddListener(kind EventKind, fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	id := d.next
	if d.listeners[kind] == nil {
		d.listeners[kind] = make(map[int]Listener)
	}
	d.listeners[kind][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners[kind], id)
			d.mu.Unlock()
		})
	}
}

// Count reports how many listeners are attached for kind.
func (d *Dispatcher) Count(kind EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

// Dispatch delivers e to every listener of its kind, oldest first. Listeners
// may remove themselves while being dispatched.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.listeners[e.Kind]))
	for id := range d.listeners[e.Kind] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.listeners[e.Kind][id])
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
