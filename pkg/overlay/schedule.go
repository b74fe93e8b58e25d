package overlay

import (
	"sync"
	"time"
)

// FrameScheduler runs callbacks on the next animation frame. The returned
// cancel func drops the callback if it has not run yet.
type FrameScheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// Coalescer collapses bursts of Schedule calls into at most one run of fn per
// frame.
type Coalescer struct {
	mu      sync.Mutex
	frames  FrameScheduler
	fn      func()
	cancel  func()
	pending bool
	gen     uint64
}

// NewCoalescer wires fn to frames.
func NewCoalescer(frames FrameScheduler, fn func()) *Coalescer {
	return &Coalescer{frames: frames, fn: fn}
}

// Schedule requests a run on the next frame unless one is already pending.
func (c *Coalescer) Schedule() {
	c.mu.Lock()
	if c.pending || c.frames == nil {
		c.mu.Unlock()
		return
	}
	c.pending = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	cancel := c.frames.RequestFrame(func() { c.run(gen) })

	c.mu.Lock()
	if c.pending && c.gen == gen {
		c.cancel = cancel
	}
	c.mu.Unlock()
}

func (c *Coalescer) run(gen uint64) {
	c.mu.Lock()
	if !c.pending || c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.cancel = nil
	fn := c.fn
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Cancel drops a pending run. Safe to call repeatedly.
func (c *Coalescer) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.pending = false
	c.gen++
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Pending reports whether a run is scheduled.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// ManualFrames queues frame callbacks until the host calls Flush, once per
// rendered frame.
type ManualFrames struct {
	mu    sync.Mutex
	next  uint64
	queue map[uint64]func()
	order []uint64
}

// NewManualFrames returns an empty queue.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{queue: make(map[uint64]func())}
}

// RequestFrame implements FrameScheduler.
func (f *ManualFrames) RequestFrame(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := f.next
	f.queue[id] = fn
	f.order = append(f.order, id)
	return func() {
		f.mu.Lock()
		delete(f.queue, id)
		f.mu.Unlock()
	}
}

// Len reports how many callbacks wait for the next frame.
func (f *ManualFrames) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Flush runs every queued callback in request order. Callbacks queued while
// flushing wait for the next frame.
func (f *ManualFrames) Flush() int {
	f.mu.Lock()
	order := f.order
	f.order = nil
	fns := make([]func(), 0, len(order))
	for _, id := range order {
		if fn, ok := f.queue[id]; ok {
			fns = append(fns, fn)
			delete(f.queue, id)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// FrameInterval approximates one display refresh.
const FrameInterval = 16 * time.Millisecond

// TimerFrames schedules callbacks on a wall-clock frame interval.
type TimerFrames struct {
	Interval time.Duration
}

// RequestFrame implements FrameScheduler.
func (f TimerFrames) RequestFrame(fn func()) func() {
	d := f.Interval
	if d <= 0 {
		d = FrameInterval
	}
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Microtasks defers work until the current render pass completes. The host
// drains the queue right after it has rendered.
type Microtasks struct {
	mu    sync.Mutex
	queue []func()
}

// Defer queues fn.
func (m *Microtasks) Defer(fn func()) {
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

// Len reports the queue length.
func (m *Microtasks) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Drain runs queued tasks, including any they queue in turn.
func (m *Microtasks) Drain() {
	for {
		m.mu.Lock()
		queue := m.queue
		m.queue = nil
		m.mu.Unlock()
		if len(queue) == 0 {
			return
		}
		for _, fn := range queue {
			fn()
		}
	}
}
