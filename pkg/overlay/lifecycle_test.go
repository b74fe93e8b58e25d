package overlay

import "testing"

type fixture struct {
	doc    *Dispatcher
	frames *ManualFrames
	tasks  *Microtasks
	body   *MemoryBody
	lock   *ScrollLock
	layout Layout
	placed int
}

func newFixture(width float64) *fixture {
	body := NewMemoryBody(BodyStyle{Overflow: "auto", PaddingRight: "0px"})
	body.Scrollbar = 15
	return &fixture{
		doc:    NewDispatcher(),
		frames: NewManualFrames(),
		tasks:  &Microtasks{},
		body:   body,
		lock:   NewScrollLock(body),
		layout: Layout{
			Anchor:   Rect{Top: 100, Left: 20, Width: 200, Height: 30},
			Panel:    Rect{Width: 300, Height: 200},
			Viewport: Size{Width: width, Height: 800},
		},
	}
}

func (f *fixture) lifecycle(cb Callbacks) *Lifecycle {
	placed := cb.Placed
	cb.Placed = func(p Position, pr Presentation) {
		f.placed++
		if placed != nil {
			placed(p, pr)
		}
	}
	return NewLifecycle(Host{
		Document: f.doc,
		Frames:   f.frames,
		Tasks:    f.tasks,
		Lock:     f.lock,
	}, func() (Layout, bool) { return f.layout, true }, cb)
}

func TestLifecycleListenersAreSymmetric(t *testing.T) {
	f := newFixture(1024)
	l := f.lifecycle(Callbacks{})
	for i := 0; i < 5; i++ {
		if !l.Open() {
			t.Fatalf("open %d failed", i)
		}
		if l.Open() {
			t.Fatalf("second open should be a no-op")
		}
		if got := f.doc.Count(PointerDown) + f.doc.Count(KeyDown); got != 2 {
			t.Fatalf("expected 2 listeners while open, got %d", got)
		}
		l.Close()
		if l.Close() {
			t.Fatalf("second close should be a no-op")
		}
		if got := f.doc.Count(PointerDown) + f.doc.Count(KeyDown); got != 0 {
			t.Fatalf("listeners leaked after close: %d", got)
		}
	}
}

func TestLifecycleCoalescesRepositioning(t *testing.T) {
	f := newFixture(1024)
	l := f.lifecycle(Callbacks{})
	l.Open()
	if f.placed != 1 {
		t.Fatalf("expected initial placement, got %d", f.placed)
	}
	for i := 0; i < 10; i++ {
		l.RequestReposition()
	}
	if f.frames.Len() != 1 {
		t.Fatalf("expected one queued frame, got %d", f.frames.Len())
	}
	f.frames.Flush()
	if f.placed != 2 {
		t.Fatalf("expected one recompute for the burst, got %d", f.placed-1)
	}

	l.RequestReposition()
	l.Close()
	f.frames.Flush()
	if f.placed != 2 {
		t.Fatalf("recompute ran after close")
	}
}

func TestLifecycleOutsideClickAndEscape(t *testing.T) {
	f := newFixture(1024)
	var outside, escape int
	l := f.lifecycle(Callbacks{
		Outside: func() { outside++ },
		Escape:  func() { escape++ },
	})
	l.Open()

	f.doc.Dispatch(Event{Kind: PointerDown, X: 30, Y: 110})
	if outside != 0 {
		t.Fatalf("press on the anchor is not outside")
	}
	f.doc.Dispatch(Event{Kind: PointerDown, X: 50, Y: 200})
	if outside != 0 {
		t.Fatalf("press on the panel is not outside")
	}
	f.doc.Dispatch(Event{Kind: PointerDown, X: 900, Y: 700})
	if outside != 1 {
		t.Fatalf("expected outside press, got %d", outside)
	}
	f.doc.Dispatch(Event{Kind: KeyDown, Key: "a"})
	f.doc.Dispatch(Event{Kind: KeyDown, Key: "Escape"})
	if escape != 1 {
		t.Fatalf("expected one escape, got %d", escape)
	}

	l.Close()
	f.doc.Dispatch(Event{Kind: PointerDown, X: 900, Y: 700})
	if outside != 1 {
		t.Fatalf("closed overlay still reacts to presses")
	}
}

func TestLifecycleDefersFocus(t *testing.T) {
	f := newFixture(1024)
	focused := 0
	l := f.lifecycle(Callbacks{Focus: func() { focused++ }})
	l.Open()
	if focused != 0 {
		t.Fatalf("focus must wait for the render pass")
	}
	f.tasks.Drain()
	if focused != 1 {
		t.Fatalf("expected focus after drain")
	}

	l.Close()
	l.Open()
	l.Close()
	f.tasks.Drain()
	if focused != 1 {
		t.Fatalf("focus ran for an overlay closed before the render pass")
	}
}

func TestLifecycleCloseCancelsTracking(t *testing.T) {
	f := newFixture(1024)
	l := f.lifecycle(Callbacks{})
	l.Open()
	cancelled := false
	l.TrackPointer(func() { cancelled = true })
	if !l.Tracking() {
		t.Fatalf("expected tracking")
	}
	l.Close()
	if !cancelled || l.Tracking() {
		t.Fatalf("close must cancel drag tracking")
	}
}

func TestScrollLockIsReferenceCounted(t *testing.T) {
	f := newFixture(400)
	a := f.lifecycle(Callbacks{})
	b := f.lifecycle(Callbacks{})

	a.Open()
	if a.Presentation() != Sheet {
		t.Fatalf("narrow viewport should open a sheet")
	}
	if got := f.body.Style(); got.Overflow != "hidden" || got.PaddingRight != "15px" {
		t.Fatalf("unexpected locked style %+v", got)
	}
	b.Open()
	if f.lock.Count() != 2 {
		t.Fatalf("expected 2 holders, got %d", f.lock.Count())
	}
	a.Close()
	if f.body.Style().Overflow != "hidden" {
		t.Fatalf("first release must not restore while another sheet is open")
	}
	b.Close()
	if got := f.body.Style(); got.Overflow != "auto" || got.PaddingRight != "0px" {
		t.Fatalf("style not restored: %+v", got)
	}
}

func TestScrollLockReleaseIsIdempotent(t *testing.T) {
	body := NewMemoryBody(BodyStyle{Overflow: "scroll"})
	lock := NewScrollLock(body)
	r1 := lock.Acquire()
	r2 := lock.Acquire()
	r1()
	r1()
	if lock.Count() != 1 {
		t.Fatalf("double release dropped another holder: %d", lock.Count())
	}
	r2()
	if body.Style().Overflow != "scroll" {
		t.Fatalf("style not restored")
	}
}

func TestResizeSwitchesPresentation(t *testing.T) {
	f := newFixture(1024)
	l := f.lifecycle(Callbacks{})
	l.Open()
	if l.Presentation() != Popover || f.lock.Count() != 0 {
		t.Fatalf("wide viewport should be a popover without lock")
	}
	f.layout.Viewport.Width = 500
	l.Resize()
	if l.Presentation() != Sheet || f.lock.Count() != 1 {
		t.Fatalf("expected sheet with lock after shrinking")
	}
	f.layout.Viewport.Width = 900
	l.Resize()
	if l.Presentation() != Popover || f.lock.Count() != 0 {
		t.Fatalf("expected popover without lock after growing")
	}
	l.Close()
}

func TestMissingElementsMakePlacementANoop(t *testing.T) {
	f := newFixture(1024)
	l := NewLifecycle(Host{Document: f.doc}, func() (Layout, bool) { return Layout{}, false }, Callbacks{})
	l.Open()
	if _, ok := l.Position(); ok {
		t.Fatalf("expected no position without anchor")
	}
	l.RequestReposition()
	l.Close()
}

func TestUnmeasuredOpenStaysPopoverWithoutLock(t *testing.T) {
	f := newFixture(400)
	missing := true
	l := NewLifecycle(Host{Document: f.doc, Lock: f.lock}, func() (Layout, bool) {
		if missing {
			return Layout{}, false
		}
		return f.layout, true
	}, Callbacks{})
	l.Open()
	if l.Presentation() != Popover || f.lock.Count() != 0 {
		t.Fatalf("unmeasured open gave %v with %d lock holders", l.Presentation(), f.lock.Count())
	}
	l.Resize()
	if l.Presentation() != Popover || f.lock.Count() != 0 {
		t.Fatalf("unmeasured resize gave %v with %d lock holders", l.Presentation(), f.lock.Count())
	}
	missing = false
	l.Resize()
	if l.Presentation() != Sheet || f.lock.Count() != 1 {
		t.Fatalf("measured narrow viewport should switch to a locked sheet")
	}
	missing = true
	l.Resize()
	if l.Presentation() != Sheet || f.lock.Count() != 1 {
		t.Fatalf("losing the measurement should keep the sheet")
	}
	l.Close()
	if f.lock.Count() != 0 {
		t.Fatalf("close should release the lock, got %d", f.lock.Count())
	}
}
