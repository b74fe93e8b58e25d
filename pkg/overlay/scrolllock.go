package overlay

import (
	"strconv"
	"sync"
)

// BodyStyle is the part of the document body a scroll lock overrides.
type BodyStyle struct {
	Overflow     string
	PaddingRight string
}

// Body is the document body.
type Body interface {
	Style() BodyStyle
	SetStyle(BodyStyle)
	// ScrollbarWidth is the width the page scrollbar occupies, used to keep
	// content from shifting when it disappears.
	ScrollbarWidth() float64
}

// ScrollLock is the process wide, reference counted body scroll lock shared
// by every sheet.
type ScrollLock struct {
	mu     sync.Mutex
	body   Body
	count  int
	saved  BodyStyle
	locked BodyStyle
}

// NewScrollLock locks body on first acquire.
func NewScrollLock(body Body) *ScrollLock {
	return &ScrollLock{body: body}
}

// Acquire takes a reference. The first holder records the body style and
// overrides it; the returned release is idempotent and only the last release
// restores the original style.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	if l.count == 0 && l.body != nil {
		l.saved = l.body.Style()
		l.locked = BodyStyle{Overflow: "hidden", PaddingRight: l.saved.PaddingRight}
		if w := l.body.ScrollbarWidth(); w > 0 {
			l.locked.PaddingRight = pixels(w)
		}
		l.body.SetStyle(l.locked)
	}
	l.count++
	l.mu.Unlock()

	var once sync.Once
	return func() { once.Do(l.release) }
}

func (l *ScrollLock) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == 0 {
		return
	}
	l.count--
	if l.count == 0 && l.body != nil {
		l.body.SetStyle(l.saved)
	}
}

// Count reports the current number of holders.
func (l *ScrollLock) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func pixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// MemoryBody is a Body held in memory, used by terminal hosts and tests.
type MemoryBody struct {
	mu        sync.Mutex
	style     BodyStyle
	Scrollbar float64
}

// NewMemoryBody returns a body with the given starting style.
func NewMemoryBody(style BodyStyle) *MemoryBody {
	return &MemoryBody{style: style}
}

// Style implements Body.
func (b *MemoryBody) Style() BodyStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style
}

// SetStyle implements Body.
func (b *MemoryBody) SetStyle(s BodyStyle) {
	b.mu.Lock()
	b.style = s
	b.mu.Unlock()
}

// ScrollbarWidth implements Body.
func (b *MemoryBody) ScrollbarWidth() float64 { return b.Scrollbar }
