package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/tempo/pkg/picker"
)

// EventType describes the nature of a recents change notification.
type EventType int

const (
	// EventRecentsChanged indicates the recents of the given picker changed.
	EventRecentsChanged EventType = iota

	// EventRecentsInvalidated means the change could not be tied to one
	// picker; reload everything.
	EventRecentsInvalidated
)

// Event is emitted by Recents.Watch when another writer touches the store.
type Event struct {
	Type   EventType
	Picker picker.ComponentID
}

// watchDebounce is how long a burst of writes is collected before it is
// reported.
const watchDebounce = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled, then closes the
// channel. Events are dropped while the channel is full.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: recents path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure recents path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := w.Add(p.basePath); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}
	out := make(chan Event, 64)
	go p.watch(ctx, w, out)
	return out, nil
}

func (p *persistence) watch(ctx context.Context, w *fsnotify.Watcher, out chan<- Event) {
	var (
		pending changeSet
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if err := w.Close(); err != nil {
			p.log.Error("close recents watcher", err)
		}
		close(out)
	}()
	arm := func() {
		if fire != nil {
			return
		}
		timer = time.NewTimer(watchDebounce)
		fire = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			p.log.Error("recents watcher", err)
			pending.note("")
			arm()
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			pending.note(p.pickerForPath(ev.Name))
			arm()
		case <-fire:
			fire = nil
			for _, ev := range pending.drain() {
				select {
				case out <- ev:
				default:
				}
			}
		}
	}
}

// pickerForPath derives the picker id from a file under the recents path,
// or returns "" for anything else.
func (p *persistence) pickerForPath(path string) picker.ComponentID {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || filepath.Dir(rel) != "." {
		return ""
	}
	id := fromKey(rel)
	if toKey(id) != rel {
		return ""
	}
	return id
}

// changeSet collects the pickers touched in one debounce window. An empty
// id widens it to every picker.
type changeSet struct {
	all bool
	ids map[picker.ComponentID]struct{}
}

func (c *changeSet) note(id picker.ComponentID) {
	if id == "" {
		c.all = true
		return
	}
	if c.ids == nil {
		c.ids = make(map[picker.ComponentID]struct{})
	}
	c.ids[id] = struct{}{}
}

// drain returns the window as events, sorted by picker, and resets it.
func (c *changeSet) drain() []Event {
	defer func() { *c = changeSet{} }()
	if c.all {
		return []Event{{Type: EventRecentsInvalidated}}
	}
	out := make([]Event, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, Event{Type: EventRecentsChanged, Picker: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Picker < out[j].Picker })
	return out
}
