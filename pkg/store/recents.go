package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/telemetry"
)

// Recent is one committed value remembered for a picker.
type Recent struct {
	Value string    `json:"value"`
	At    time.Time `json:"at"`
}

// Recents remembers the last committed values of each picker, newest first.
type Recents interface {
	List(id picker.ComponentID) ([]Recent, error)
	Add(id picker.ComponentID, value string) error
	Clear(id picker.ComponentID) error
	IDs(ctx context.Context) []picker.ComponentID
	// Record adds every non-empty committed value c emits until off is
	// called.
	Record(c picker.Controller) (off func())
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates Recents backed by diskv using the provided config.
func Load(cfg Config, log telemetry.Logger) (Recents, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = telemetry.NewNoopLogger()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: recents path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	}), basePath: basePath, limit: cfg.RecentsLimit(), log: log, now: time.Now}, nil
}

type persistence struct {
	mu       sync.Mutex
	d        *diskv.Diskv
	basePath string
	limit    int
	log      telemetry.Logger
	now      func() time.Time
}

func (p *persistence) List(id picker.ComponentID) ([]Recent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.read(toKey(id))
}

func (p *persistence) read(key string) ([]Recent, error) {
	if !p.d.Has(key) {
		return nil, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", fromKey(key), err)
	}
	var list []Recent
	if err := json.Unmarshal(val, &list); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", fromKey(key), err)
	}
	return list, nil
}

// Add moves value to the front, dropping an older copy and anything past
// the limit.
func (p *persistence) Add(id picker.ComponentID, value string) error {
	if id == "" {
		return errors.New("store: picker id required")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	key := toKey(id)
	list, err := p.read(key)
	if err != nil {
		// A corrupt list is replaced rather than blocking new recents.
		p.log.Error("recents unreadable, resetting", err, "picker", string(id))
		list = nil
	}
	next := make([]Recent, 0, len(list)+1)
	next = append(next, Recent{Value: value, At: p.now().UTC()})
	for _, r := range list {
		if r.Value != value {
			next = append(next, r)
		}
	}
	if len(next) > p.limit {
		next = next[:p.limit]
	}
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", id, err)
	}
	p.log.Debug("recent added", "picker", string(id), "value", value, "count", len(next))
	return nil
}

func (p *persistence) Clear(id picker.ComponentID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := toKey(id)
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) IDs(ctx context.Context) []picker.ComponentID {
	ids := make([]picker.ComponentID, 0)
	for key := range p.d.Keys(ctx.Done()) {
		ids = append(ids, fromKey(key))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *persistence) Record(c picker.Controller) func() {
	return c.On(func(ev picker.Event) {
		change, ok := ev.(picker.ChangeEvent)
		if !ok || change.Value == "" {
			return
		}
		if err := p.Add(change.Component, change.Value); err != nil {
			p.log.Error("record recent", err, "picker", string(change.Component))
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// toKey encodes a picker id into a file name safe key.
func toKey(id picker.ComponentID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func fromKey(s string) picker.ComponentID {
	id, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return picker.ComponentID(fmt.Sprintf("fromKey: %s", err))
	}
	return picker.ComponentID(id)
}
