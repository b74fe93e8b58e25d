package recent

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string  { return c.path }
func (c testConfig) RecentsLimit() int { return 5 }
func (c testConfig) PickerConfig(v picker.Variant) (picker.Config, error) {
	return picker.DefaultConfig(v), nil
}

func loadRecents(t *testing.T) store.Recents {
	t.Helper()
	rs, err := store.Load(testConfig{path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for id, values := range map[picker.ComponentID][]string{
		"check-in": {"2026-03-01", "2026-03-05"},
		"slot":     {"09:30"},
	} {
		for _, v := range values {
			if err := rs.Add(id, v); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
	}
	return rs
}

func TestListAllAndOne(t *testing.T) {
	rs := loadRecents(t)
	ctx := context.Background()

	r := Recent{Recents: rs}
	all, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 entries, got %+v", all)
	}

	r.ID = "check-in"
	one, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(one) != 2 || one[0].Value != "2026-03-05" {
		t.Fatalf("want newest first, got %+v", one)
	}
}

func TestDoPrintsJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Recent{Recents: loadRecents(t), ID: "slot", Printer: &printers.PrettyPrint{Out: &buf, Format: printers.FormatJSON}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got []Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].Picker != "slot" || got[0].Value != "09:30" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestClear(t *testing.T) {
	rs := loadRecents(t)
	ctx := context.Background()

	if err := (&Clear{Recents: rs, ID: "slot"}).Do(ctx); err != nil {
		t.Fatalf("clear slot: %v", err)
	}
	if list, _ := rs.List("slot"); len(list) != 0 {
		t.Fatalf("slot not cleared: %+v", list)
	}
	if list, _ := rs.List("check-in"); len(list) != 2 {
		t.Fatalf("check-in should survive: %+v", list)
	}

	if err := (&Clear{Recents: rs}).Do(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if ids := rs.IDs(ctx); len(ids) != 0 {
		t.Fatalf("want no pickers left, got %v", ids)
	}
}

func TestListSinceWindow(t *testing.T) {
	rs := loadRecents(t)
	ctx := context.Background()
	later := time.Now().Add(48 * time.Hour)

	r := Recent{Recents: rs, Since: 24 * time.Hour, Now: func() time.Time { return later }}
	got, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("values from two days ago should fall outside a one day window: %+v", got)
	}

	r.Since = 72 * time.Hour
	if got, _ = r.List(ctx); len(got) != 3 {
		t.Fatalf("want all 3 inside three days, got %+v", got)
	}
}
