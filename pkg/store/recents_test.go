package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/picker"
)

func loadTestRecents(t *testing.T, limit int) *persistence {
	t.Helper()
	r, err := Load(testConfig{path: t.TempDir(), limit: limit}, nil)
	if err != nil {
		t.Fatalf("load recents: %v", err)
	}
	p := r.(*persistence)
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return p
}

func values(list []Recent) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Value
	}
	return out
}

func TestRecentsNewestFirstAndDeduped(t *testing.T) {
	p := loadTestRecents(t, 3)
	for _, v := range []string{"2026-03-01", "2026-03-02", "2026-03-01", "2026-03-03", "2026-03-04"} {
		if err := p.Add("due", v); err != nil {
			t.Fatalf("add %s: %v", v, err)
		}
	}
	list, err := p.List("due")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := values(list)
	want := []string{"2026-03-04", "2026-03-03", "2026-03-01"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !list[0].At.After(list[1].At) {
		t.Fatalf("newest entry should carry the latest time: %+v", list)
	}
}

func TestRecentsIgnoresEmptyValues(t *testing.T) {
	p := loadTestRecents(t, 0)
	if err := p.Add("due", "  "); err != nil {
		t.Fatalf("add: %v", err)
	}
	list, err := p.List("due")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no recents, got %v", list)
	}
	if err := p.Add("", "2026-03-01"); err == nil {
		t.Fatal("expected an error for an empty picker id")
	}
}

func TestRecentsIDsAndClear(t *testing.T) {
	p := loadTestRecents(t, 0)
	for _, id := range []picker.ComponentID{"stay", "due", "check-in/out"} {
		if err := p.Add(id, "2026-03-01"); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	ids := p.IDs(context.Background())
	if len(ids) != 3 || ids[0] != "check-in/out" || ids[1] != "due" || ids[2] != "stay" {
		t.Fatalf("unexpected ids %v", ids)
	}

	if err := p.Clear("due"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := p.Clear("due"); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if len(p.IDs(context.Background())) != 2 {
		t.Fatalf("expected two ids after clear")
	}
}

func TestRecentsCorruptListIsReplaced(t *testing.T) {
	p := loadTestRecents(t, 0)
	if err := os.WriteFile(filepath.Join(p.basePath, toKey("due")), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := p.List("due"); err == nil {
		t.Fatal("expected a decode error")
	}
	if err := p.Add("due", "2026-03-01"); err != nil {
		t.Fatalf("add: %v", err)
	}
	list, err := p.List("due")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one recent, got %v (%v)", list, err)
	}
}

func TestRecordCapturesCommittedValues(t *testing.T) {
	p := loadTestRecents(t, 0)
	c, err := picker.NewDatePicker("due", picker.DefaultConfig(picker.VariantDate), picker.Deps{})
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	off := p.Record(c)

	c.Type("2026-03-05")
	if !c.Enter() {
		t.Fatalf("enter rejected: %s", c.Error())
	}
	c.Type("not a date")
	c.Enter()
	c.Clear()

	off()
	c.Type("2026-03-06")
	c.Enter()

	list, err := p.List("due")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := values(list)
	if len(got) != 1 || got[0] != "2026-03-05" {
		t.Fatalf("expected only the committed value, got %v", got)
	}
}
