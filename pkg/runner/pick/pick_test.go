package pick

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
)

func TestParseField(t *testing.T) {
	tests := map[string]struct {
		id      picker.ComponentID
		variant string
		err     bool
	}{
		"check-in:date": {id: "check-in", variant: "date"},
		"time":          {id: "time", variant: "time"},
		":date":         {err: true},
		"slot:":         {err: true},
	}
	for in, tc := range tests {
		id, variant, err := ParseField(in)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseField(%q): want an error", in)
			}
			continue
		}
		if err != nil || id != tc.id || variant != tc.variant {
			t.Fatalf("ParseField(%q) = %q, %q, %v", in, id, variant, err)
		}
	}
}

func TestOptionsCarryFields(t *testing.T) {
	p := Pick{Fields: []Field{
		{ID: "stay", Variant: picker.VariantDateRange, Config: picker.DefaultConfig(picker.VariantDateRange), Value: `{"start":"2026-03-01"}`},
		{ID: "slot", Variant: picker.VariantTime, Config: picker.DefaultConfig(picker.VariantTime)},
	}, Debug: true}
	opts := p.Options()
	if len(opts.Pickers) != 2 || !opts.Debug {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Pickers[0].Label != "stay" || opts.Pickers[0].Value != `{"start":"2026-03-01"}` {
		t.Fatalf("unexpected first picker %+v", opts.Pickers[0])
	}
}

func TestRefusesWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := Pick{
		Fields:   []Field{{ID: "due", Variant: picker.VariantDate, Config: picker.DefaultConfig(picker.VariantDate)}},
		Printer:  &printers.PrettyPrint{Out: &buf},
		Terminal: func() bool { return false },
	}
	if err := p.Do(context.Background()); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("want ErrNotTerminal, got %v", err)
	}
}
