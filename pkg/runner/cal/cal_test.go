package cal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/temporal"
)

func init() {
	color.NoColor = true
}

var now = func() time.Time { return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC) }

func TestFirstMonth(t *testing.T) {
	tests := map[string]string{
		"":              "2026-03-01",
		"2026-07":       "2026-07-01",
		"2026-07-19":    "2026-07-01",
		"March 5, 2027": "2027-03-01",
	}
	for month, want := range tests {
		c := Cal{Month: month, Config: picker.DefaultConfig(picker.VariantDate), Now: now}
		got, err := c.First()
		if err != nil {
			t.Fatalf("First(%q): %v", month, err)
		}
		if got.String() != want {
			t.Fatalf("First(%q) = %s, want %s", month, got, want)
		}
	}
	c := Cal{Month: "someday", Now: now}
	if _, err := c.First(); err == nil {
		t.Fatal("want an error for an unreadable month")
	}
}

func TestSelectedDecodesRanges(t *testing.T) {
	c := Cal{
		Variant: picker.VariantDateRange,
		Config:  picker.DefaultConfig(picker.VariantDateRange),
		Value:   `{"start":"2026-03-09","end":"2026-03-13"}`,
		Now:     now,
	}
	sel, err := c.Selected()
	if err != nil {
		t.Fatalf("selected: %v", err)
	}
	if !sel.Complete() || *sel.Start != temporal.MustDate(2026, 3, 9) || *sel.End != temporal.MustDate(2026, 3, 13) {
		t.Fatalf("unexpected selection %+v", sel)
	}

	c = Cal{Variant: picker.VariantTime, Config: picker.DefaultConfig(picker.VariantTime), Value: "09:00"}
	if _, err := c.Selected(); err == nil {
		t.Fatal("times have no calendar")
	}
}

func TestPrintsEveryMonth(t *testing.T) {
	var buf bytes.Buffer
	c := Cal{
		Month:   "2026-03",
		Months:  2,
		Variant: picker.VariantDate,
		Config:  picker.DefaultConfig(picker.VariantDate),
		Now:     now,
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "March 2026") || !strings.Contains(out, "April 2026") {
		t.Fatalf("missing months in\n%s", out)
	}
}
