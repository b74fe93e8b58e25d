package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowEmptyIsUnbounded(t *testing.T) {
	d, err := ParseWindow("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("expected no window, got %v", d)
	}
}

func TestParseWindowComposite(t *testing.T) {
	d, err := ParseWindow("1w 2days6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Week + 2*Day + 6*time.Hour + 30*time.Minute
	if d != want {
		t.Fatalf("expected %v, got %v", want, d)
	}
	if got := FormatWindow(d); got != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3y", "0d"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		30 * time.Second:    "just now",
		-time.Hour:          "just now",
		90 * time.Minute:    "1h ago",
		3*Day + 5*time.Hour: "3d ago",
		15 * Day:            "2w ago",
	}
	for back, want := range cases {
		if got := Ago(now, now.Add(-back)); got != want {
			t.Fatalf("Ago(-%v) = %q, want %q", back, got, want)
		}
	}
}
