package clamp

import (
	"testing"

	"tableflip.dev/tempo/pkg/picker"
)

func TestClamp(t *testing.T) {
	tests := map[string]struct {
		variant  picker.Variant
		value    string
		min, max string
		want     string
		changed  bool
	}{
		"date below min":        {variant: picker.VariantDate, value: "2026-01-15", min: "2026-02-01", want: "2026-02-01", changed: true},
		"date inside":           {variant: picker.VariantDate, value: "2026-02-15", min: "2026-02-01", max: "2026-02-28", want: "2026-02-15"},
		"time above max":        {variant: picker.VariantTime, value: "23:10", max: "18:00", want: "18:00", changed: true},
		"datetime date-only min": {variant: picker.VariantDateTime, value: "2026-03-04T08:00", min: "2026-03-05", want: "2026-03-05T00:00", changed: true},
		"range endpoints": {
			variant: picker.VariantDateRange,
			value:   `{"start":"2026-02-20","end":"2026-03-04"}`,
			min:     "2026-03-01",
			want:    `{"start":"2026-03-01","end":"2026-03-04"}`,
			changed: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := picker.DefaultConfig(tc.variant)
			cfg.Min, cfg.Max = tc.min, tc.max
			c := Clamp{Variant: tc.variant, Config: cfg, Value: tc.value}
			res, err := c.Run()
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if res.Clamped != tc.want || res.Changed != tc.changed {
				t.Fatalf("got %q changed=%v, want %q changed=%v", res.Clamped, res.Changed, tc.want, tc.changed)
			}
		})
	}
}

func TestClampRejectsUnreadableValue(t *testing.T) {
	c := Clamp{Variant: picker.VariantDate, Config: picker.DefaultConfig(picker.VariantDate), Value: "tomorrow"}
	if _, err := c.Run(); err == nil {
		t.Fatal("want an error")
	}
}
