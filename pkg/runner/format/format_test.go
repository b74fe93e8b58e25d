package format

import (
	"errors"
	"testing"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/temporal"
)

func TestFormatDisplay(t *testing.T) {
	tests := map[string]struct {
		variant picker.Variant
		mutate  func(*picker.Config)
		value   string
		want    string
	}{
		"iso": {variant: picker.VariantDate, value: "2026-03-05", want: "2026-03-05"},
		"locale": {
			variant: picker.VariantDate,
			mutate:  func(c *picker.Config) { c.Display, c.Locale = temporal.DisplayLocale, "de-DE" },
			value:   "2026-03-05",
			want:    "5. März 2026",
		},
		"custom": {
			variant: picker.VariantDate,
			mutate:  func(c *picker.Config) { c.Display, c.Pattern = temporal.DisplayCustom, "YYYY/MM/DD" },
			value:   "2026-03-05",
			want:    "2026/03/05",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := picker.DefaultConfig(tc.variant)
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}
			f := Format{Variant: tc.variant, Config: cfg, Value: tc.value}
			res, err := f.Run()
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if res.Display != tc.want {
				t.Fatalf("display = %q, want %q", res.Display, tc.want)
			}
			if res.Value != tc.value {
				t.Fatalf("value = %q, want %q", res.Value, tc.value)
			}
		})
	}
}

func TestFormatRejectsTypedText(t *testing.T) {
	f := Format{Variant: picker.VariantDate, Config: picker.DefaultConfig(picker.VariantDate), Value: "March 5"}
	if _, err := f.Run(); !errors.Is(err, ErrUnreadable) {
		t.Fatalf("want ErrUnreadable, got %v", err)
	}
}
