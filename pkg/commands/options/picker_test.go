package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/picker"
)

type fileConfig struct {
	attrs map[string]string
}

func (fileConfig) BasePath() string  { return "" }
func (fileConfig) RecentsLimit() int { return 10 }
func (f fileConfig) PickerConfig(v picker.Variant) (picker.Config, error) {
	return picker.ConfigFromAttributes(v, f.attrs)
}

func resolve(t *testing.T, cfg fileConfig, args ...string) (picker.Variant, picker.Config, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	o := &PickerOptions{}
	AddPickerArgs(cmd, o)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return o.Resolve(cfg)
}

func TestFlagsOverrideConfiguredAttributes(t *testing.T) {
	cfg := fileConfig{attrs: map[string]string{"locale": "de-DE", "week-start": "monday", "min": "2026-01-01"}}

	v, c, err := resolve(t, cfg, "--variant", "date-range", "--locale", "en-GB", "--attr", "allow-same-day=false")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v != picker.VariantDateRange {
		t.Fatalf("variant = %s", v)
	}
	if c.Locale != "en-GB" {
		t.Fatalf("locale = %s, want the flag", c.Locale)
	}
	if c.WeekStart != time.Monday || c.Min != "2026-01-01" {
		t.Fatalf("configured values lost: %+v", c)
	}
	if c.AllowSameDay {
		t.Fatal("--attr not applied")
	}
}

func TestUnsetFlagsKeepDefaults(t *testing.T) {
	_, c, err := resolve(t, fileConfig{}, "--variant", "time")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if c.Step != 1 || c.Seconds {
		t.Fatalf("unexpected config %+v", c)
	}

	_, c, err = resolve(t, fileConfig{}, "--variant", "time", "--step", "15", "--seconds")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if c.Step != 15 || !c.Seconds {
		t.Fatalf("flags not applied: %+v", c)
	}
}

func TestResolveRejects(t *testing.T) {
	if _, _, err := resolve(t, fileConfig{}, "--variant", "month"); err == nil {
		t.Fatal("want an error for an unknown variant")
	}
	if _, _, err := resolve(t, fileConfig{}, "--attr", "locale"); err == nil {
		t.Fatal("want an error for an attribute without a value")
	}
	if _, _, err := resolve(t, fileConfig{}, "--step", "-5", "--variant", "time"); err == nil {
		t.Fatal("want an error for a negative step")
	}
}
