package picker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/tempo/pkg/overlay"
	"tableflip.dev/tempo/pkg/temporal"
)

// Variant names one of the five picker shapes.
type Variant string

const (
	VariantDate          Variant = "date"
	VariantTime          Variant = "time"
	VariantDateTime      Variant = "datetime"
	VariantDateRange     Variant = "date-range"
	VariantDateTimeRange Variant = "datetime-range"
)

// Variants lists the known variants.
func Variants() []Variant {
	return []Variant{VariantDate, VariantTime, VariantDateTime, VariantDateRange, VariantDateTimeRange}
}

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown picker variant %q", s)
}

// IsRange reports whether the variant holds two endpoints.
func (v Variant) IsRange() bool {
	return v == VariantDateRange || v == VariantDateTimeRange
}

// HasTime reports whether the variant carries a time of day.
func (v Variant) HasTime() bool {
	return v == VariantTime || v == VariantDateTime || v == VariantDateTimeRange
}

// HasDate reports whether the variant carries a calendar date.
func (v Variant) HasDate() bool {
	return v != VariantTime
}

// Mode chooses between an always visible panel and an anchored overlay.
type Mode string

const (
	// ModePopover renders the panel in an overlay.
	ModePopover Mode = "popover"
	// ModeInline renders the panel in place and never attaches document
	// listeners.
	ModeInline Mode = "inline"
)

// HourCycle selects 12 or 24 hour display.
type HourCycle string

const (
	Hour24 HourCycle = "24h"
	Hour12 HourCycle = "12h"
)

// Config is the typed form of the picker attributes.
type Config struct {
	Mode          Mode
	CloseOnSelect bool
	Clearable     bool
	AllowPartial  bool
	AllowSameDay  bool
	AutoNormalize bool
	// Step is the minute granularity of time segments and keyboard steps.
	Step int
	// HourCycle applies to variants with a time of day.
	HourCycle HourCycle
	// Display applies to variants with a date.
	Display temporal.DisplayMode
	// Pattern is the custom display pattern.
	Pattern         string
	Min             string
	Max             string
	Locale          string
	WeekStart       time.Weekday
	Seconds         bool
	SheetBreakpoint float64
	Readonly        bool
	Disabled        bool
}

// DefaultConfig returns the defaults for a variant. Ranges stay open after a
// calendar pick; single values close on select.
func DefaultConfig(v Variant) Config {
	return Config{
		Mode:            ModePopover,
		CloseOnSelect:   !v.IsRange(),
		Clearable:       true,
		AllowPartial:    true,
		AllowSameDay:    true,
		AutoNormalize:   true,
		Step:            1,
		HourCycle:       Hour24,
		Display:         temporal.DisplayISO,
		Locale:          temporal.DefaultLocale,
		WeekStart:       time.Sunday,
		SheetBreakpoint: overlay.DefaultSheetBreakpoint,
	}
}

// Attribute names recognized by ConfigFromAttributes.
const (
	AttrMode            = "mode"
	AttrCloseOnSelect   = "close-on-select"
	AttrClearable       = "clearable"
	AttrAllowPartial    = "allow-partial"
	AttrAllowSameDay    = "allow-same-day"
	AttrAutoNormalize   = "auto-normalize"
	AttrStep            = "step"
	AttrFormat          = "format"
	AttrPattern         = "pattern"
	AttrMin             = "min"
	AttrMax             = "max"
	AttrLocale          = "locale"
	AttrWeekStart       = "week-start"
	AttrSeconds         = "seconds"
	AttrSheetBreakpoint = "sheet-breakpoint"
	AttrReadonly        = "readonly"
	AttrDisabled        = "disabled"
)

// AttributeNames lists every attribute ConfigFromAttributes reads.
func AttributeNames() []string {
	return []string{
		AttrMode, AttrCloseOnSelect, AttrClearable, AttrAllowPartial,
		AttrAllowSameDay, AttrAutoNormalize, AttrStep, AttrFormat, AttrPattern,
		AttrMin, AttrMax, AttrLocale, AttrWeekStart, AttrSeconds,
		AttrSheetBreakpoint, AttrReadonly, AttrDisabled,
	}
}

// ConfigFromAttributes reads string attributes over the variant defaults and
// validates the result. Unknown attributes are ignored.
func ConfigFromAttributes(v Variant, attrs map[string]string) (Config, error) {
	cfg := DefaultConfig(v)
	var errs []error
	boolAttr := func(name string, dst *bool) {
		raw, ok := attrs[name]
		if !ok {
			return
		}
		b, err := parseBoolAttr(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = b
	}

	if raw, ok := attrs[AttrMode]; ok {
		cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(raw)))
	}
	boolAttr(AttrCloseOnSelect, &cfg.CloseOnSelect)
	boolAttr(AttrClearable, &cfg.Clearable)
	boolAttr(AttrAllowPartial, &cfg.AllowPartial)
	boolAttr(AttrAllowSameDay, &cfg.AllowSameDay)
	boolAttr(AttrAutoNormalize, &cfg.AutoNormalize)
	boolAttr(AttrSeconds, &cfg.Seconds)
	boolAttr(AttrReadonly, &cfg.Readonly)
	boolAttr(AttrDisabled, &cfg.Disabled)

	if raw, ok := attrs[AttrStep]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", AttrStep, err))
		} else {
			cfg.Step = n
		}
	}
	if raw, ok := attrs[AttrFormat]; ok {
		f := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case f == string(Hour12) || f == string(Hour24):
			cfg.HourCycle = HourCycle(f)
		case temporal.DisplayMode(f).Valid():
			cfg.Display = temporal.DisplayMode(f)
		default:
			errs = append(errs, fmt.Errorf("%s: unknown format %q", AttrFormat, raw))
		}
	}
	if raw, ok := attrs[AttrPattern]; ok {
		cfg.Pattern = raw
	}
	if raw, ok := attrs[AttrMin]; ok {
		cfg.Min = strings.TrimSpace(raw)
	}
	if raw, ok := attrs[AttrMax]; ok {
		cfg.Max = strings.TrimSpace(raw)
	}
	if raw, ok := attrs[AttrLocale]; ok && strings.TrimSpace(raw) != "" {
		cfg.Locale = strings.TrimSpace(raw)
	}
	if raw, ok := attrs[AttrWeekStart]; ok {
		wd, err := ParseWeekday(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", AttrWeekStart, err))
		} else {
			cfg.WeekStart = wd
		}
	}
	if raw, ok := attrs[AttrSheetBreakpoint]; ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", AttrSheetBreakpoint, err))
		} else {
			cfg.SheetBreakpoint = f
		}
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate(v)
}

// Validate checks the config once, at construction.
func (c Config) Validate(v Variant) error {
	var errs []error
	switch c.Mode {
	case ModePopover, ModeInline:
	default:
		errs = append(errs, fmt.Errorf("mode must be inline or popover, got %q", c.Mode))
	}
	if c.Step < 1 || c.Step > temporal.MinutesPerDay {
		errs = append(errs, fmt.Errorf("step must be between 1 and %d minutes, got %d", temporal.MinutesPerDay, c.Step))
	}
	switch c.HourCycle {
	case Hour12, Hour24:
	default:
		errs = append(errs, fmt.Errorf("hour cycle must be 12h or 24h, got %q", c.HourCycle))
	}
	if !c.Display.Valid() {
		errs = append(errs, fmt.Errorf("display must be iso, locale or custom, got %q", c.Display))
	}
	if c.Display == temporal.DisplayCustom && strings.TrimSpace(c.Pattern) == "" && v.HasDate() {
		errs = append(errs, errors.New("custom display needs a pattern"))
	}
	if c.SheetBreakpoint < 0 {
		errs = append(errs, fmt.Errorf("sheet breakpoint must not be negative, got %v", c.SheetBreakpoint))
	}
	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		errs = append(errs, fmt.Errorf("week start out of range: %d", c.WeekStart))
	}
	return errors.Join(errs...)
}

// Inline reports whether the panel renders in place.
func (c Config) Inline() bool { return c.Mode == ModeInline }

// Attributes renders the config back to its string attributes.
func (c Config) Attributes(v Variant) map[string]string {
	attrs := map[string]string{
		AttrMode:          string(c.Mode),
		AttrCloseOnSelect: strconv.FormatBool(c.CloseOnSelect),
		AttrClearable:     strconv.FormatBool(c.Clearable),
		AttrLocale:        c.Locale,
		AttrWeekStart:     strings.ToLower(c.WeekStart.String()),
	}
	if v.IsRange() {
		attrs[AttrAllowPartial] = strconv.FormatBool(c.AllowPartial)
		attrs[AttrAllowSameDay] = strconv.FormatBool(c.AllowSameDay)
		attrs[AttrAutoNormalize] = strconv.FormatBool(c.AutoNormalize)
	}
	if v.HasTime() {
		attrs[AttrStep] = strconv.Itoa(c.Step)
		attrs[AttrSeconds] = strconv.FormatBool(c.Seconds)
		attrs[AttrFormat] = string(c.HourCycle)
	} else {
		attrs[AttrFormat] = string(c.Display)
	}
	if c.Pattern != "" {
		attrs[AttrPattern] = c.Pattern
	}
	if c.Min != "" {
		attrs[AttrMin] = c.Min
	}
	if c.Max != "" {
		attrs[AttrMax] = c.Max
	}
	if c.SheetBreakpoint != overlay.DefaultSheetBreakpoint {
		attrs[AttrSheetBreakpoint] = strconv.FormatFloat(c.SheetBreakpoint, 'f', -1, 64)
	}
	if c.Readonly {
		attrs[AttrReadonly] = "true"
	}
	if c.Disabled {
		attrs[AttrDisabled] = "true"
	}
	return attrs
}

// parseBoolAttr accepts HTML style booleans: a present but empty attribute
// is true.
func parseBoolAttr(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", raw)
}

// ParseWeekday reads a weekday name, a three letter prefix, or 0-6 with 0
// as Sunday.
func ParseWeekday(raw string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday out of range: %d", n)
		}
		return time.Weekday(n), nil
	}
	if len(s) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), s) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", raw)
}
