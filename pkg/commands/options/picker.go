package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/store"
)

// PickerOptions are the picker attributes settable from flags. Flags that
// were not given leave the configured value alone.
type PickerOptions struct {
	Variant   string
	Locale    string
	Min       string
	Max       string
	Step      int
	Format    string
	Pattern   string
	WeekStart string
	Seconds   bool
	// Attrs are raw name=value attributes, applied last.
	Attrs []string

	cmd *cobra.Command
}

func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	o.cmd = cmd
	names := make([]string, 0, len(picker.Variants()))
	for _, v := range picker.Variants() {
		names = append(names, string(v))
	}
	cmd.Flags().StringVarP(&o.Variant, "variant", "v", string(picker.VariantDate),
		fmt.Sprintf("Picker variant, one of %s.", strings.Join(names, ", ")))
	cmd.Flags().StringVar(&o.Locale, "locale", "",
		`Locale for parsing and display, example: --locale="en-GB".`)
	cmd.Flags().StringVar(&o.Min, "min", "",
		`Lower bound in attribute form, example: --min="2026-01-01".`)
	cmd.Flags().StringVar(&o.Max, "max", "",
		`Upper bound in attribute form, example: --max="2026-12-31T18:00".`)
	cmd.Flags().IntVar(&o.Step, "step", 0,
		"Minute step of time segments and keyboard steps.")
	cmd.Flags().StringVar(&o.Format, "format", "",
		"Display format: 12h or 24h for times, iso, locale or custom for dates.")
	cmd.Flags().StringVar(&o.Pattern, "pattern", "",
		`Custom date display pattern, example: --pattern="DD.MM.YYYY".`)
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		"First day of the calendar week, example: --week-start=monday.")
	cmd.Flags().BoolVar(&o.Seconds, "seconds", false,
		"Include seconds in times.")
	cmd.Flags().StringArrayVar(&o.Attrs, "attr", nil,
		`Any picker attribute as name=value, example: --attr allow-same-day=false.`)
}

// Resolve builds the picker config for --variant.
func (o *PickerOptions) Resolve(cfg store.Config) (picker.Variant, picker.Config, error) {
	return o.ResolveVariant(cfg, o.Variant)
}

// ResolveVariant builds the config of one variant: configured defaults,
// then flags, then --attr values.
func (o *PickerOptions) ResolveVariant(cfg store.Config, variant string) (picker.Variant, picker.Config, error) {
	v, err := picker.ParseVariant(variant)
	if err != nil {
		return "", picker.Config{}, err
	}
	base := picker.DefaultConfig(v)
	if cfg != nil {
		if base, err = cfg.PickerConfig(v); err != nil {
			return "", picker.Config{}, err
		}
	}
	attrs := base.Attributes(v)

	set := func(flag, attr, value string) {
		if value != "" || o.changed(flag) {
			attrs[attr] = value
		}
	}
	set("locale", picker.AttrLocale, o.Locale)
	set("min", picker.AttrMin, o.Min)
	set("max", picker.AttrMax, o.Max)
	set("format", picker.AttrFormat, o.Format)
	set("pattern", picker.AttrPattern, o.Pattern)
	set("week-start", picker.AttrWeekStart, o.WeekStart)
	if o.Step > 0 || o.changed("step") {
		attrs[picker.AttrStep] = strconv.Itoa(o.Step)
	}
	if o.Seconds || o.changed("seconds") {
		attrs[picker.AttrSeconds] = strconv.FormatBool(o.Seconds)
	}
	for _, kv := range o.Attrs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return "", picker.Config{}, fmt.Errorf("attribute %q: want name=value", kv)
		}
		attrs[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	c, err := picker.ConfigFromAttributes(v, attrs)
	if err != nil {
		return "", picker.Config{}, err
	}
	return v, c, nil
}

func (o *PickerOptions) changed(flag string) bool {
	return o.cmd != nil && o.cmd.Flags().Changed(flag)
}
