// Package clamp provides the CLI runner that pulls a value into its bounds.
package clamp

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Clamp corrects Value into Config's min and max.
type Clamp struct {
	Variant picker.Variant
	Config  picker.Config
	Value   string
	Printer *printers.PrettyPrint
}

// Result holds the corrected value.
type Result struct {
	Value   string `json:"value" yaml:"value"`
	Min     string `json:"min,omitempty" yaml:"min,omitempty"`
	Max     string `json:"max,omitempty" yaml:"max,omitempty"`
	Clamped string `json:"clamped" yaml:"clamped"`
	Changed bool   `json:"changed" yaml:"changed"`
}

// Run clamps without printing. Ranges are clamped endpoint by endpoint.
func (c *Clamp) Run() (Result, error) {
	res := Result{Value: c.Value, Min: c.Config.Min, Max: c.Config.Max}
	lo, hi := c.Config.Min, c.Config.Max

	var (
		out string
		ok  bool
	)
	switch c.Variant {
	case picker.VariantDate:
		out, ok = single(c.Value, temporal.ParseISODate, func(d temporal.Date) temporal.Date {
			return temporal.ClampDate(d, lo, hi)
		}, temporal.Date.String)
	case picker.VariantTime:
		out, ok = single(c.Value, temporal.ParseISOTime, func(t temporal.Time) temporal.Time {
			return temporal.ClampTime(t, lo, hi)
		}, temporal.Time.String)
	case picker.VariantDateTime:
		out, ok = single(c.Value, temporal.ParseISODateTime, func(dt temporal.DateTime) temporal.DateTime {
			return temporal.ClampDateTime(dt, lo, hi)
		}, temporal.DateTime.String)
	case picker.VariantDateRange:
		out, ok = ranged(c.Value, temporal.ParseISODate, func(d temporal.Date) temporal.Date {
			return temporal.ClampDate(d, lo, hi)
		}, temporal.Date.String)
	case picker.VariantDateTimeRange:
		out, ok = ranged(c.Value, temporal.ParseISODateTime, func(dt temporal.DateTime) temporal.DateTime {
			return temporal.ClampDateTime(dt, lo, hi)
		}, temporal.DateTime.String)
	default:
		return res, fmt.Errorf("clamp: unknown variant %q", c.Variant)
	}
	if !ok {
		return res, span.Invalid(span.ReasonParse, "%s %q", c.Variant, c.Value)
	}
	res.Clamped = out
	res.Changed = out != c.Value
	return res, nil
}

func single[T any](raw string, parse func(string) (T, bool), clamp func(T) T, format func(T) string) (string, bool) {
	v, ok := parse(raw)
	if !ok {
		return "", false
	}
	return format(clamp(v)), true
}

func ranged[T any](raw string, parse func(string) (T, bool), clamp func(T) T, format func(T) string) (string, bool) {
	r, err := span.Decode(raw, parse)
	if err != nil {
		return "", false
	}
	if r.Start != nil {
		v := clamp(*r.Start)
		r.Start = &v
	}
	if r.End != nil {
		v := clamp(*r.End)
		r.End = &v
	}
	return span.Encode(r, format), true
}

func (c *Clamp) Do(_ context.Context) error {
	if c.Printer == nil {
		return errors.New("clamp: no printer")
	}
	res, err := c.Run()
	if err != nil {
		return err
	}
	return c.Printer.Fields(res, [][2]string{
		{"Value", res.Value},
		{"Min", res.Min},
		{"Max", res.Max},
		{"Clamped", res.Clamped},
		{"Changed", strconv.FormatBool(res.Changed)},
	})
}
