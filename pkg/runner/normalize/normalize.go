// Package normalize provides the CLI runner for the range normalizer.
package normalize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Normalize applies the range policy of Config to Start and End. Either
// endpoint may be blank.
type Normalize struct {
	Variant picker.Variant
	Config  picker.Config
	Start   string
	End     string
	Printer *printers.PrettyPrint
}

// Result is the normalized range, or why it was rejected.
type Result struct {
	Start   string      `json:"start,omitempty" yaml:"start,omitempty"`
	End     string      `json:"end,omitempty" yaml:"end,omitempty"`
	Value   string      `json:"value" yaml:"value"`
	Swapped bool        `json:"swapped" yaml:"swapped"`
	Days    int         `json:"days,omitempty" yaml:"days,omitempty"`
	Reason  span.Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func (n *Normalize) policy() span.Policy {
	return span.Policy{
		AutoNormalize: n.Config.AutoNormalize,
		AllowPartial:  n.Config.AllowPartial,
		AllowSameDay:  n.Config.AllowSameDay,
	}
}

// Run normalizes without printing. A rejected range is reported in the
// result and as a *span.InvalidError.
func (n *Normalize) Run() (Result, error) {
	lo, hi := n.Config.Min, n.Config.Max
	switch n.Variant {
	case picker.VariantDateRange:
		res, err := run(n.Start, n.End, temporal.ParseISODate, temporal.Date.String, span.Ops[temporal.Date]{
			Compare: temporal.Date.Compare,
			Clamp:   func(d temporal.Date) temporal.Date { return temporal.ClampDate(d, lo, hi) },
		}, n.policy())
		if err == nil {
			r, _ := span.Decode(res.Value, temporal.ParseISODate)
			res.Days = span.Days(r)
		}
		return res, err
	case picker.VariantDateTimeRange:
		return run(n.Start, n.End, temporal.ParseISODateTime, temporal.DateTime.String, span.Ops[temporal.DateTime]{
			Compare: temporal.DateTime.Compare,
			Clamp:   func(dt temporal.DateTime) temporal.DateTime { return temporal.ClampDateTime(dt, lo, hi) },
			SameDay: temporal.DateTime.SameDay,
		}, n.policy())
	}
	return Result{}, fmt.Errorf("normalize: %s is not a range variant", n.Variant)
}

func run[T any](start, end string, parse func(string) (T, bool), format func(T) string, ops span.Ops[T], p span.Policy) (Result, error) {
	var r span.Range[T]
	for _, ep := range []struct {
		raw string
		dst **T
	}{{start, &r.Start}, {end, &r.End}} {
		raw := strings.TrimSpace(ep.raw)
		if raw == "" {
			continue
		}
		v, ok := parse(raw)
		if !ok {
			err := span.Invalid(span.ReasonParse, "%q", raw)
			return Result{Reason: err.Reason, Error: err.Error()}, err
		}
		*ep.dst = &v
	}

	out, err := span.Normalize(r, ops, p)
	if err != nil {
		res := Result{Error: err.Error()}
		var inv *span.InvalidError
		if errors.As(err, &inv) {
			res.Reason = inv.Reason
		}
		return res, err
	}
	res := Result{Value: span.Encode(out, format)}
	if out.Start != nil {
		res.Start = format(*out.Start)
	}
	if out.End != nil {
		res.End = format(*out.End)
	}
	res.Swapped = r.Complete() && ops.Compare(*r.Start, *r.End) > 0
	return res, nil
}

func (n *Normalize) Do(_ context.Context) error {
	if n.Printer == nil {
		return errors.New("normalize: no printer")
	}
	res, err := n.Run()
	if res.Reason == "" && err != nil {
		return err
	}
	rows := [][2]string{
		{"Start", res.Start},
		{"End", res.End},
		{"Value", res.Value},
	}
	if res.Swapped {
		rows = append(rows, [2]string{"Swapped", "true"})
	}
	if res.Days > 0 {
		rows = append(rows, [2]string{"Days", fmt.Sprint(res.Days)})
	}
	if res.Reason != "" {
		rows = append(rows, [2]string{"Error", printers.Invalid(res.Error)})
	}
	if perr := n.Printer.Fields(res, rows); perr != nil {
		return perr
	}
	return err
}
