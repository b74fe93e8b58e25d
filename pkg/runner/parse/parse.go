// Package parse provides the CLI runner that reads free-form text the way a
// picker field does.
package parse

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/telemetry"
)

// Parse types Text into a headless picker and presses enter.
type Parse struct {
	Variant picker.Variant
	Config  picker.Config
	Text    string
	Now     func() time.Time
	Logger  telemetry.Logger
	Printer *printers.PrettyPrint
}

// Result is what the picker made of the text.
type Result struct {
	Input   string         `json:"input" yaml:"input"`
	Variant picker.Variant `json:"variant" yaml:"variant"`
	Value   string         `json:"value" yaml:"value"`
	Display string         `json:"display" yaml:"display"`
	Reason  span.Reason    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Run parses without printing.
func (p *Parse) Run() (Result, error) {
	c, err := picker.New(p.Variant, "cli", p.Config, picker.Deps{Logger: p.Logger, Now: p.Now})
	if err != nil {
		return Result{}, err
	}
	var reason span.Reason
	c.On(func(ev picker.Event) {
		if inv, ok := ev.(picker.InvalidEvent); ok {
			reason = inv.Reason
		}
	})
	c.Type(p.Text)
	c.Enter()

	return Result{
		Input:   p.Text,
		Variant: p.Variant,
		Value:   c.Attribute(),
		Display: c.Display(),
		Reason:  reason,
		Error:   c.Error(),
	}, nil
}

// Do prints the result. Rejected text is reported as a *span.InvalidError
// after the result is printed.
func (p *Parse) Do(_ context.Context) error {
	if p.Printer == nil {
		return errors.New("parse: no printer")
	}
	res, err := p.Run()
	if err != nil {
		return err
	}
	rows := [][2]string{
		{"Input", res.Input},
		{"Value", res.Value},
		{"Display", res.Display},
	}
	if res.Reason != "" {
		rows = append(rows, [2]string{"Error", printers.Invalid(res.Error)})
	}
	if err := p.Printer.Fields(res, rows); err != nil {
		return err
	}
	if res.Reason != "" {
		return span.Invalid(res.Reason, "%q", res.Input)
	}
	return nil
}
