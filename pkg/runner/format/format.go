// Package format provides the CLI runner that renders attribute values for
// display.
package format

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
)

// Format renders Value as a picker configured with Config would show it.
type Format struct {
	Variant picker.Variant
	Config  picker.Config
	Value   string
	Printer *printers.PrettyPrint
}

// Result holds the display forms of one value.
type Result struct {
	Value   string `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
	Field   string `json:"field" yaml:"field"`
}

// ErrUnreadable is returned for values that are not in attribute form.
var ErrUnreadable = errors.New("format: not an attribute value")

// Run formats without printing.
func (f *Format) Run() (Result, error) {
	c, err := picker.New(f.Variant, "cli", f.Config, picker.Deps{})
	if err != nil {
		return Result{}, err
	}
	c.SetAttribute(f.Value)
	if c.Attribute() == "" && strings.TrimSpace(f.Value) != "" {
		return Result{}, fmt.Errorf("%w: %q", ErrUnreadable, f.Value)
	}
	return Result{Value: c.Attribute(), Display: c.Display(), Field: c.FieldText()}, nil
}

func (f *Format) Do(_ context.Context) error {
	if f.Printer == nil {
		return errors.New("format: no printer")
	}
	res, err := f.Run()
	if err != nil {
		return err
	}
	return f.Printer.Fields(res, [][2]string{
		{"Value", res.Value},
		{"Display", res.Display},
		{"Field", res.Field},
	})
}
