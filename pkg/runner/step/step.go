// Package step provides the CLI runner for keyboard time stepping.
package step

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
)

// Step moves Value by Delta steps of Config.Step minutes, five times as far
// with Shift, the way arrow keys do.
type Step struct {
	Variant picker.Variant
	Config  picker.Config
	Value   string
	Delta   int
	Shift   bool
	Now     func() time.Time
	Printer *printers.PrettyPrint
}

// Result holds the stepped value.
type Result struct {
	Value   string `json:"value" yaml:"value"`
	Minutes int    `json:"minutes" yaml:"minutes"`
	Stepped string `json:"stepped" yaml:"stepped"`
	Display string `json:"display" yaml:"display"`
}

// Run steps without printing.
func (s *Step) Run() (Result, error) {
	c, err := picker.New(s.Variant, "cli", s.Config, picker.Deps{Now: s.Now})
	if err != nil {
		return Result{}, err
	}
	stepper, ok := c.(picker.Stepper)
	if !ok {
		return Result{}, fmt.Errorf("step: %s has no time to step", s.Variant)
	}
	c.SetAttribute(s.Value)
	stepper.Step(s.Delta, s.Shift)
	c.Enter()

	minutes := s.Delta * s.Config.Step
	if s.Shift {
		minutes *= picker.StepMultiplier
	}
	return Result{Value: s.Value, Minutes: minutes, Stepped: c.Attribute(), Display: c.Display()}, nil
}

func (s *Step) Do(_ context.Context) error {
	if s.Printer == nil {
		return errors.New("step: no printer")
	}
	res, err := s.Run()
	if err != nil {
		return err
	}
	return s.Printer.Fields(res, [][2]string{
		{"Value", res.Value},
		{"Minutes", fmt.Sprintf("%+d", res.Minutes)},
		{"Stepped", res.Stepped},
		{"Display", res.Display},
	})
}
