// Package pick provides the CLI runner behind the interactive picker screen.
package pick

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/telemetry"
	teaui "tableflip.dev/tempo/pkg/tui/app"
	"tableflip.dev/tempo/pkg/tui/components/pickerview"
	"tableflip.dev/tempo/pkg/tui/theme"
)

// ErrNotTerminal is returned when stdout cannot host the picker screen.
var ErrNotTerminal = errors.New("pick: stdout is not a terminal")

// Field is one picker on the screen.
type Field struct {
	ID      picker.ComponentID
	Variant picker.Variant
	Config  picker.Config
	// Value seeds the committed value.
	Value string
}

// Pick shows Fields until the user quits, then prints what was committed.
type Pick struct {
	Fields  []Field
	Recents store.Recents
	Logger  telemetry.Logger
	Debug   bool
	Printer *printers.PrettyPrint
	// Terminal reports whether stdout is interactive. Defaults to isatty.
	Terminal func() bool
}

// Result is one committed value.
type Result struct {
	ID    picker.ComponentID `json:"id" yaml:"id"`
	Value string             `json:"value" yaml:"value"`
}

// ParseField reads "id:variant", or a bare variant used as its own id.
func ParseField(s string) (picker.ComponentID, string, error) {
	id, variant, ok := strings.Cut(s, ":")
	if !ok {
		variant = id
	}
	if id == "" || variant == "" {
		return "", "", fmt.Errorf("field %q: want id:variant", s)
	}
	return picker.ComponentID(id), variant, nil
}

func (p *Pick) terminal() bool {
	if p.Terminal != nil {
		return p.Terminal()
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Options builds the screen options.
func (p *Pick) Options() teaui.Options {
	opts := teaui.Options{
		Recents: p.Recents,
		Theme:   theme.Default(),
		Logger:  p.Logger,
		Debug:   p.Debug,
	}
	for _, f := range p.Fields {
		opts.Pickers = append(opts.Pickers, pickerview.Options{
			ID:      f.ID,
			Label:   string(f.ID),
			Variant: f.Variant,
			Config:  f.Config,
			Value:   f.Value,
		})
	}
	return opts
}

func (p *Pick) Do(ctx context.Context) error {
	if p.Printer == nil {
		return errors.New("pick: no printer")
	}
	if len(p.Fields) == 0 {
		return errors.New("pick: no fields")
	}
	if !p.terminal() {
		return ErrNotTerminal
	}
	values, err := teaui.Run(ctx, p.Options())
	if err != nil {
		return err
	}

	results := make([]Result, 0, len(values))
	for _, f := range p.Fields {
		results = append(results, Result{ID: f.ID, Value: values[f.ID]})
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		v := r.Value
		if v == "" {
			v = printers.Faint("(empty)")
		}
		rows = append(rows, []string{string(r.ID), v})
	}
	return p.Printer.Table(results, []string{"Picker", "Value"}, rows)
}
