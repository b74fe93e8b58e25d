// Package cal provides the CLI runner that prints month grids.
package cal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Cal prints Months months starting at Month, highlighting Value.
type Cal struct {
	// Month is "YYYY-MM", any date the picker can parse, or empty for the
	// current month.
	Month   string
	Months  int
	Variant picker.Variant
	Config  picker.Config
	Value   string
	Now     func() time.Time
	Printer *printers.PrettyPrint
}

func (c *Cal) today() temporal.Date {
	if c.Now == nil {
		return temporal.DateOf(time.Now())
	}
	return temporal.DateOf(c.Now())
}

// First resolves the first month to print.
func (c *Cal) First() (temporal.Date, error) {
	raw := strings.TrimSpace(c.Month)
	if raw == "" {
		return c.today().StartOfMonth(), nil
	}
	if d, ok := temporal.ParseISODate(raw + "-01"); ok {
		return d, nil
	}
	if d, ok := temporal.ParseDateFreeform(raw, c.Config.Locale, nil); ok {
		return d.StartOfMonth(), nil
	}
	return temporal.Date{}, span.Invalid(span.ReasonParse, "month %q", c.Month)
}

// Selected decodes Value into the days to highlight.
func (c *Cal) Selected() (span.Range[temporal.Date], error) {
	if strings.TrimSpace(c.Value) == "" {
		return span.Range[temporal.Date]{}, nil
	}
	ctrl, err := picker.New(c.Variant, "cli", c.Config, picker.Deps{Now: c.Now})
	if err != nil {
		return span.Range[temporal.Date]{}, err
	}
	host, ok := ctrl.(picker.CalendarHost)
	if !ok {
		return span.Range[temporal.Date]{}, fmt.Errorf("cal: %s has no calendar", c.Variant)
	}
	ctrl.SetAttribute(c.Value)
	attrs := host.CalendarAttrs()
	if attrs.Selection == picker.SelectionRange {
		return span.Decode(attrs.Value, temporal.ParseISODate)
	}
	if d, ok := temporal.ParseISODate(attrs.Value); ok {
		return span.Of(d, d), nil
	}
	return span.Range[temporal.Date]{}, span.Invalid(span.ReasonParse, "%q", c.Value)
}

func (c *Cal) Do(_ context.Context) error {
	if c.Printer == nil {
		return errors.New("cal: no printer")
	}
	first, err := c.First()
	if err != nil {
		return err
	}
	sel, err := c.Selected()
	if err != nil {
		return err
	}
	n := c.Months
	if n < 1 {
		n = 1
	}
	c.Printer.NewLine()
	for i := 0; i < n; i++ {
		c.Printer.PrintMonth(printers.MonthGrid{
			Month:     first.AddMonths(i),
			WeekStart: c.Config.WeekStart,
			Today:     c.today(),
			Selected:  sel,
			Min:       c.Config.Min,
			Max:       c.Config.Max,
		})
	}
	return nil
}
