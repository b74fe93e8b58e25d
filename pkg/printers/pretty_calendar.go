package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MonthGrid describes one printed month.
type MonthGrid struct {
	Month     temporal.Date
	WeekStart time.Weekday
	Today     temporal.Date
	Selected  span.Range[temporal.Date]
	Min, Max  string
}

// PrintMonth renders the month as a week grid. Selected days are bold,
// today is underlined and days outside min/max are faint.
func (pp *PrettyPrint) PrintMonth(g MonthGrid) {
	out := pp.out()
	first := g.Month.StartOfMonth()

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", first.Month, first.Year)
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	heads := make([]string, 7)
	for i := range heads {
		heads[i] = time.Weekday((int(g.WeekStart) + i) % 7).String()[0:2]
	}
	_, _ = color.New(color.Faint).Fprintln(out, strings.Join(heads, " "))

	// Pad out the start of the month.
	lead := LeadingBlanks(first.Weekday(), g.WeekStart)
	_, _ = fmt.Fprint(out, strings.Repeat("   ", lead))

	plain := color.New()
	faint := color.New(color.Faint, color.FgWhite)
	bold := color.New(color.Bold, color.FgHiWhite)

	col := lead
	days := temporal.DaysIn(first.Year, first.Month)
	for i := 0; i < days; i++ {
		d := first.AddDays(i)
		printer := plain
		switch {
		case outside(d, g.Min, g.Max):
			printer = faint
		case selected(g.Selected, d):
			printer = bold
		}
		if d == g.Today {
			printer = color.New(color.Underline)
			if selected(g.Selected, d) {
				printer = color.New(color.Underline, color.Bold)
			}
		}
		_, _ = printer.Fprintf(out, "%2d", d.Day)

		col++
		if col == 7 {
			col = 0
			_, _ = fmt.Fprint(out, "\n")
		} else {
			_, _ = fmt.Fprint(out, " ")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

// LeadingBlanks counts the empty cells before a month starting on first
// in a week that starts on weekStart.
func LeadingBlanks(first, weekStart time.Weekday) int {
	return (int(first) - int(weekStart) + 7) % 7
}

func outside(d temporal.Date, min, max string) bool {
	iso := d.String()
	if lo, ok := temporal.ParseISODate(dateBound(min)); ok && iso < lo.String() {
		return true
	}
	if hi, ok := temporal.ParseISODate(dateBound(max)); ok && iso > hi.String() {
		return true
	}
	return false
}

// dateBound trims a datetime bound to its date.
func dateBound(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func selected(r span.Range[temporal.Date], d temporal.Date) bool {
	switch {
	case r.Start != nil && r.End != nil:
		return !d.Before(*r.Start) && !d.After(*r.End)
	case r.Start != nil:
		return d == *r.Start
	case r.End != nil:
		return d == *r.End
	}
	return false
}
