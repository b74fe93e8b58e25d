package picker

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Selection is the calendar selection mode.
type Selection string

const (
	SelectionSingle Selection = "single"
	SelectionRange  Selection = "range"
)

// CalendarAttrs are the attributes a picker hands to its calendar grid.
type CalendarAttrs struct {
	Selection Selection
	// Value is an ISO date in single mode and {"start","end"} JSON in range
	// mode.
	Value     string
	Min       string
	Max       string
	Locale    string
	WeekStart time.Weekday
	Size      string
	Variant   string
	Readonly  bool
	Disabled  bool
}

// Attributes renders the attribute map. Absent values are omitted and
// booleans are present only when true.
func (a CalendarAttrs) Attributes() map[string]string {
	attrs := map[string]string{
		"selection":  string(a.Selection),
		"week-start": strconv.Itoa(int(a.WeekStart)),
	}
	set := func(k, v string) {
		if v != "" {
			attrs[k] = v
		}
	}
	set("value", a.Value)
	set("min", dateBound(a.Min))
	set("max", dateBound(a.Max))
	set("locale", a.Locale)
	set("size", a.Size)
	set("variant", a.Variant)
	if a.Readonly {
		attrs["readonly"] = ""
	}
	if a.Disabled {
		attrs["disabled"] = ""
	}
	return attrs
}

// dateBound trims a datetime bound down to the date the calendar
// understands.
func dateBound(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}

// CalendarSelect is the calendar's select event in single mode.
type CalendarSelect struct {
	Value string
}

// CalendarChange is the calendar's change event in range mode. Start and
// End are ISO dates or empty.
type CalendarChange struct {
	Mode  Selection
	Start string
	End   string
}

// Range decodes the endpoints. Endpoints that are not ISO dates are absent.
func (c CalendarChange) Range() span.Range[temporal.Date] {
	var r span.Range[temporal.Date]
	if d, ok := temporal.ParseISODate(c.Start); ok {
		r.Start = &d
	}
	if d, ok := temporal.ParseISODate(c.End); ok {
		r.End = &d
	}
	return r
}

func (p *picker[T]) calendarAttrs(sel Selection, value string) CalendarAttrs {
	return CalendarAttrs{
		Selection: sel,
		Value:     value,
		Min:       p.cfg.Min,
		Max:       p.cfg.Max,
		Locale:    p.cfg.Locale,
		WeekStart: p.cfg.WeekStart,
		Readonly:  p.cfg.Readonly,
		Disabled:  p.cfg.Disabled,
	}
}
