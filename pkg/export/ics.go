// Package export renders committed picker values as iCalendar events.
package export

import (
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"tableflip.dev/tempo/pkg/picker"
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// ProductID identifies tempo in exported calendars.
const ProductID = "-//tableflip.dev//tempo//EN"

const floatingLayout = "20060102T150405"

// ErrNoDate is returned for values that carry no calendar date.
var ErrNoDate = errors.New("export: value has no date")

// Options controls the exported event.
type Options struct {
	Summary     string
	Description string
	// Location pins timed events to a zone. Nil exports floating local
	// times, which is what a picker value means.
	Location *time.Location
	// Now stamps DTSTAMP. Defaults to time.Now.
	Now func() time.Time
	// UID overrides the generated event id.
	UID string
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) uid() string {
	if o.UID != "" {
		return o.UID
	}
	return uuid.New().String() + "@tempo"
}

// Calendar renders the attribute value of variant v as a one event
// calendar. Dates become all-day events with an exclusive end; datetimes
// become timed events. Ranges must be complete.
func Calendar(v picker.Variant, attr string, opts Options) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	var err error
	switch v {
	case picker.VariantDate:
		d, ok := temporal.ParseISODate(attr)
		if !ok {
			return nil, fmt.Errorf("export: date %q: %w", attr, span.Invalid(span.ReasonParse, "not an ISO date"))
		}
		allDay(cal, d, d, opts)
	case picker.VariantDateRange:
		var r span.Range[temporal.Date]
		if r, err = complete(attr, temporal.ParseISODate); err == nil {
			allDay(cal, *r.Start, *r.End, opts)
		}
	case picker.VariantDateTime:
		dt, ok := temporal.ParseISODateTime(attr)
		if !ok {
			return nil, fmt.Errorf("export: datetime %q: %w", attr, span.Invalid(span.ReasonParse, "not an ISO datetime"))
		}
		timed(cal, dt, nil, opts)
	case picker.VariantDateTimeRange:
		var r span.Range[temporal.DateTime]
		if r, err = complete(attr, temporal.ParseISODateTime); err == nil {
			timed(cal, *r.Start, r.End, opts)
		}
	case picker.VariantTime:
		return nil, ErrNoDate
	default:
		return nil, fmt.Errorf("export: unknown variant %q", v)
	}
	if err != nil {
		return nil, err
	}
	return cal, nil
}

// Serialize renders the calendar text for variant v's attribute value.
func Serialize(v picker.Variant, attr string, opts Options) (string, error) {
	cal, err := Calendar(v, attr, opts)
	if err != nil {
		return "", err
	}
	return cal.Serialize(), nil
}

func complete[T any](attr string, parse func(string) (T, bool)) (span.Range[T], error) {
	r, err := span.Decode(attr, parse)
	if err != nil {
		return r, fmt.Errorf("export: %w", err)
	}
	if !r.Complete() {
		return r, fmt.Errorf("export: %w", span.Invalid(span.ReasonPartial, "range needs a start and an end"))
	}
	return r, nil
}

func newEvent(cal *ical.Calendar, opts Options) *ical.VEvent {
	ev := cal.AddEvent(opts.uid())
	ev.SetDtStampTime(opts.now())
	if opts.Summary != "" {
		ev.SetSummary(opts.Summary)
	}
	if opts.Description != "" {
		ev.SetDescription(opts.Description)
	}
	return ev
}

// allDay spans start..end inclusive, so DTEND is the day after end.
func allDay(cal *ical.Calendar, start, end temporal.Date, opts Options) {
	ev := newEvent(cal, opts)
	ev.SetAllDayStartAt(start.Time())
	ev.SetAllDayEndAt(end.AddDays(1).Time())
}

func timed(cal *ical.Calendar, start temporal.DateTime, end *temporal.DateTime, opts Options) {
	ev := newEvent(cal, opts)
	setTime(ev, ical.ComponentPropertyDtStart, start, opts.Location)
	if end != nil {
		setTime(ev, ical.ComponentPropertyDtEnd, *end, opts.Location)
	}
}

func setTime(ev *ical.VEvent, prop ical.ComponentProperty, dt temporal.DateTime, loc *time.Location) {
	if loc == nil {
		ev.SetProperty(prop, dt.Instant().Format(floatingLayout))
		return
	}
	wall := dt.Instant()
	at := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, loc)
	if prop == ical.ComponentPropertyDtEnd {
		ev.SetEndAt(at)
		return
	}
	ev.SetStartAt(at)
}
