package picker

import (
	"tableflip.dev/tempo/pkg/temporal"
)

// DateTimePicker edits a date and a time of day as one value. The two parts
// are chosen independently, combined, then clamped on the combined
// timestamp.
type DateTimePicker struct {
	*picker[temporal.DateTime]
}

// NewDateTimePicker validates cfg and builds the picker.
func NewDateTimePicker(id ComponentID, cfg Config, deps Deps) (*DateTimePicker, error) {
	p, err := newPicker(id, VariantDateTime, cfg, deps, DateTimeCodec)
	if err != nil {
		return nil, err
	}
	return &DateTimePicker{picker: p}, nil
}

// SelectDate replaces the date part from the calendar, keeping the pending
// time. Close-on-select commits.
func (p *DateTimePicker) SelectDate(ev CalendarSelect) bool {
	d, ok := temporal.ParseISODate(ev.Value)
	if !ok {
		return false
	}
	p.pick(p.combine(d, p.engine.Pending().Time))
	return true
}

// SetSegment replaces one time segment. Without a pending date the time
// attaches to today.
func (p *DateTimePicker) SetSegment(seg Segment, value int) bool {
	if !p.interactive() {
		return false
	}
	cur := p.engine.Pending()
	t, ok := setSegment(cur.Time, seg, value, p.cfg.HourCycle, p.cfg.Seconds)
	if !ok {
		return false
	}
	p.engine.Input(p.combine(cur.Date, t), SourcePicker)
	return true
}

// Step moves the time part by delta step units, five times as far with
// shift. The time wraps around midnight; the date does not roll over.
func (p *DateTimePicker) Step(delta int, shift bool) {
	if !p.interactive() {
		return
	}
	cur := p.engine.Pending()
	t := stepTime(cur.Time, p.cfg.Step, delta, shift)
	p.engine.Input(p.combine(cur.Date, t), SourceKeyboardStep)
}

// Now commits the current date and time.
func (p *DateTimePicker) Now() bool {
	if !p.interactive() {
		return false
	}
	return p.engine.CommitValue(withSeconds(temporal.DateTimeOf(p.deps.now()), p.cfg.Seconds), SourceNow)
}

// Display renders the committed value.
func (p *DateTimePicker) Display() string {
	return p.format(p.engine.Value())
}

// FieldText is the draft while typing, the formatted pending value
// otherwise.
func (p *DateTimePicker) FieldText() string {
	if draft, ok := p.engine.Draft(); ok {
		return draft
	}
	return p.format(p.engine.Pending())
}

func (p *DateTimePicker) format(dt temporal.DateTime) string {
	return displayDateTime(dt, p.cfg, p.deps.cache())
}

// CalendarAttrs describes the calendar for the pending date.
func (p *DateTimePicker) CalendarAttrs() CalendarAttrs {
	return p.calendarAttrs(SelectionSingle, p.engine.Pending().Date.String())
}

// HourOptions lists the hour select entries. Hours are limited by min and
// max only on the bound's own date.
func (p *DateTimePicker) HourOptions() []Option {
	pending := p.engine.Pending()
	_, pm := pending.Time.Meridiem()
	lo, hi := p.boundTimes(pending.Date)
	return hourOptions(p.cfg.HourCycle, pm, lo, hi)
}

// MinuteOptions lists the minute select entries for the pending hour.
func (p *DateTimePicker) MinuteOptions() []Option {
	pending := p.engine.Pending()
	lo, hi := p.boundTimes(pending.Date)
	return minuteOptions(pending.Time.Hour, p.cfg.Step, lo, hi)
}

// boundTimes returns the time part of min and max when d is the bound's
// date, and "" otherwise.
func (p *DateTimePicker) boundTimes(d temporal.Date) (lo, hi string) {
	if d.IsZero() {
		return "", ""
	}
	if b, ok := temporal.ParseISODateTime(p.cfg.Min); ok && b.Date == d {
		lo = temporal.FormatTime(b.Time, true)
	}
	if b, ok := temporal.ParseISODateTime(p.cfg.Max); ok && b.Date == d {
		hi = temporal.FormatTime(b.Time, true)
	}
	return lo, hi
}

func (p *DateTimePicker) combine(d temporal.Date, t temporal.Time) temporal.DateTime {
	if d.IsZero() {
		d = temporal.DateOf(p.deps.now())
	}
	return withSeconds(temporal.NewDateTime(d, t), p.cfg.Seconds)
}

// displayDateTime renders the date in the display mode and the time on
// the configured clock.
func displayDateTime(dt temporal.DateTime, cfg Config, cache *temporal.Cache) string {
	if dt.IsZero() {
		return ""
	}
	if cfg.Display == temporal.DisplayISO && cfg.HourCycle == Hour24 {
		return formatDateTime(dt, cfg)
	}
	date := temporal.FormatDate(dt.Date.String(), cfg.Locale, cfg.Display, cfg.Pattern, cache)
	return date + " " + formatClock(dt.Time, cfg, cache)
}
