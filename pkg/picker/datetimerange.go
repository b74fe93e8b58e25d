package picker

import (
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Endpoint names one side of a range.
type Endpoint string

const (
	EndpointStart Endpoint = "start"
	EndpointEnd   Endpoint = "end"
)

// DateTimeRangePicker edits a start and end datetime. Each endpoint has its
// own time segments; ordering and the same-day policy apply to the combined
// timestamps.
type DateTimeRangePicker struct {
	rangePicker[temporal.DateTime]
}

// NewDateTimeRangePicker validates cfg and builds the picker.
func NewDateTimeRangePicker(id ComponentID, cfg Config, deps Deps) (*DateTimeRangePicker, error) {
	p, err := newPicker(id, VariantDateTimeRange, cfg, deps, DateTimeRangeCodec)
	if err != nil {
		return nil, err
	}
	single := DateTimeCodec(cfg, deps.cache())
	rp := &DateTimeRangePicker{rangePicker: rangePicker[temporal.DateTime]{picker: p}}
	rp.drafts = endpointDrafts[temporal.DateTime]{parse: single.Parse, empty: single.Empty}
	p.dismiss = rp.Close
	return rp, nil
}

// defaultTime is the time an endpoint takes when its date is picked first:
// the start of the day for the start, the last minute for the end.
func defaultTime(e Endpoint) temporal.Time {
	if e == EndpointEnd {
		return temporal.Clock(23, 59)
	}
	return temporal.Clock(0, 0)
}

// CalendarChange updates the endpoint dates from the calendar, keeping the
// times already chosen.
func (p *DateTimeRangePicker) CalendarChange(ev CalendarChange) bool {
	if ev.Mode != SelectionRange || !p.interactive() {
		return false
	}
	p.drafts.clear()
	dates := ev.Range()
	cur := p.engine.Pending()
	next := span.Range[temporal.DateTime]{
		Start: p.withDate(cur.Start, dates.Start, EndpointStart),
		End:   p.withDate(cur.End, dates.End, EndpointEnd),
	}
	if p.cfg.CloseOnSelect && next.Complete() {
		if p.engine.CommitValue(next, SourceCalendar) {
			p.Close(SourceCalendar)
		}
		return true
	}
	p.engine.Input(next, SourceCalendar)
	return true
}

func (p *DateTimeRangePicker) withDate(cur *temporal.DateTime, d *temporal.Date, e Endpoint) *temporal.DateTime {
	if d == nil {
		return nil
	}
	t := defaultTime(e)
	if cur != nil && !cur.Time.IsZero() {
		t = cur.Time
	}
	dt := withSeconds(temporal.NewDateTime(*d, t), p.cfg.Seconds)
	return &dt
}

// SetSegment replaces one time segment of an endpoint. An endpoint without
// a date attaches the time to today.
func (p *DateTimeRangePicker) SetSegment(e Endpoint, seg Segment, value int) bool {
	if !p.interactive() {
		return false
	}
	cur := p.engine.Pending()
	target := p.endpoint(cur, e)
	t, ok := setSegment(target.Time, seg, value, p.cfg.HourCycle, p.cfg.Seconds)
	if !ok {
		return false
	}
	p.engine.Input(p.replace(cur, e, temporal.NewDateTime(target.Date, t)), SourcePicker)
	return true
}

// Step moves an endpoint's time by delta step units, five times as far
// with shift, wrapping around midnight.
func (p *DateTimeRangePicker) Step(e Endpoint, delta int, shift bool) {
	if !p.interactive() {
		return
	}
	cur := p.engine.Pending()
	target := p.endpoint(cur, e)
	t := stepTime(target.Time, p.cfg.Step, delta, shift)
	p.engine.Input(p.replace(cur, e, temporal.NewDateTime(target.Date, t)), SourceKeyboardStep)
}

func (p *DateTimeRangePicker) endpoint(r span.Range[temporal.DateTime], e Endpoint) temporal.DateTime {
	v := r.Start
	if e == EndpointEnd {
		v = r.End
	}
	if v != nil {
		return *v
	}
	return temporal.NewDateTime(temporal.DateOf(p.deps.now()), defaultTime(e))
}

func (p *DateTimeRangePicker) replace(r span.Range[temporal.DateTime], e Endpoint, dt temporal.DateTime) span.Range[temporal.DateTime] {
	dt = withSeconds(dt, p.cfg.Seconds)
	if e == EndpointEnd {
		return r.WithEnd(&dt)
	}
	return r.WithStart(&dt)
}

// StartText is the start field text.
func (p *DateTimeRangePicker) StartText() string {
	return endpointText(p.drafts.start, p.drafts.hasStart, p.engine.Pending().Start, p.format)
}

// EndText is the end field text.
func (p *DateTimeRangePicker) EndText() string {
	return endpointText(p.drafts.end, p.drafts.hasEnd, p.engine.Pending().End, p.format)
}

// Display renders the committed range.
func (p *DateTimeRangePicker) Display() string {
	return displayRange(p.engine.Value(), p.format)
}

func (p *DateTimeRangePicker) format(dt temporal.DateTime) string {
	return displayDateTime(dt, p.cfg, p.deps.cache())
}

// CalendarAttrs describes the calendar for the pending endpoint dates.
func (p *DateTimeRangePicker) CalendarAttrs() CalendarAttrs {
	r := p.engine.Pending()
	var dates span.Range[temporal.Date]
	if r.Start != nil {
		d := r.Start.Date
		dates.Start = &d
	}
	if r.End != nil {
		d := r.End.Date
		dates.End = &d
	}
	return p.calendarAttrs(SelectionRange, span.Encode(dates, temporal.Date.String))
}
