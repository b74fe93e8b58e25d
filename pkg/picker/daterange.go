package picker

import (
	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// rangeSep joins endpoints for display.
const rangeSep = " – "

// endpointDrafts holds text typed into the start and end fields until
// commit.
type endpointDrafts[T any] struct {
	parse    func(string) (T, error)
	empty    func(T) bool
	start    string
	end      string
	hasStart bool
	hasEnd   bool
}

func (d *endpointDrafts[T]) clear() {
	d.start, d.end = "", ""
	d.hasStart, d.hasEnd = false, false
}

func (d *endpointDrafts[T]) typed() bool { return d.hasStart || d.hasEnd }

// apply parses the drafts into r. On failure it returns the offending text.
func (d *endpointDrafts[T]) apply(r span.Range[T]) (span.Range[T], string, error) {
	out := r.Clone()
	if d.hasStart {
		v, err := d.parse(d.start)
		if err != nil {
			return r, d.start, err
		}
		out.Start = d.ptr(v)
	}
	if d.hasEnd {
		v, err := d.parse(d.end)
		if err != nil {
			return r, d.end, err
		}
		out.End = d.ptr(v)
	}
	return out, "", nil
}

func (d *endpointDrafts[T]) ptr(v T) *T {
	if d.empty(v) {
		return nil
	}
	return &v
}

// rangePicker adds endpoint typing and draft aware commits to a range
// engine.
type rangePicker[T any] struct {
	*picker[span.Range[T]]
	drafts endpointDrafts[T]
}

// TypeStart records text typed into the start field.
func (p *rangePicker[T]) TypeStart(raw string) { p.typeEndpoint(raw, true) }

// TypeEnd records text typed into the end field.
func (p *rangePicker[T]) TypeEnd(raw string) { p.typeEndpoint(raw, false) }

func (p *rangePicker[T]) typeEndpoint(raw string, start bool) {
	if !p.interactive() {
		return
	}
	if start {
		p.drafts.start, p.drafts.hasStart = raw, true
	} else {
		p.drafts.end, p.drafts.hasEnd = raw, true
	}
	v, err := p.drafts.parse(raw)
	if err != nil {
		p.engine.Emit(InputEvent{
			Component: p.ID(),
			Source:    SourceTyping,
			Value:     p.engine.Codec().Format(p.engine.Pending()),
			Raw:       raw,
		})
		return
	}
	r := p.engine.Pending()
	if start {
		r = r.WithStart(p.drafts.ptr(v))
	} else {
		r = r.WithEnd(p.drafts.ptr(v))
	}
	p.engine.Input(r, SourceTyping)
}

// commit folds endpoint drafts into pending and commits.
func (p *rangePicker[T]) commit(src Source) bool {
	if !p.interactive() {
		return false
	}
	if !p.drafts.typed() {
		return p.engine.Commit(src)
	}
	r, bad, err := p.drafts.apply(p.engine.Pending())
	if err != nil {
		p.engine.Reject(bad, reasonOf(err), src)
		return false
	}
	p.drafts.clear()
	return p.engine.CommitValue(r, src)
}

// Enter commits and closes on success.
func (p *rangePicker[T]) Enter() bool { return p.commitAndCloseRange(SourceEnter) }

// Apply commits and closes on success. Reversed endpoints are swapped when
// auto-normalize is on.
func (p *rangePicker[T]) Apply() bool { return p.commitAndCloseRange(SourceApply) }

// Blur commits without touching the overlay.
func (p *rangePicker[T]) Blur() bool { return p.commit(SourceBlur) }

// Cancel discards pending and drafts and closes the overlay.
func (p *rangePicker[T]) Cancel() {
	p.drafts.clear()
	p.picker.Cancel()
}

// Open discards stale drafts and opens the overlay.
func (p *rangePicker[T]) Open(src Source) bool {
	if p.overlay == nil || p.overlay.IsOpen() {
		return false
	}
	p.drafts.clear()
	return p.picker.Open(src)
}

// Close closes the overlay; escape and cancel also drop drafts.
func (p *rangePicker[T]) Close(src Source) bool {
	if src.discards() {
		p.drafts.clear()
	}
	return p.picker.Close(src)
}

// Toggle opens a closed overlay and closes an open one.
func (p *rangePicker[T]) Toggle() bool {
	if p.IsOpen() {
		return p.Close(SourceToggle)
	}
	return p.Open(SourceToggle)
}

// Clear commits the empty range and drops drafts.
func (p *rangePicker[T]) Clear() bool {
	if !p.cfg.Clearable || !p.interactive() {
		return false
	}
	p.drafts.clear()
	return p.engine.CommitValue(span.Range[T]{}, SourceClear)
}

// SetAttribute resynchronizes from an external write and drops drafts.
func (p *rangePicker[T]) SetAttribute(raw string) {
	p.drafts.clear()
	p.picker.SetAttribute(raw)
}

// SelectRecent loads a recent range into pending and drops drafts.
func (p *rangePicker[T]) SelectRecent(attr string) bool {
	if !p.picker.SelectRecent(attr) {
		return false
	}
	p.drafts.clear()
	return true
}

func (p *rangePicker[T]) commitAndCloseRange(src Source) bool {
	if !p.commit(src) {
		return false
	}
	p.Close(src)
	return true
}

// endpointText is the draft for an endpoint while typing, else formatted.
func endpointText[T any](draft string, has bool, v *T, format func(T) string) string {
	if has {
		return draft
	}
	if v == nil {
		return ""
	}
	return format(*v)
}

// DateRangePicker edits a start and end date.
type DateRangePicker struct {
	rangePicker[temporal.Date]
}

// NewDateRangePicker validates cfg and builds the picker.
func NewDateRangePicker(id ComponentID, cfg Config, deps Deps) (*DateRangePicker, error) {
	p, err := newPicker(id, VariantDateRange, cfg, deps, DateRangeCodec)
	if err != nil {
		return nil, err
	}
	single := DateCodec(cfg, deps.cache())
	rp := &DateRangePicker{rangePicker: rangePicker[temporal.Date]{picker: p}}
	rp.drafts = endpointDrafts[temporal.Date]{parse: single.Parse, empty: single.Empty}
	p.dismiss = rp.Close
	return rp, nil
}

// CalendarChange handles the calendar's range change event.
func (p *DateRangePicker) CalendarChange(ev CalendarChange) bool {
	if ev.Mode != SelectionRange || !p.interactive() {
		return false
	}
	p.drafts.clear()
	r := ev.Range()
	if p.cfg.CloseOnSelect && r.Complete() {
		if p.engine.CommitValue(r, SourceCalendar) {
			p.Close(SourceCalendar)
		}
		return true
	}
	p.engine.Input(r, SourceCalendar)
	return true
}

// Preset loads a preset range into pending. Nothing is committed.
func (p *DateRangePicker) Preset(id string) error {
	if !p.interactive() {
		return nil
	}
	r, err := PresetRange(id, temporal.DateOf(p.deps.now()), p.cfg.WeekStart)
	if err != nil {
		return err
	}
	p.drafts.clear()
	p.engine.Input(r, SourcePreset)
	return nil
}

// Days counts the days of the pending range.
func (p *DateRangePicker) Days() int { return span.Days(p.engine.Pending()) }

// StartText is the start field text.
func (p *DateRangePicker) StartText() string {
	return endpointText(p.drafts.start, p.drafts.hasStart, p.engine.Pending().Start, p.format)
}

// EndText is the end field text.
func (p *DateRangePicker) EndText() string {
	return endpointText(p.drafts.end, p.drafts.hasEnd, p.engine.Pending().End, p.format)
}

// Display renders the committed range.
func (p *DateRangePicker) Display() string {
	return displayRange(p.engine.Value(), p.format)
}

func (p *DateRangePicker) format(d temporal.Date) string {
	return temporal.FormatDate(d.String(), p.cfg.Locale, p.cfg.Display, p.cfg.Pattern, p.deps.cache())
}

// CalendarAttrs describes the calendar for the pending range.
func (p *DateRangePicker) CalendarAttrs() CalendarAttrs {
	return p.calendarAttrs(SelectionRange, span.Encode(p.engine.Pending(), temporal.Date.String))
}

func displayRange[T any](r span.Range[T], format func(T) string) string {
	if r.Empty() {
		return ""
	}
	var start, end string
	if r.Start != nil {
		start = format(*r.Start)
	}
	if r.End != nil {
		end = format(*r.End)
	}
	return start + rangeSep + end
}
