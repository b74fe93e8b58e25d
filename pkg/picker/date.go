package picker

import (
	"tableflip.dev/tempo/pkg/temporal"
)

// DatePicker edits a single calendar date.
type DatePicker struct {
	*picker[temporal.Date]
}

// NewDatePicker validates cfg and builds the picker.
func NewDatePicker(id ComponentID, cfg Config, deps Deps) (*DatePicker, error) {
	p, err := newPicker(id, VariantDate, cfg, deps, DateCodec)
	if err != nil {
		return nil, err
	}
	return &DatePicker{picker: p}, nil
}

// SelectDate handles the calendar's select event.
func (p *DatePicker) SelectDate(ev CalendarSelect) bool {
	d, ok := temporal.ParseISODate(ev.Value)
	if !ok {
		return false
	}
	p.pick(d)
	return true
}

// Today commits the current date.
func (p *DatePicker) Today() bool {
	if !p.interactive() {
		return false
	}
	return p.engine.CommitValue(temporal.DateOf(p.deps.now()), SourceToday)
}

// Display renders the committed value in the configured display mode.
func (p *DatePicker) Display() string {
	return p.format(p.engine.Value())
}

// FieldText is what the text field shows: the draft while typing, the
// formatted pending value otherwise.
func (p *DatePicker) FieldText() string {
	if draft, ok := p.engine.Draft(); ok {
		return draft
	}
	return p.format(p.engine.Pending())
}

func (p *DatePicker) format(d temporal.Date) string {
	return temporal.FormatDate(d.String(), p.cfg.Locale, p.cfg.Display, p.cfg.Pattern, p.deps.cache())
}

// CalendarAttrs describes the calendar for the pending value.
func (p *DatePicker) CalendarAttrs() CalendarAttrs {
	return p.calendarAttrs(SelectionSingle, p.engine.Pending().String())
}
