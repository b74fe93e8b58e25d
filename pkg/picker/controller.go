package picker

import (
	"fmt"
)

// Controller is the variant independent surface hosts drive.
type Controller interface {
	ID() ComponentID
	Variant() Variant
	Config() Config
	On(fn func(Event)) (off func())

	Open(src Source) bool
	Close(src Source) bool
	Toggle() bool
	Cancel()
	IsOpen() bool
	Resize()
	Scroll()

	Type(raw string)
	Enter() bool
	Blur() bool
	Apply() bool
	Clear() bool
	SelectRecent(attr string) bool

	SetAttribute(raw string)
	Attribute() string
	Error() string
	Display() string
	FieldText() string
}

// CalendarHost is implemented by variants that show a calendar grid.
type CalendarHost interface {
	CalendarAttrs() CalendarAttrs
}

// Stepper is implemented by variants with a single time of day.
type Stepper interface {
	Step(delta int, shift bool)
}

var (
	_ Controller = (*DatePicker)(nil)
	_ Controller = (*TimePicker)(nil)
	_ Controller = (*DateTimePicker)(nil)
	_ Controller = (*DateRangePicker)(nil)
	_ Controller = (*DateTimeRangePicker)(nil)

	_ CalendarHost = (*DatePicker)(nil)
	_ CalendarHost = (*DateTimePicker)(nil)
	_ CalendarHost = (*DateRangePicker)(nil)
	_ CalendarHost = (*DateTimeRangePicker)(nil)

	_ Stepper = (*TimePicker)(nil)
	_ Stepper = (*DateTimePicker)(nil)
)

// Variant returns the picker variant.
func (p *picker[T]) Variant() Variant { return p.engine.Codec().Variant }

// New builds the picker for variant v.
func New(v Variant, id ComponentID, cfg Config, deps Deps) (Controller, error) {
	var (
		c   Controller
		err error
	)
	switch v {
	case VariantDate:
		c, err = unwrap(NewDatePicker(id, cfg, deps))
	case VariantTime:
		c, err = unwrap(NewTimePicker(id, cfg, deps))
	case VariantDateTime:
		c, err = unwrap(NewDateTimePicker(id, cfg, deps))
	case VariantDateRange:
		c, err = unwrap(NewDateRangePicker(id, cfg, deps))
	case VariantDateTimeRange:
		c, err = unwrap(NewDateTimeRangePicker(id, cfg, deps))
	default:
		return nil, fmt.Errorf("unknown picker variant %q", v)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func unwrap[C Controller](c C, err error) (Controller, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FieldText for range pickers joins the endpoint fields.
func (p *DateRangePicker) FieldText() string {
	if draft, ok := p.engine.Draft(); ok {
		return draft
	}
	return joinEndpoints(p.StartText(), p.EndText())
}

// FieldText for range pickers joins the endpoint fields.
func (p *DateTimeRangePicker) FieldText() string {
	if draft, ok := p.engine.Draft(); ok {
		return draft
	}
	return joinEndpoints(p.StartText(), p.EndText())
}

func joinEndpoints(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + rangeSep + end
}
