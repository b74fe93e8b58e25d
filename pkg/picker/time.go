package picker

import (
	"tableflip.dev/tempo/pkg/temporal"
)

// TimePicker edits a single time of day.
type TimePicker struct {
	*picker[temporal.Time]
}

// NewTimePicker validates cfg and builds the picker.
func NewTimePicker(id ComponentID, cfg Config, deps Deps) (*TimePicker, error) {
	p, err := newPicker(id, VariantTime, cfg, deps, func(c Config, _ *temporal.Cache) Codec[temporal.Time] {
		return TimeCodec(c)
	})
	if err != nil {
		return nil, err
	}
	return &TimePicker{picker: p}, nil
}

// Step moves pending by delta step units, five times as far with shift,
// wrapping around midnight. Only pending changes.
func (p *TimePicker) Step(delta int, shift bool) {
	if !p.interactive() {
		return
	}
	next := stepTime(p.engine.Pending(), p.cfg.Step, delta, shift).WithSeconds(p.cfg.Seconds)
	p.engine.Input(next, SourceKeyboardStep)
}

// SetSegment replaces one segment of pending from the segment selects.
func (p *TimePicker) SetSegment(seg Segment, value int) bool {
	if !p.interactive() {
		return false
	}
	next, ok := setSegment(p.engine.Pending(), seg, value, p.cfg.HourCycle, p.cfg.Seconds)
	if !ok {
		return false
	}
	p.engine.Input(next, SourcePicker)
	return true
}

// SetMinuteOfDay sets pending from a drag or slider position.
func (p *TimePicker) SetMinuteOfDay(m int, src Source) {
	if !p.interactive() {
		return
	}
	p.engine.Input(temporal.FromMinuteOfDay(m).WithSeconds(p.cfg.Seconds), src)
}

// Now commits the current time of day.
func (p *TimePicker) Now() bool {
	if !p.interactive() {
		return false
	}
	now := p.deps.now()
	t := temporal.Clock(now.Hour(), now.Minute())
	if p.cfg.Seconds {
		t = temporal.ClockSeconds(now.Hour(), now.Minute(), now.Second())
	}
	return p.engine.CommitValue(t, SourceNow)
}

// Display renders the committed value on the configured clock.
func (p *TimePicker) Display() string {
	return p.format(p.engine.Value())
}

// FieldText is the draft while typing, the formatted pending value
// otherwise.
func (p *TimePicker) FieldText() string {
	if draft, ok := p.engine.Draft(); ok {
		return draft
	}
	return p.format(p.engine.Pending())
}

func (p *TimePicker) format(t temporal.Time) string {
	return formatClock(t, p.cfg, p.deps.cache())
}

// HourOptions lists the hour select entries.
func (p *TimePicker) HourOptions() []Option {
	_, pm := p.engine.Pending().Meridiem()
	return hourOptions(p.cfg.HourCycle, pm, p.cfg.Min, p.cfg.Max)
}

// MinuteOptions lists the minute select entries for the pending hour.
func (p *TimePicker) MinuteOptions() []Option {
	return minuteOptions(p.engine.Pending().Hour, p.cfg.Step, p.cfg.Min, p.cfg.Max)
}

// SecondOptions lists the second select entries, nil without seconds.
func (p *TimePicker) SecondOptions() []Option {
	if !p.cfg.Seconds {
		return nil
	}
	return secondOptions(p.cfg.Step)
}

// MeridiemOptions lists AM and PM, nil on the 24 hour clock.
func (p *TimePicker) MeridiemOptions() []Option {
	if p.cfg.HourCycle != Hour12 {
		return nil
	}
	return meridiemOptions(p.cfg.Locale, p.deps.cache())
}

func formatClock(t temporal.Time, cfg Config, cache *temporal.Cache) string {
	if t.IsZero() {
		return ""
	}
	t = t.WithSeconds(cfg.Seconds)
	if cfg.HourCycle == Hour12 {
		return temporal.To12hDisplay(t, cfg.Locale, cache)
	}
	return temporal.FormatTime(t, cfg.Seconds)
}
