package picker

import (
	"fmt"

	"tableflip.dev/tempo/pkg/temporal"
)

// Segment is one editable part of a time of day.
type Segment string

const (
	SegmentHour     Segment = "hour"
	SegmentMinute   Segment = "minute"
	SegmentSecond   Segment = "second"
	SegmentMeridiem Segment = "meridiem"
)

// Option is one entry of a segment select.
type Option struct {
	Value    int
	Label    string
	Disabled bool
}

// StepMultiplier scales a keyboard step while Shift is held.
const StepMultiplier = 5

// stepTime moves t by one step unit, five with shift, wrapping modulo a day.
// An absent time starts from midnight.
func stepTime(t temporal.Time, step, delta int, shift bool) temporal.Time {
	if t.IsZero() {
		t = temporal.Clock(0, 0)
	}
	unit := step
	if shift {
		unit *= StepMultiplier
	}
	return t.AddMinutes(delta * unit)
}

// setSegment returns t with one segment replaced. Hours are 0-23 on the 24
// hour clock and 1-12 on the 12 hour clock, keeping the current meridiem.
// Meridiem takes 0 for AM and 1 for PM.
func setSegment(t temporal.Time, seg Segment, value int, cycle HourCycle, seconds bool) (temporal.Time, bool) {
	if t.IsZero() {
		t = temporal.Clock(0, 0).WithSeconds(seconds)
	}
	h, m, s := t.Hour, t.Minute, t.Second
	switch seg {
	case SegmentHour:
		if cycle == Hour12 {
			if value < 1 || value > 12 {
				return t, false
			}
			pm := h >= 12
			h = value % 12
			if pm {
				h += 12
			}
		} else {
			if value < 0 || value > 23 {
				return t, false
			}
			h = value
		}
	case SegmentMinute:
		if value < 0 || value > 59 {
			return t, false
		}
		m = value
	case SegmentSecond:
		if !seconds || value < 0 || value > 59 {
			return t, false
		}
		s = value
	case SegmentMeridiem:
		switch value {
		case 0:
			if h >= 12 {
				h -= 12
			}
		case 1:
			if h < 12 {
				h += 12
			}
		default:
			return t, false
		}
	default:
		return t, false
	}
	if seconds {
		return temporal.ClockSeconds(h, m, s), true
	}
	return temporal.Clock(h, m), true
}

// timeBounds resolves min and max to seconds of day. Absent or unparseable
// bounds are open.
func timeBounds(min, max string) (lo, hi int) {
	lo, hi = 0, temporal.MinutesPerDay*60-1
	if t, ok := temporal.ParseTime(min, true); ok {
		lo = t.SecondOfDay()
	}
	if t, ok := temporal.ParseTime(max, true); ok {
		hi = t.SecondOfDay()
	}
	return lo, hi
}

// hourOptions lists the hours of the configured clock, disabling hours that
// lie entirely outside [min, max].
func hourOptions(cycle HourCycle, pm bool, min, max string) []Option {
	lo, hi := timeBounds(min, max)
	var out []Option
	add := func(h24, label int) {
		start, end := h24*3600, h24*3600+3599
		out = append(out, Option{
			Value:    label,
			Label:    fmt.Sprintf("%02d", label),
			Disabled: end < lo || start > hi,
		})
	}
	if cycle == Hour12 {
		for _, h := range []int{12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
			h24 := h % 12
			if pm {
				h24 += 12
			}
			add(h24, h)
		}
		return out
	}
	for h := 0; h < 24; h++ {
		add(h, h)
	}
	return out
}

// quantized lists 0, step, 2*step... below 60. Steps of an hour or more
// leave only 0.
func quantized(step int) []int {
	if step < 1 {
		step = 1
	}
	var out []int
	for v := 0; v < 60; v += step {
		out = append(out, v)
	}
	return out
}

// minuteOptions lists step quantized minutes of hour, disabling those
// outside [min, max].
func minuteOptions(hour, step int, min, max string) []Option {
	lo, hi := timeBounds(min, max)
	var out []Option
	for _, m := range quantized(step) {
		start := hour*3600 + m*60
		out = append(out, Option{
			Value:    m,
			Label:    fmt.Sprintf("%02d", m),
			Disabled: start+59 < lo || start > hi,
		})
	}
	return out
}

// secondOptions lists step quantized seconds.
func secondOptions(step int) []Option {
	var out []Option
	for _, s := range quantized(step) {
		out = append(out, Option{Value: s, Label: fmt.Sprintf("%02d", s)})
	}
	return out
}

// meridiemOptions lists AM and PM in the locale's day period names.
func meridiemOptions(locale string, cache *temporal.Cache) []Option {
	am := temporal.To12hDisplay(temporal.Clock(0, 0), locale, cache)
	pm := temporal.To12hDisplay(temporal.Clock(12, 0), locale, cache)
	return []Option{
		{Value: 0, Label: dayPeriod(am)},
		{Value: 1, Label: dayPeriod(pm)},
	}
}

// dayPeriod strips the clock digits from a 12 hour rendering, leaving the
// day period marker.
func dayPeriod(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ':' || r == ' ' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
