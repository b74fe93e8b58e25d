package temporal

import "fmt"

// MinutesPerDay is the modulus used when stepping a time of day.
const MinutesPerDay = 24 * 60

// Time is a wall-clock time of day. The zero value is "no time"; use Clock or
// ClockSeconds to build a present value, including midnight.
type Time struct {
	Hour   int
	Minute int
	Second int
	// Seconds marks second precision; it selects HH:mm:ss as canonical form.
	Seconds bool

	set bool
}

// Clock returns the HH:mm time, or the zero Time when out of range.
func Clock(h, m int) Time {
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Time{}
	}
	return Time{Hour: h, Minute: m, set: true}
}

// ClockSeconds returns the HH:mm:ss time, or the zero Time when out of range.
func ClockSeconds(h, m, s int) Time {
	t := Clock(h, m)
	if !t.set || s < 0 || s > 59 {
		return Time{}
	}
	t.Second = s
	t.Seconds = true
	return t
}

// FromMinuteOfDay wraps m into [0, 1440) and returns the matching HH:mm time.
func FromMinuteOfDay(m int) Time {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return Clock(m/60, m%60)
}

// IsZero reports whether t is absent.
func (t Time) IsZero() bool { return !t.set }

// MinuteOfDay returns minutes since midnight.
func (t Time) MinuteOfDay() int { return t.Hour*60 + t.Minute }

// SecondOfDay returns seconds since midnight.
func (t Time) SecondOfDay() int { return t.MinuteOfDay()*60 + t.Second }

// AddMinutes steps t by n minutes, wrapping at the day boundary. Second
// precision is preserved.
func (t Time) AddMinutes(n int) Time {
	next := FromMinuteOfDay(t.MinuteOfDay() + n)
	if t.Seconds {
		next.Second = t.Second
		next.Seconds = true
	}
	return next
}

// WithSeconds returns t switched to second precision (or back to minutes).
func (t Time) WithSeconds(on bool) Time {
	if t.IsZero() {
		return t
	}
	t.Seconds = on
	if !on {
		t.Second = 0
	}
	return t
}

// String renders the canonical form.
func (t Time) String() string {
	if t.IsZero() {
		return ""
	}
	return FormatTime(t, t.Seconds)
}

// Compare orders two times of day by their second of day.
func (t Time) Compare(o Time) int {
	return cmpInt(t.SecondOfDay(), o.SecondOfDay())
}

// Meridiem reports the 12 hour clock hour and whether it is PM.
func (t Time) Meridiem() (hour12 int, pm bool) {
	pm = t.Hour >= 12
	hour12 = t.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return hour12, pm
}

// FormatTime renders HH:mm, or HH:mm:ss when withSeconds is set.
func FormatTime(t Time, withSeconds bool) string {
	if t.IsZero() {
		return ""
	}
	if withSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
