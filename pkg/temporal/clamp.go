package temporal

// ClampDate pulls v into [min, max]. Bounds are ISO strings; a bound that
// does not parse is treated as absent. The min bound is applied before the
// max bound, so with inverted bounds max wins.
func ClampDate(v Date, min, max string) Date {
	if v.IsZero() {
		return v
	}
	if lo, ok := ParseISODate(min); ok && v.Before(lo) {
		v = lo
	}
	if hi, ok := ParseISODate(max); ok && v.After(hi) {
		v = hi
	}
	return v
}

// ClampTime pulls v into [min, max] using HH:mm[:ss] bounds. The result
// keeps v's precision: a minute precision value below a min of 09:00:30
// becomes 09:01, and above a max of 17:00:30 becomes 17:00.
func ClampTime(v Time, min, max string) Time {
	if v.IsZero() {
		return v
	}
	if lo, ok := ParseTime(min, true); ok && v.Compare(lo) < 0 {
		if up, wrapped := ceilBound(lo, v.Seconds); wrapped {
			// No minute of the day reaches lo; keep its seconds.
			v = lo
		} else {
			v = up
		}
	}
	if hi, ok := ParseTime(max, true); ok && v.Compare(hi) > 0 {
		v = hi.WithSeconds(v.Seconds)
	}
	return v
}

// ClampDateTime pulls v into [min, max] on the combined timestamp. Bounds may
// be full datetimes or plain dates; a date-only min means the start of that
// day and a date-only max its last minute.
func ClampDateTime(v DateTime, min, max string) DateTime {
	if v.IsZero() {
		return v
	}
	seconds := v.Time.Seconds
	if lo, ok := datetimeBound(min, Clock(0, 0)); ok && v.Compare(lo) < 0 {
		up, wrapped := ceilBound(lo.Time, seconds)
		if wrapped {
			lo = DateTime{Date: lo.Date.AddDays(1), Time: Clock(0, 0)}
		} else {
			lo.Time = up
		}
		v = lo
	}
	if hi, ok := datetimeBound(max, Clock(23, 59)); ok && v.Compare(hi) > 0 {
		hi.Time = hi.Time.WithSeconds(seconds)
		v = hi
	}
	return v
}

// ceilBound moves a min bound to the given precision without going below
// it. wrapped reports that rounding up would pass midnight.
func ceilBound(lo Time, seconds bool) (up Time, wrapped bool) {
	if seconds || lo.Second == 0 {
		return lo.WithSeconds(seconds), false
	}
	next := lo.MinuteOfDay() + 1
	if next >= MinutesPerDay {
		return lo, true
	}
	return FromMinuteOfDay(next), false
}

func datetimeBound(s string, dayEdge Time) (DateTime, bool) {
	if dt, ok := ParseISODateTime(s); ok {
		return dt, true
	}
	if d, ok := ParseISODate(s); ok {
		return DateTime{Date: d, Time: dayEdge}, true
	}
	return DateTime{}, false
}
