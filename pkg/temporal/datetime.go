package temporal

import "time"

// DateTime combines a Date and a Time of day without a zone.
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime joins d and t. A missing time resolves to midnight so the
// composite stays comparable.
func NewDateTime(d Date, t Time) DateTime {
	if !d.IsZero() && t.IsZero() {
		t = Clock(0, 0)
	}
	return DateTime{Date: d, Time: t}
}

// DateTimeOf captures t's wall clock in its own location at minute precision.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: Clock(t.Hour(), t.Minute())}
}

// IsZero reports whether dt is absent. A datetime without a date is absent.
func (dt DateTime) IsZero() bool { return dt.Date.IsZero() }

// String renders DATE"T"TIME.
func (dt DateTime) String() string {
	if dt.IsZero() {
		return ""
	}
	t := dt.Time
	if t.IsZero() {
		t = Clock(0, 0)
	}
	return dt.Date.String() + "T" + t.String()
}

// Instant returns dt as a UTC time.Time.
func (dt DateTime) Instant() time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, time.UTC)
}

// Compare orders by the combined timestamp.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(o.Time)
}

// SameDay reports whether both datetimes fall on the same calendar day.
func (dt DateTime) SameDay(o DateTime) bool { return dt.Date == o.Date }
