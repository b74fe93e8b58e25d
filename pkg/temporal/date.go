// Package temporal holds the date and time value types shared by every picker
// variant along with the parsing, formatting, comparison and clamping helpers
// that operate on them.
package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// ISODateLayout is the canonical layout of a Date.
	ISODateLayout = "2006-01-02"

	minYear = 1000
	maxYear = 9999
)

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date is a calendar day without a time or zone. The zero value means
// "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for y-m-d when it names a real calendar day with a
// four digit year.
func NewDate(y int, m time.Month, d int) (Date, bool) {
	if y < minYear || y > maxYear {
		return Date{}, false
	}
	if m < time.January || m > time.December {
		return Date{}, false
	}
	if d < 1 || d > DaysIn(y, m) {
		return Date{}, false
	}
	return Date{Year: y, Month: m, Day: d}, true
}

// MustDate is NewDate for literals known to be valid.
func MustDate(y int, m time.Month, d int) Date {
	v, ok := NewDate(y, m, d)
	if !ok {
		panic(fmt.Sprintf("temporal: invalid date %04d-%02d-%02d", y, m, d))
	}
	return v
}

// ParseISODate accepts only the canonical YYYY-MM-DD form.
func ParseISODate(s string) (Date, bool) {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return NewDate(y, time.Month(mo), d)
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysIn returns the number of days in the month.
func DaysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Valid reports whether d is a present date inside the supported years.
// Arithmetic such as AddDays can step outside them.
func (d Date) Valid() bool {
	_, ok := NewDate(d.Year, d.Month, d.Day)
	return ok
}

// IsZero reports whether d is the absent date.
func (d Date) IsZero() bool { return d == Date{} }

// String renders the canonical ISO form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves d by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths moves d by n months, pinning the day to the end of shorter months.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Compare orders two dates.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
