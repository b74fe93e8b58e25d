package temporal

import "strings"

// CompareISO orders canonical ISO strings. Canonical dates and datetimes sort
// lexicographically, so no parsing is needed.
func CompareISO(a, b string) int {
	return strings.Compare(a, b)
}

// CompareTime orders two time strings by their parsed value. When either side
// does not parse the raw strings are compared instead; callers relying on
// that fallback get string order, not clock order.
func CompareTime(a, b string) int {
	ta, okA := ParseTime(a, true)
	tb, okB := ParseTime(b, true)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}

// CompareDateTime orders two datetime strings by their combined timestamp,
// falling back to raw string order when either side does not parse.
func CompareDateTime(a, b string) int {
	da, okA := ParseISODateTime(a)
	db, okB := ParseISODateTime(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	return da.Compare(db)
}
