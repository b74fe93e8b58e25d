// Package timeutil reads and renders the short durations used to window
// remembered picker values, such as "1w", "3d" or "1w2d6h".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

// units is ordered largest first; the first alias is the canonical label.
var units = []struct {
	aliases []string
	value   time.Duration
}{
	{[]string{"w", "wk", "wks", "week", "weeks"}, Week},
	{[]string{"d", "day", "days"}, Day},
	{[]string{"h", "hr", "hrs", "hour", "hours"}, time.Hour},
	{[]string{"m", "min", "mins", "minute", "minutes"}, time.Minute},
	{[]string{"s", "sec", "secs", "second", "seconds"}, time.Second},
}

func unit(name string) (time.Duration, bool) {
	for _, u := range units {
		for _, a := range u.aliases {
			if a == name {
				return u.value, true
			}
		}
	}
	return 0, false
}

// ParseWindow reads a window like "1w2d6h". An empty input is no window and
// returns zero.
func ParseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, nil
	}
	var total time.Duration
	for remaining != "" {
		m := segment.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		base, ok := unit(m[2])
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * base
		remaining = strings.TrimSpace(remaining[len(m[0]):])
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d with every unit it spans, "1w2d6h30m".
func FormatWindow(d time.Duration) string {
	var sb strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&sb, "%d%s", n, u.aliases[0])
	}
	if sb.Len() == 0 {
		return "0s"
	}
	return sb.String()
}

// Ago renders how long before now t was, in its largest unit: "3d ago".
// Anything under a minute, or in the future, is "just now".
func Ago(now, t time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	for _, u := range units {
		if d >= u.value {
			return fmt.Sprintf("%d%s ago", d/u.value, u.aliases[0])
		}
	}
	return "just now"
}
