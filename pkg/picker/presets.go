package picker

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Preset is a named date range relative to today.
type Preset struct {
	ID    string
	Label string
}

// Presets lists the built-in presets. Any last-N-days id is accepted, not
// only the listed ones.
func Presets() []Preset {
	return []Preset{
		{ID: "today", Label: "Today"},
		{ID: "yesterday", Label: "Yesterday"},
		{ID: "last-7-days", Label: "Last 7 days"},
		{ID: "last-30-days", Label: "Last 30 days"},
		{ID: "this-week", Label: "This week"},
		{ID: "this-month", Label: "This month"},
		{ID: "last-month", Label: "Last month"},
	}
}

var lastNDays = regexp.MustCompile(`^last-(\d+)-days?$`)

// PresetRange resolves a preset id against today. Weeks begin on
// weekStart. Calendar periods cover the whole week or month.
func PresetRange(id string, today temporal.Date, weekStart time.Weekday) (span.Range[temporal.Date], error) {
	switch id {
	case "today":
		return span.Of(today, today), nil
	case "yesterday":
		y := today.AddDays(-1)
		return span.Of(y, y), nil
	case "this-week":
		offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
		start := today.AddDays(-offset)
		return span.Of(start, start.AddDays(6)), nil
	case "this-month":
		return span.Of(today.StartOfMonth(), today.EndOfMonth()), nil
	case "last-month":
		prev := today.StartOfMonth().AddMonths(-1)
		return span.Of(prev, prev.EndOfMonth()), nil
	}
	if m := lastNDays.FindStringSubmatch(id); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return span.Range[temporal.Date]{}, fmt.Errorf("preset %q: day count must be positive", id)
		}
		start := today.AddDays(-(n - 1))
		if !start.Valid() {
			return span.Range[temporal.Date]{}, fmt.Errorf("preset %q: start %s is out of range", id, start)
		}
		return span.Of(start, today), nil
	}
	return span.Range[temporal.Date]{}, fmt.Errorf("unknown preset %q", id)
}

// LastNDays is the id of the last-n-days preset.
func LastNDays(n int) string {
	return fmt.Sprintf("last-%d-days", n)
}
