package temporal

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayMode selects how FormatDate renders a date.
type DisplayMode string

const (
	// DisplayISO renders the canonical value verbatim.
	DisplayISO DisplayMode = "iso"
	// DisplayLocale renders with the locale's month names and field order.
	DisplayLocale DisplayMode = "locale"
	// DisplayCustom renders a caller supplied token pattern.
	DisplayCustom DisplayMode = "custom"
)

// Valid reports whether m is a known mode.
func (m DisplayMode) Valid() bool {
	switch m {
	case DisplayISO, DisplayLocale, DisplayCustom:
		return true
	}
	return false
}

// FormatDate renders an ISO date for display. Input that is not a valid ISO
// date is returned unchanged, as is every value in iso mode.
func FormatDate(iso, locale string, mode DisplayMode, pattern string, cache *Cache) string {
	if mode == DisplayISO || mode == "" {
		return iso
	}
	d, ok := ParseISODate(iso)
	if !ok {
		return iso
	}
	c := orShared(cache)
	switch mode {
	case DisplayLocale:
		return c.Formatter(locale, FormatOptions{Month: "short"}).FormatDate(d)
	case DisplayCustom:
		if pattern == "" {
			return iso
		}
		return renderPattern(pattern, d, c.MonthNames(locale), false)
	}
	return iso
}

// To12hDisplay renders t on the 12 hour clock using the locale's day periods.
func To12hDisplay(t Time, locale string, cache *Cache) string {
	return orShared(cache).Formatter(locale, FormatOptions{Hour12: true, Seconds: t.Seconds}).FormatTime(t)
}

// patternTokens are matched longest first. The single letter tokens are only
// honoured for built-in locale patterns so literal text in custom patterns
// is left alone.
var patternTokens = []string{"YYYY", "MMMM", "MMM", "MM", "DD", "M", "D"}

func renderPattern(pattern string, d Date, names *MonthNames, extended bool) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		tok := ""
		for _, t := range patternTokens {
			if len(t) == 1 && !extended {
				continue
			}
			if strings.HasPrefix(pattern[i:], t) {
				tok = t
				break
			}
		}
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		switch tok {
		case "YYYY":
			b.WriteString(fmt.Sprintf("%04d", d.Year))
		case "MMMM":
			b.WriteString(names.Long[d.Month-1])
		case "MMM":
			b.WriteString(names.Short[d.Month-1])
		case "MM":
			b.WriteString(fmt.Sprintf("%02d", int(d.Month)))
		case "DD":
			b.WriteString(fmt.Sprintf("%02d", d.Day))
		case "M":
			b.WriteString(strconv.Itoa(int(d.Month)))
		case "D":
			b.WriteString(strconv.Itoa(d.Day))
		}
		i += len(tok)
	}
	return b.String()
}
