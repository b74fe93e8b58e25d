package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/agnivade/levenshtein"
)

var (
	meridiemPattern = regexp.MustCompile(`\s*([ap])\.?\s*(m\.?)?$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	ordinalSuffix   = regexp.MustCompile(`^(\d{1,2})(st|nd|rd|th)$`)

	separatorReplacer = strings.NewReplacer(".", "/", "-", "/")

	// Filler words seen in long-form dates ("5 de março de 2026", "5th of May").
	dateFillers = map[string]bool{"de": true, "of": true, "the": true, "del": true}
)

// ParseDateFreeform interprets typed date text. Canonical ISO input is
// accepted directly; otherwise the text is read as three numeric parts whose
// month/day order follows the locale, or as a day, a month name and a year.
func ParseDateFreeform(raw, locale string, cache *Cache) (Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, false
	}
	if d, ok := ParseISODate(s); ok {
		return d, true
	}
	if d, ok := parseNumericDate(s, locale); ok {
		return d, true
	}
	return parseMonthNameDate(s, locale, orShared(cache))
}

func parseNumericDate(s, locale string) (Date, bool) {
	norm := separatorReplacer.Replace(s)
	parts := strings.FieldsFunc(norm, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
	if len(parts) != 3 {
		return Date{}, false
	}
	for _, p := range parts {
		if !digitsPattern.MatchString(p) || len(p) > 4 {
			return Date{}, false
		}
	}

	var y, m, d int
	if len(parts[0]) == 4 {
		y, _ = strconv.Atoi(parts[0])
		m, _ = strconv.Atoi(parts[1])
		d, _ = strconv.Atoi(parts[2])
	} else {
		a, _ := strconv.Atoi(parts[0])
		b, _ := strconv.Atoi(parts[1])
		y = expandYear(parts[2])
		if MonthFirst(locale) {
			m, d = a, b
		} else {
			d, m = a, b
		}
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return Date{}, false
	}
	return NewDate(y, time.Month(m), d)
}

// expandYear widens two digit years: below 70 is 20xx, otherwise 19xx.
func expandYear(s string) int {
	y, _ := strconv.Atoi(s)
	if len(s) <= 2 {
		if y < 70 {
			return y + 2000
		}
		return y + 1900
	}
	return y
}

func parseMonthNameDate(s, locale string, cache *Cache) (Date, bool) {
	raw := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/' || r == '-'
	})
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if dateFillers[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	if len(tokens) != 3 {
		return Date{}, false
	}

	var (
		month    time.Month
		numbers  []string
		monthPos = -1
	)
	for i, t := range tokens {
		if n, ok := numericToken(t); ok {
			numbers = append(numbers, n)
			continue
		}
		if monthPos >= 0 {
			return Date{}, false
		}
		m, ok := lookupMonth(t, locale, cache)
		if !ok {
			return Date{}, false
		}
		month, monthPos = m, i
	}
	if monthPos < 0 || len(numbers) != 2 {
		return Date{}, false
	}
	// "5 March 2026" and "March 5 2026" both put the day before the year;
	// "2026 March 5" puts the year first.
	dayText, yearText := numbers[0], numbers[1]
	if len(numbers[0]) == 4 {
		yearText, dayText = numbers[0], numbers[1]
	}
	if len(dayText) > 2 {
		return Date{}, false
	}
	day, _ := strconv.Atoi(dayText)
	return NewDate(expandYear(yearText), month, day)
}

// numericToken strips ordinal suffixes and trailing dots ("5th", "5.").
func numericToken(t string) (string, bool) {
	t = strings.TrimSuffix(t, ".")
	if m := ordinalSuffix.FindStringSubmatch(t); m != nil {
		return m[1], true
	}
	if digitsPattern.MatchString(t) && len(t) <= 4 {
		return t, true
	}
	return "", false
}

func lookupMonth(token, locale string, cache *Cache) (time.Month, bool) {
	token = strings.Trim(token, ".")
	if token == "" {
		return 0, false
	}
	tables := []*MonthNames{cache.MonthNames(locale)}
	if english := cache.MonthNames(DefaultLocale); english != tables[0] {
		tables = append(tables, english)
	}
	for _, names := range tables {
		if m, ok := matchMonth(token, names); ok {
			return m, true
		}
	}
	return 0, false
}

func matchMonth(token string, names *MonthNames) (time.Month, bool) {
	found := time.Month(0)
	unique := true
	consider := func(i int) {
		m := time.Month(i + 1)
		if found != 0 && found != m {
			unique = false
		}
		found = m
	}

	for i := range names.Long {
		long := strings.ToLower(names.Long[i])
		short := strings.Trim(strings.ToLower(names.Short[i]), ".")
		if token == long || token == short {
			return time.Month(i + 1), true
		}
	}
	if len([]rune(token)) >= 3 {
		for i := range names.Long {
			if strings.HasPrefix(strings.ToLower(names.Long[i]), token) {
				consider(i)
			}
		}
		if found != 0 {
			return found, unique
		}
	}
	if len([]rune(token)) >= 4 {
		for i := range names.Long {
			if levenshtein.ComputeDistance(token, strings.ToLower(names.Long[i])) == 1 {
				consider(i)
			}
		}
		if found != 0 {
			return found, unique
		}
	}
	return 0, false
}

// ParseTime interprets typed time text: "9:30", "09.30", "9h30", "930",
// "9:30pm", "12 a.m.", "21:15:05". A meridiem restricts the hour to 1..12
// and is folded into the 24 hour result. Seconds are rejected unless
// allowSeconds is set.
func ParseTime(raw string, allowSeconds bool) (Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Time{}, false
	}

	meridiem := byte(0)
	if loc := meridiemPattern.FindStringSubmatchIndex(s); loc != nil {
		body := s[:loc[0]]
		if body != "" && unicode.IsDigit(rune(body[len(body)-1])) {
			meridiem = s[loc[2]]
			s = body
		}
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == '.' || r == 'h' || r == 'm' || unicode.IsSpace(r)
	})
	for _, p := range parts {
		if !digitsPattern.MatchString(p) {
			return Time{}, false
		}
	}

	var h, m, sec int
	hasSeconds := false
	switch len(parts) {
	case 1:
		p := parts[0]
		switch len(p) {
		case 1, 2:
			h, _ = strconv.Atoi(p)
		case 3, 4:
			h, _ = strconv.Atoi(p[:len(p)-2])
			m, _ = strconv.Atoi(p[len(p)-2:])
		case 5, 6:
			h, _ = strconv.Atoi(p[:len(p)-4])
			m, _ = strconv.Atoi(p[len(p)-4 : len(p)-2])
			sec, _ = strconv.Atoi(p[len(p)-2:])
			hasSeconds = true
		default:
			return Time{}, false
		}
	case 2, 3:
		for _, p := range parts {
			if len(p) > 2 {
				return Time{}, false
			}
		}
		h, _ = strconv.Atoi(parts[0])
		m, _ = strconv.Atoi(parts[1])
		if len(parts) == 3 {
			sec, _ = strconv.Atoi(parts[2])
			hasSeconds = true
		}
	default:
		return Time{}, false
	}

	if hasSeconds && !allowSeconds {
		return Time{}, false
	}
	if meridiem != 0 {
		if h < 1 || h > 12 {
			return Time{}, false
		}
		h %= 12
		if meridiem == 'p' {
			h += 12
		}
	}
	if h > 23 || m > 59 || sec > 59 {
		return Time{}, false
	}
	if hasSeconds {
		return ClockSeconds(h, m, sec), true
	}
	return Clock(h, m), true
}

// ParseDateTime interprets a date part and a time part, each parsed on its
// own. The parts may be joined by "T", whitespace or a comma; a missing time
// resolves to midnight.
func ParseDateTime(raw, locale string, allowSeconds bool, cache *Cache) (DateTime, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DateTime{}, false
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		if d, ok := ParseDateFreeform(s[:i], locale, cache); ok {
			t, ok := ParseTime(s[i+1:], allowSeconds)
			if !ok {
				return DateTime{}, false
			}
			return NewDateTime(d, t), true
		}
	}
	for i, r := range s {
		if r != ' ' && r != ',' && r != '\t' {
			continue
		}
		left := strings.TrimSpace(strings.TrimRight(s[:i], ","))
		right := strings.TrimSpace(strings.TrimLeft(s[i+1:], ", "))
		if left == "" || right == "" {
			continue
		}
		d, ok := ParseDateFreeform(left, locale, cache)
		if !ok {
			continue
		}
		if t, ok := ParseTime(right, allowSeconds); ok {
			return NewDateTime(d, t), true
		}
	}
	if d, ok := ParseDateFreeform(s, locale, cache); ok {
		return NewDateTime(d, Time{}), true
	}
	return DateTime{}, false
}

// ParseISODateTime accepts only YYYY-MM-DDTHH:mm[:ss].
func ParseISODateTime(s string) (DateTime, bool) {
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return DateTime{}, false
	}
	d, ok := ParseISODate(s[:i])
	if !ok {
		return DateTime{}, false
	}
	t, ok := parseISOTime(s[i+1:])
	if !ok {
		return DateTime{}, false
	}
	return DateTime{Date: d, Time: t}, true
}

var isoTimePattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// parseISOTime accepts only HH:mm or HH:mm:ss.
func parseISOTime(s string) (Time, bool) {
	m := isoTimePattern.FindStringSubmatch(s)
	if m == nil {
		return Time{}, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if m[3] == "" {
		t := Clock(h, mi)
		return t, !t.IsZero()
	}
	sec, _ := strconv.Atoi(m[3])
	t := ClockSeconds(h, mi, sec)
	return t, !t.IsZero()
}

// ParseISOTime accepts only the canonical HH:mm or HH:mm:ss forms.
func ParseISOTime(s string) (Time, bool) { return parseISOTime(s) }
