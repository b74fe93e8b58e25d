package temporal

import (
	"encoding/json"
	"strings"
	"sync"
)

// MonthNames is the per-locale month table used by custom patterns and
// month-name parsing.
type MonthNames struct {
	Long  [12]string
	Short [12]string
}

// FormatOptions selects how a locale formatter renders values. It is part of
// the formatter cache key.
type FormatOptions struct {
	Month   string `json:"month,omitempty"` // "short" (default) or "long"
	Hour12  bool   `json:"hour12,omitempty"`
	Seconds bool   `json:"seconds,omitempty"`
}

// Formatter renders dates and times for one locale and option set.
type Formatter struct {
	locale     string
	opts       FormatOptions
	table      *langTable
	monthFirst bool
}

// Cache memoizes month-name tables and formatter objects. Entries are built
// lazily and live as long as the cache; there is no eviction.
type Cache struct {
	mu         sync.Mutex
	months     map[string]*MonthNames
	formatters map[string]*Formatter
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		months:     make(map[string]*MonthNames),
		formatters: make(map[string]*Formatter),
	}
}

var shared = NewCache()

// SharedCache returns the process-wide cache hosts hand to pickers by default.
func SharedCache() *Cache { return shared }

func orShared(c *Cache) *Cache {
	if c == nil {
		return shared
	}
	return c
}

// MonthNames returns the 12-entry month tables for locale.
func (c *Cache) MonthNames(locale string) *MonthNames {
	key := CanonicalLocale(locale)
	c.mu.Lock()
	defer c.mu.Unlock()
	if names, ok := c.months[key]; ok {
		return names
	}
	t := tableFor(key)
	names := &MonthNames{Long: t.long, Short: t.short}
	c.months[key] = names
	return names
}

// Formatter returns the cached formatter for locale and opts, keyed by
// "locale::optionsJSON".
func (c *Cache) Formatter(locale string, opts FormatOptions) *Formatter {
	canonical := CanonicalLocale(locale)
	raw, _ := json.Marshal(opts)
	key := canonical + "::" + string(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.formatters[key]; ok {
		return f
	}
	f := &Formatter{
		locale:     canonical,
		opts:       opts,
		table:      tableFor(canonical),
		monthFirst: MonthFirst(canonical),
	}
	c.formatters[key] = f
	return f
}

// Len reports how many month tables and formatters are cached.
func (c *Cache) Len() (months, formatters int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.months), len(c.formatters)
}

// Reset drops every entry. Hosts never need this; tests do.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.months = make(map[string]*MonthNames)
	c.formatters = make(map[string]*Formatter)
}

// Locale returns the canonical locale the formatter was built for.
func (f *Formatter) Locale() string { return f.locale }

// FormatDate renders d with the locale's display pattern.
func (f *Formatter) FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	pattern := f.table.datePattern
	if f.monthFirst && f.table.monthFirstPattern != "" {
		pattern = f.table.monthFirstPattern
	}
	if f.opts.Month == "long" {
		pattern = strings.Replace(pattern, "MMM", "MMMM", 1)
	}
	names := &MonthNames{Long: f.table.long, Short: f.table.short}
	return renderPattern(pattern, d, names, true)
}

// FormatTime renders t on a 12 or 24 hour clock per the options.
func (f *Formatter) FormatTime(t Time) string {
	if t.IsZero() {
		return ""
	}
	if !f.opts.Hour12 {
		return FormatTime(t, f.opts.Seconds)
	}
	h, pm := t.Meridiem()
	clock := FormatTime(ClockSeconds(h, t.Minute, t.Second), f.opts.Seconds)
	// Drop the leading zero of the hour on the 12 hour clock.
	clock = strings.TrimPrefix(clock, "0")
	period := f.table.am
	if pm {
		period = f.table.pm
	}
	if f.table.periodFirst {
		return period + clock
	}
	return clock + " " + period
}
