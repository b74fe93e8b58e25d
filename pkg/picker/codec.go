package picker

import (
	"regexp"
	"strings"

	"tableflip.dev/tempo/pkg/span"
	"tableflip.dev/tempo/pkg/temporal"
)

// Codec adapts one value shape to the engine.
type Codec[T any] struct {
	Variant Variant
	// Parse reads typed text. Blank text is the empty value.
	Parse func(raw string) (T, error)
	// Format renders the public attribute form.
	Format func(T) string
	// Decode reads the public attribute form.
	Decode func(attr string) (T, bool)
	// Clamp corrects a value into the configured bounds. Optional.
	Clamp func(T) T
	// Normalize repairs or rejects a clamped value. Optional.
	Normalize func(T) (T, error)
	Equal     func(a, b T) bool
	Empty     func(T) bool
}

// DateCodec is the Single<Date> codec.
func DateCodec(cfg Config, cache *temporal.Cache) Codec[temporal.Date] {
	return Codec[temporal.Date]{
		Variant: VariantDate,
		Parse: func(raw string) (temporal.Date, error) {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				return temporal.Date{}, nil
			}
			d, ok := temporal.ParseDateFreeform(raw, cfg.Locale, cache)
			if !ok {
				return temporal.Date{}, span.Invalid(span.ReasonParse, "date %q", raw)
			}
			return d, nil
		},
		Format: temporal.Date.String,
		Decode: decodeOrEmpty(temporal.ParseISODate),
		Clamp: func(d temporal.Date) temporal.Date {
			return temporal.ClampDate(d, cfg.Min, cfg.Max)
		},
		Equal: func(a, b temporal.Date) bool { return a == b },
		Empty: temporal.Date.IsZero,
	}
}

// TimeCodec is the Single<Time> codec.
func TimeCodec(cfg Config) Codec[temporal.Time] {
	return Codec[temporal.Time]{
		Variant: VariantTime,
		Parse: func(raw string) (temporal.Time, error) {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				return temporal.Time{}, nil
			}
			t, ok := temporal.ParseTime(raw, cfg.Seconds)
			if !ok {
				return temporal.Time{}, span.Invalid(span.ReasonParse, "time %q", raw)
			}
			return t.WithSeconds(cfg.Seconds), nil
		},
		Format: func(t temporal.Time) string { return temporal.FormatTime(t, cfg.Seconds) },
		Decode: decodeOrEmpty(func(s string) (temporal.Time, bool) {
			t, ok := temporal.ParseISOTime(s)
			return t.WithSeconds(cfg.Seconds), ok
		}),
		Clamp: func(t temporal.Time) temporal.Time {
			return temporal.ClampTime(t, cfg.Min, cfg.Max)
		},
		Equal: func(a, b temporal.Time) bool {
			return a.IsZero() == b.IsZero() && a.Compare(b) == 0
		},
		Empty: temporal.Time.IsZero,
	}
}

// DateTimeCodec is the Composite<DateTime> codec. Bounds apply to the
// combined timestamp.
func DateTimeCodec(cfg Config, cache *temporal.Cache) Codec[temporal.DateTime] {
	return Codec[temporal.DateTime]{
		Variant: VariantDateTime,
		Parse: func(raw string) (temporal.DateTime, error) {
			return parseDateTime(raw, cfg, cache)
		},
		Format: func(dt temporal.DateTime) string { return formatDateTime(dt, cfg) },
		Decode: decodeOrEmpty(func(s string) (temporal.DateTime, bool) {
			dt, ok := temporal.ParseISODateTime(s)
			return withSeconds(dt, cfg.Seconds), ok
		}),
		Clamp: func(dt temporal.DateTime) temporal.DateTime {
			return withSeconds(temporal.ClampDateTime(dt, cfg.Min, cfg.Max), cfg.Seconds)
		},
		Equal: func(a, b temporal.DateTime) bool {
			return a.IsZero() == b.IsZero() && a.Compare(b) == 0
		},
		Empty: temporal.DateTime.IsZero,
	}
}

// DateRangeCodec is the Range<Date> codec.
func DateRangeCodec(cfg Config, cache *temporal.Cache) Codec[span.Range[temporal.Date]] {
	single := DateCodec(cfg, cache)
	ops := span.Ops[temporal.Date]{
		Compare: temporal.Date.Compare,
		Clamp:   single.Clamp,
	}
	return rangeCodec(VariantDateRange, single, ops, policy(cfg), temporal.ParseISODate)
}

// DateTimeRangeCodec is the Range<DateTime> codec. Ordering and the same-day
// policy look at the combined timestamps.
func DateTimeRangeCodec(cfg Config, cache *temporal.Cache) Codec[span.Range[temporal.DateTime]] {
	single := DateTimeCodec(cfg, cache)
	ops := span.Ops[temporal.DateTime]{
		Compare: temporal.DateTime.Compare,
		Clamp:   single.Clamp,
		SameDay: temporal.DateTime.SameDay,
	}
	return rangeCodec(VariantDateTimeRange, single, ops, policy(cfg), single.Decode)
}

func policy(cfg Config) span.Policy {
	return span.Policy{
		AutoNormalize: cfg.AutoNormalize,
		AllowPartial:  cfg.AllowPartial,
		AllowSameDay:  cfg.AllowSameDay,
	}
}

// rangeSeparator splits typed range text such as "Mar 1 - Mar 9" or
// "2026-03-01 to 2026-03-09".
var rangeSeparator = regexp.MustCompile(`\s+(?:-|–|—|to|until|through)\s+|\s*\.\.\s*`)

func rangeCodec[T any](v Variant, single Codec[T], ops span.Ops[T], p span.Policy, iso func(string) (T, bool)) Codec[span.Range[T]] {
	return Codec[span.Range[T]]{
		Variant: v,
		Parse: func(raw string) (span.Range[T], error) {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				return span.Range[T]{}, nil
			}
			if strings.HasPrefix(raw, "{") {
				return span.Decode(raw, iso)
			}
			parts := rangeSeparator.Split(raw, 2)
			var out span.Range[T]
			for i, part := range parts {
				if strings.TrimSpace(part) == "" {
					continue
				}
				val, err := single.Parse(part)
				if err != nil {
					return span.Range[T]{}, err
				}
				if i == 0 {
					out.Start = &val
				} else {
					out.End = &val
				}
			}
			return out, nil
		},
		Format: func(r span.Range[T]) string { return span.Encode(r, single.Format) },
		Decode: func(attr string) (span.Range[T], bool) {
			r, err := span.Decode(attr, iso)
			return r, err == nil
		},
		Normalize: func(r span.Range[T]) (span.Range[T], error) {
			return span.Normalize(r, ops, p)
		},
		Equal: func(a, b span.Range[T]) bool {
			return ptrEqual(a.Start, b.Start, single.Equal) && ptrEqual(a.End, b.End, single.Equal)
		},
		Empty: span.Range[T].Empty,
	}
}

func ptrEqual[T any](a, b *T, eq func(a, b T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}

func decodeOrEmpty[T any](parse func(string) (T, bool)) func(string) (T, bool) {
	return func(s string) (T, bool) {
		var zero T
		if strings.TrimSpace(s) == "" {
			return zero, true
		}
		v, ok := parse(strings.TrimSpace(s))
		if !ok {
			return zero, false
		}
		return v, true
	}
}

func parseDateTime(raw string, cfg Config, cache *temporal.Cache) (temporal.DateTime, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return temporal.DateTime{}, nil
	}
	dt, ok := temporal.ParseDateTime(raw, cfg.Locale, cfg.Seconds, cache)
	if !ok {
		return temporal.DateTime{}, span.Invalid(span.ReasonParse, "date and time %q", raw)
	}
	return withSeconds(dt, cfg.Seconds), nil
}

func formatDateTime(dt temporal.DateTime, cfg Config) string {
	return withSeconds(dt, cfg.Seconds).String()
}

func withSeconds(dt temporal.DateTime, on bool) temporal.DateTime {
	if dt.IsZero() {
		return dt
	}
	dt.Time = dt.Time.WithSeconds(on)
	return dt
}
