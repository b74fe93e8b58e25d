package span

import (
	"encoding/json"
	"strings"
)

type wireRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Encode renders r as the {"start":..,"end":..} attribute. Absent endpoints
// are omitted and an empty range encodes to "", meaning the attribute is
// removed.
func Encode[T any](r Range[T], format func(T) string) string {
	if r.Empty() {
		return ""
	}
	var w wireRange
	if r.Start != nil {
		w.Start = format(*r.Start)
	}
	if r.End != nil {
		w.End = format(*r.End)
	}
	b, err := json.Marshal(w)
	if err != nil {
		return ""
	}
	return string(b)
}

// Decode reads the attribute form back. Blank input is the empty range.
func Decode[T any](raw string, parse func(string) (T, bool)) (Range[T], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Range[T]{}, nil
	}
	var w wireRange
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return Range[T]{}, Invalid(ReasonParse, "range attribute: %v", err)
	}
	var out Range[T]
	if w.Start != "" {
		v, ok := parse(w.Start)
		if !ok {
			return Range[T]{}, Invalid(ReasonParse, "range start %q", w.Start)
		}
		out.Start = &v
	}
	if w.End != "" {
		v, ok := parse(w.End)
		if !ok {
			return Range[T]{}, Invalid(ReasonParse, "range end %q", w.End)
		}
		out.End = &v
	}
	return out, nil
}
