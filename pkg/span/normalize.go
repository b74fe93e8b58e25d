package span

// Policy controls how Normalize treats ordering, partial ranges and ranges
// that start and end on the same day.
type Policy struct {
	AutoNormalize bool
	AllowPartial  bool
	AllowSameDay  bool
}

// DefaultPolicy swaps reversed endpoints and allows partial and same-day
// ranges.
func DefaultPolicy() Policy {
	return Policy{AutoNormalize: true, AllowPartial: true, AllowSameDay: true}
}

// Ops supplies the value specific operations Normalize needs. Clamp and
// SameDay are optional; SameDay defaults to Compare == 0.
type Ops[T any] struct {
	Compare func(a, b T) int
	Clamp   func(v T) T
	SameDay func(a, b T) bool
}

// Normalize clamps each endpoint, then enforces ordering, the partial range
// policy and the same-day policy, in that order. The input is not modified.
func Normalize[T any](r Range[T], ops Ops[T], p Policy) (Range[T], error) {
	out := r.Clone()
	if ops.Clamp != nil {
		if out.Start != nil {
			v := ops.Clamp(*out.Start)
			out.Start = &v
		}
		if out.End != nil {
			v := ops.Clamp(*out.End)
			out.End = &v
		}
	}

	if out.Complete() && ops.Compare(*out.Start, *out.End) > 0 {
		if !p.AutoNormalize {
			return r, Invalid(ReasonOrder, "start is after end")
		}
		out.Start, out.End = out.End, out.Start
	}

	if out.Partial() && !p.AllowPartial {
		return r, Invalid(ReasonPartial, "both start and end are required")
	}

	if out.Complete() && !p.AllowSameDay {
		same := ops.SameDay
		if same == nil {
			same = func(a, b T) bool { return ops.Compare(a, b) == 0 }
		}
		if same(*out.Start, *out.End) {
			return r, Invalid(ReasonRange, "start and end fall on the same day")
		}
	}

	return out, nil
}
