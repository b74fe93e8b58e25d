// Package span implements two-ended ranges of temporal values and the
// normalization pass that repairs or rejects them.
package span

import (
	"fmt"
)

// Range holds an optional start and end. A nil endpoint is absent.
type Range[T any] struct {
	Start *T
	End   *T
}

// Of builds a range from two present endpoints.
func Of[T any](start, end T) Range[T] {
	return Range[T]{Start: &start, End: &end}
}

// Partial reports whether exactly one endpoint is present.
func (r Range[T]) Partial() bool {
	return (r.Start == nil) != (r.End == nil)
}

// Empty reports whether neither endpoint is present.
func (r Range[T]) Empty() bool {
	return r.Start == nil && r.End == nil
}

// Complete reports whether both endpoints are present.
func (r Range[T]) Complete() bool {
	return r.Start != nil && r.End != nil
}

// WithStart returns a copy of r with the start replaced.
func (r Range[T]) WithStart(v *T) Range[T] {
	return Range[T]{Start: clonePtr(v), End: clonePtr(r.End)}
}

// WithEnd returns a copy of r with the end replaced.
func (r Range[T]) WithEnd(v *T) Range[T] {
	return Range[T]{Start: clonePtr(r.Start), End: clonePtr(v)}
}

// Clone copies the endpoints so callers can keep r immutable.
func (r Range[T]) Clone() Range[T] {
	return Range[T]{Start: clonePtr(r.Start), End: clonePtr(r.End)}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Reason classifies why a value was rejected.
type Reason string

const (
	// ReasonParse means text could not be read as a date or time.
	ReasonParse Reason = "parse"
	// ReasonRange means the endpoints are malformed relative to each other.
	ReasonRange Reason = "range"
	// ReasonOrder means the start is after the end and reordering is off.
	ReasonOrder Reason = "order"
	// ReasonPartial means one endpoint is missing and partial ranges are off.
	ReasonPartial Reason = "partial"
)

// InvalidError reports a rejected value.
type InvalidError struct {
	Reason Reason
	Detail string
}

func (e *InvalidError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid value: %s", e.Reason)
	}
	return fmt.Sprintf("invalid value: %s: %s", e.Reason, e.Detail)
}

// Invalid is shorthand for building an *InvalidError.
func Invalid(reason Reason, format string, args ...any) *InvalidError {
	return &InvalidError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
