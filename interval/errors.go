/*
errors.go - Error types for intervals, iterators and the interval utility

ERROR CATEGORIES:
  1. Construction errors - start after end (IllegalIntervalError)
  2. Argument errors     - labels that cannot be parsed (IllegalArgumentError)
  3. Iteration signals   - ErrNoMoreElements, ErrUnsupportedOperation

USAGE:
  iv, err := interval.NewDayInterval(start, end)
  if errors.Is(err, interval.ErrIllegalInterval) {
      // start was after end; nothing is auto-corrected
  }

Day and token parse failures surface as *period.ParseError.
*/
package interval

import (
	"errors"
	"fmt"

	"github.com/warp/calendar-engine/period"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIllegalInterval is returned when an interval's start is after its end.
	ErrIllegalInterval = errors.New("illegal interval: start after end")

	// ErrNoMoreElements is returned by Iterator.Next once the end is passed.
	// It is the normal terminal signal, not a failure.
	ErrNoMoreElements = errors.New("no more elements in interval")

	// ErrUnsupportedOperation is returned by Iterator.Remove.
	ErrUnsupportedOperation = errors.New("operation not supported by interval iterator")

	// ErrIllegalArgument is returned for malformed week labels.
	ErrIllegalArgument = errors.New("illegal argument")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// IllegalIntervalError carries both endpoints of a rejected interval.
type IllegalIntervalError struct {
	Kind  Kind
	Start period.TimePeriod
	End   period.TimePeriod
}

func (e *IllegalIntervalError) Error() string {
	return fmt.Sprintf("start %s %s is later than end %s %s",
		e.Kind.noun(), e.Start, e.Kind.noun(), e.End)
}

func (e *IllegalIntervalError) Unwrap() error {
	return ErrIllegalInterval
}

// IllegalArgumentError reports an input that is not well formatted.
type IllegalArgumentError struct {
	Value string
	Err   error
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("week string %q is not well formatted: %v", e.Value, e.Err)
}

func (e *IllegalArgumentError) Unwrap() []error {
	return []error{ErrIllegalArgument, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrIllegalInterval) ||
		errors.Is(err, ErrIllegalArgument) ||
		errors.Is(err, period.ErrParse)
}
