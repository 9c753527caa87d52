package period

import (
	"errors"
	"fmt"
)

// ErrParse is returned (wrapped in a *ParseError) when a string cannot be
// turned into a calendar value.
var ErrParse = errors.New("cannot parse calendar value")

// ParseError carries the offending input. Layout names the expected format.
type ParseError struct {
	Input  string
	Layout string
	Err    error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Layout, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Layout)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
