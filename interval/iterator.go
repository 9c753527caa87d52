package interval

import (
	"iter"

	"github.com/warp/calendar-engine/period"
)

// =============================================================================
// ITERATOR - Forward cursor over an Interval, both ends inclusive
// =============================================================================

// Iterator walks from an interval's start to its end. Every call to an
// interval's Iterator method returns a new, independent cursor; the
// interval itself holds no cursor state.
type Iterator[P period.Sequential[P]] struct {
	end     P
	current P // last period handed out; starts one step before start
}

func newIterator[P period.Sequential[P]](start, end P) *Iterator[P] {
	return &Iterator[P]{end: end, current: start.Prev()}
}

// HasNext reports whether Next will return another period.
func (it *Iterator[P]) HasNext() bool {
	return it.current.Compare(it.end) < 0
}

// Next advances one period. Past the end it returns ErrNoMoreElements and
// the cursor stays where it was.
func (it *Iterator[P]) Next() (P, error) {
	next := it.current.Next()
	if next.Compare(it.end) > 0 {
		var zero P
		return zero, ErrNoMoreElements
	}
	it.current = next
	return next, nil
}

// Remove is not supported; intervals are immutable.
func (it *Iterator[P]) Remove() error {
	return ErrUnsupportedOperation
}

// Collect drains the iterator into a slice.
func (it *Iterator[P]) Collect() []P {
	var out []P
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, p)
	}
	return out
}

func all[P period.Sequential[P]](start, end P) iter.Seq[P] {
	return func(yield func(P) bool) {
		it := newIterator(start, end)
		for it.HasNext() {
			p, err := it.Next()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}
