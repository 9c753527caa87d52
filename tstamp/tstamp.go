/*
Package tstamp provides helpers over absolute instants.

PURPOSE:
  Sensor data and project boundaries are stamped with instants rather than
  calendar days. A timestamp here is a plain time.Time; these helpers parse
  the lexical forms the data arrives in and compare at millisecond
  resolution, which is the precision the data carries.

EQUALITY:
  Equal compares millisecond instants. Two values that print differently
  (different zones, sub-millisecond noise) can still be Equal. Comparing
  time.Time values with == is not the same thing and should not be used.

FORMATS ACCEPTED BY Parse:
  2007-08-01T01:01:20.200-04:00
  2007-08-01T01:01:20.200        (Zone)
  2007-08-01-04:00
  2007-08-01                     (midnight in Zone)
*/
package tstamp

import (
	"slices"
	"time"

	"github.com/warp/calendar-engine/period"
)

// Layout is the canonical output form, millisecond precision with offset.
const Layout = "2006-01-02T15:04:05.000Z07:00"

// Fractional seconds are accepted after the seconds field on parse even
// though these layouts do not spell them out.
var layouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02Z07:00",
	"2006-01-02",
}

// bogusThreshold: instants before this are leftovers from clients with
// unset clocks.
var bogusThreshold = time.Date(2000, time.January, 1, 0, 0, 0, 0, period.Zone)

// =============================================================================
// CONSTRUCTION
// =============================================================================

// Parse reads s in any of the accepted forms. Forms without an offset are
// read in period.Zone.
func Parse(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, period.Zone)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &period.ParseError{Input: s, Layout: "timestamp", Err: lastErr}
}

// IsValid reports whether Parse accepts s.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Now is the current instant truncated to milliseconds, in period.Zone.
func Now() time.Time {
	return time.Now().Round(0).Truncate(time.Millisecond).In(period.Zone)
}

func FromMillis(ms int64) time.Time { return time.UnixMilli(ms).In(period.Zone) }

// FromDay is midnight at the start of day.
func FromDay(day period.Day) time.Time { return day.Time() }

// ToDay is the calendar day containing t in period.Zone.
func ToDay(t time.Time) period.Day { return period.FromTime(t) }

// DefaultProjectStartTime is the start of a project with no explicit start.
func DefaultProjectStartTime() time.Time {
	return time.Date(1000, time.January, 1, 0, 0, 0, 0, period.Zone)
}

// DefaultProjectEndTime is the end of a project with no explicit end.
func DefaultProjectEndTime() time.Time {
	return time.Date(3000, time.January, 1, 23, 59, 59, int(999*time.Millisecond), period.Zone)
}

func Format(t time.Time) string { return t.In(period.Zone).Format(Layout) }

// =============================================================================
// ARITHMETIC
// =============================================================================

// IncrementDays moves t by n calendar days, keeping the wall clock time
// across DST changes.
func IncrementDays(t time.Time, n int) time.Time {
	return t.In(period.Zone).AddDate(0, 0, n)
}

func IncrementHours(t time.Time, n int) time.Time   { return t.Add(time.Duration(n) * time.Hour) }
func IncrementMinutes(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Minute) }
func IncrementSeconds(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Second) }

// Diff is b minus a in milliseconds.
func Diff(a, b time.Time) int64 { return b.UnixMilli() - a.UnixMilli() }

// DaysBetween is the number of days from a to b, rounded to the nearest
// whole day so 23 and 25 hour DST days still count as one.
func DaysBetween(a, b time.Time) int { return period.RoundDays(Diff(a, b)) }

// =============================================================================
// COMPARISON
// =============================================================================

// InBetween reports start <= t <= end.
func InBetween(start, t, end time.Time) bool {
	ms := t.UnixMilli()
	return start.UnixMilli() <= ms && ms <= end.UnixMilli()
}

func GreaterThan(a, b time.Time) bool { return a.UnixMilli() > b.UnixMilli() }
func LessThan(a, b time.Time) bool    { return a.UnixMilli() < b.UnixMilli() }
func Equal(a, b time.Time) bool       { return a.UnixMilli() == b.UnixMilli() }

// Sort orders ts ascending in place and returns it.
func Sort(ts []time.Time) []time.Time {
	slices.SortStableFunc(ts, func(a, b time.Time) int { return a.Compare(b) })
	return ts
}

// IsBogusStartTime reports whether t predates 2000-01-01 in period.Zone.
func IsBogusStartTime(t time.Time) bool { return t.Before(bogusThreshold) }

// IsTodayOrLater reports whether t is at or after the start of today.
func IsTodayOrLater(t time.Time) bool {
	return t.UnixMilli() >= period.Today().FirstTick()
}

// IsYesterdayOrLater reports whether t is at or after the start of yesterday.
func IsYesterdayOrLater(t time.Time) bool {
	return t.UnixMilli() >= period.Today().Prev().FirstTick()
}
