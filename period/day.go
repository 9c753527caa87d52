/*
Package period provides the calendar period value types.

PURPOSE:
  Sensor data is aggregated per day, per week and per month. This package
  holds the values those aggregations are keyed on. Every value is a
  calendar date (or a run of them) in a single fixed zone, never an instant.

KEY CONCEPTS:
  - Day:      one calendar date, independent of time-of-day
  - Week:     seven consecutive Days starting on WeekStart
  - Month:    all Days of a calendar month
  - DayCache: deduplicates Day construction around process start

INVARIANTS:
  1. Two Days built from any two instants of the same calendar date are ==
  2. Day arithmetic is calendar arithmetic, so DST transitions never drift
  3. Every value is immutable; share freely across goroutines

USAGE:
  day := period.FromYMD(2004, 0, 1)          // 01-Jan-2004, month is zero-based
  week := period.WeekOf(day)                 // 28-Dec-2003 to 03-Jan-2004
  next := day.Inc(30)

SEE ALSO:
  - cache.go: DayCache window and DST correction
  - interval package: ranges and iterators over these values
*/
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Day layouts.
const (
	DayLayout    = "02-Jan-2006" // 01-Jan-2004
	SimpleLayout = "2006-01-02"  // 2004-01-01

	dayParseLayout = "2-Jan-2006"
)

// =============================================================================
// DAY - A calendar date without time-of-day
// =============================================================================

// Day is a calendar date in Zone. The zero value is not a valid Day.
type Day struct {
	year  int
	month time.Month
	day   int
}

// Constructors

// Today returns the current Day.
func Today() Day { return FromTime(time.Now()) }

// FromTime returns the Day containing t, as seen in Zone.
func FromTime(t time.Time) Day {
	y, m, d := t.In(Zone).Date()
	return Day{year: y, month: m, day: d}
}

// FromTimestamp returns the Day containing the Unix millisecond timestamp ms.
func FromTimestamp(ms int64) Day { return FromTime(time.UnixMilli(ms)) }

// NewDay returns the Day for year/month/day. Out of range values roll over
// the way time.Date does: NewDay(2003, time.April, 31) is 01-May-2003.
func NewDay(year int, month time.Month, day int) Day {
	// noon keeps normalisation clear of any midnight DST gap
	return FromTime(time.Date(year, month, day, 12, 0, 0, 0, Zone))
}

// FromYMD is NewDay with a zero-based month (0 = January).
func FromYMD(year, month, day int) Day {
	return NewDay(year, time.Month(month+1), day)
}

// Parse reads a Day in dd-Mon-yyyy form, e.g. "01-Jan-2004".
func Parse(s string) (Day, error) {
	t, err := time.ParseInLocation(dayParseLayout, strings.TrimSpace(s), Zone)
	if err != nil {
		return Day{}, &ParseError{Input: s, Layout: DayLayout, Err: err}
	}
	return FromTime(t), nil
}

// ParseSimple reads a Day in yyyy-MM-dd form.
func ParseSimple(s string) (Day, error) { return ParseLayout(s, SimpleLayout) }

// ParseLayout reads a Day using a time package layout.
func ParseLayout(s, layout string) (Day, error) {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(s), Zone)
	if err != nil {
		return Day{}, &ParseError{Input: s, Layout: layout, Err: err}
	}
	return FromTime(t), nil
}

// ParseYMD reads numeric year, zero-based month and day tokens such as
// "2004", "00", "01". Values roll over like FromYMD.
func ParseYMD(year, month, day string) (Day, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Day{}, &ParseError{Input: year, Layout: "year", Err: err}
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return Day{}, &ParseError{Input: month, Layout: "month", Err: err}
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return Day{}, &ParseError{Input: day, Layout: "day", Err: err}
	}
	return FromYMD(y, m, d), nil
}

// Comparison
func (d Day) Compare(other Day) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Day) Equal(other Day) bool  { return d == other }
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }
func (d Day) After(other Day) bool  { return d.Compare(other) > 0 }

// Arithmetic

// Inc returns the Day n days away; n may be negative.
func (d Day) Inc(n int) Day { return NewDay(d.year, d.month, d.day+n) }
func (d Day) Next() Day     { return d.Inc(1) }
func (d Day) Prev() Day     { return d.Inc(-1) }

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Day) int { return RoundDays(b.FirstTick() - a.FirstTick()) }

// RoundDays converts a millisecond span to whole days, rounding half away
// from zero so that RoundDays(-x) == -RoundDays(x).
func RoundDays(ms int64) int {
	q := decimal.NewFromInt(ms).DivRound(decimal.NewFromInt(millisPerDay), 0)
	return int(q.IntPart())
}

// Properties
func (d Day) Year() int               { return d.year }
func (d Day) Month() time.Month       { return d.month }
func (d Day) MonthIndex() int         { return int(d.month) - 1 }
func (d Day) DayOfMonth() int         { return d.day }
func (d Day) Weekday() time.Weekday   { return d.Time().Weekday() }
func (d Day) IsZero() bool            { return d == Day{} }
func (d Day) FirstDay() Day           { return d }
func (d Day) LastDay() Day            { return d }
func (d Day) Contains(other Day) bool { return d == other }

// Time returns midnight at the start of the Day in Zone.
func (d Day) Time() time.Time { return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, Zone) }

// FirstTick is the Unix millisecond of the Day's first instant.
func (d Day) FirstTick() int64 { return d.Time().UnixMilli() }

// LastTick is the Unix millisecond of the Day's last instant, 23:59:59.999.
func (d Day) LastTick() int64 { return d.Next().FirstTick() - 1 }

// String formats

func (d Day) String() string            { return d.Time().Format(DayLayout) }
func (d Day) SimpleString() string      { return d.Time().Format(SimpleLayout) }
func (d Day) DayString() string         { return fmt.Sprintf("%02d", d.day) }
func (d Day) MonthString() string       { return fmt.Sprintf("%02d", int(d.month)) }
func (d Day) YearString() string        { return fmt.Sprintf("%04d", d.year) }
func (d Day) MediumMonthString() string { return d.month.String()[:3] }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
