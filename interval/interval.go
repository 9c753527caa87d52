/*
Package interval provides validated, inclusive ranges of calendar periods.

PURPOSE:
  Aggregation code walks a range of days, weeks or months and computes one
  result per period. An Interval is that range: a start and an end of the
  same granularity, checked at construction so that start <= end.

KEY CONCEPTS:
  - Interval:      closed union of DayInterval, WeekInterval, MonthInterval
  - Kind:          which granularity an Interval has; switch on it
  - Iterator:      a fresh forward cursor per call, start and end inclusive
  - Utility:       parses period tokens and keeps the recent-week catalog

USAGE:
  iv, err := interval.ParseDayInterval("2003", "10", "03", "2003", "10", "10")
  for day := range iv.All() {
      // 03-Nov-2003 .. 10-Nov-2003
  }

SEE ALSO:
  - period package: the Day, Week and Month values being ranged over
  - utility.go: token parsing and the week catalog
*/
package interval

import (
	"iter"
	"time"

	"github.com/warp/calendar-engine/period"
)

// =============================================================================
// KIND - Which period granularity an Interval ranges over
// =============================================================================

type Kind int

const (
	KindDay Kind = iota
	KindWeek
	KindMonth
)

func (k Kind) String() string {
	switch k {
	case KindDay:
		return "Day"
	case KindWeek:
		return "Week"
	case KindMonth:
		return "Month"
	default:
		return "Unknown"
	}
}

func (k Kind) noun() string {
	switch k {
	case KindDay:
		return "day"
	case KindWeek:
		return "week"
	case KindMonth:
		return "month"
	default:
		return "period"
	}
}

// =============================================================================
// INTERVAL - Closed union over the three granularities
// =============================================================================

// Interval is implemented only by DayInterval, WeekInterval and MonthInterval.
type Interval interface {
	Kind() Kind
	Start() period.TimePeriod
	End() period.TimePeriod
	// Len is the number of periods the interval yields.
	Len() int
	// Contains reports whether day falls inside any period of the interval.
	Contains(day period.Day) bool
	Equal(other Interval) bool
	String() string

	sealed()
}

// equal compares kind and endpoints. Endpoint types are comparable structs,
// so interface equality compares their values.
func equal(a, b Interval) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && a.Start() == b.Start() && a.End() == b.End()
}

func render(k Kind, start, end period.TimePeriod) string {
	return k.String() + " Interval : " + start.String() + " ~ " + end.String()
}

func validate[P period.Sequential[P]](k Kind, start, end P) error {
	if start.Compare(end) > 0 {
		return &IllegalIntervalError{Kind: k, Start: start, End: end}
	}
	return nil
}

// =============================================================================
// DAY INTERVAL
// =============================================================================

// DayInterval ranges over Days, start and end inclusive.
type DayInterval struct {
	start period.Day
	end   period.Day
}

// NewDayInterval validates start <= end.
func NewDayInterval(start, end period.Day) (DayInterval, error) {
	if err := validate(KindDay, start, end); err != nil {
		return DayInterval{}, err
	}
	return DayInterval{start: start, end: end}, nil
}

// ParseDayInterval builds a DayInterval from numeric tokens; months are
// zero-based, so ("2003", "10", "03") is 03-Nov-2003.
func ParseDayInterval(startYear, startMonth, startDay, endYear, endMonth, endDay string) (DayInterval, error) {
	start, err := period.ParseYMD(startYear, startMonth, startDay)
	if err != nil {
		return DayInterval{}, err
	}
	end, err := period.ParseYMD(endYear, endMonth, endDay)
	if err != nil {
		return DayInterval{}, err
	}
	return NewDayInterval(start, end)
}

func (i DayInterval) Kind() Kind                      { return KindDay }
func (i DayInterval) Start() period.TimePeriod        { return i.start }
func (i DayInterval) End() period.TimePeriod          { return i.end }
func (i DayInterval) StartDay() period.Day            { return i.start }
func (i DayInterval) EndDay() period.Day              { return i.end }
func (i DayInterval) Len() int                        { return period.DaysBetween(i.start, i.end) + 1 }
func (i DayInterval) Equal(other Interval) bool       { return equal(i, other) }
func (i DayInterval) String() string                  { return render(KindDay, i.start, i.end) }
func (i DayInterval) Iterator() *Iterator[period.Day] { return newIterator(i.start, i.end) }
func (i DayInterval) All() iter.Seq[period.Day]       { return all(i.start, i.end) }
func (DayInterval) sealed()                           {}

func (i DayInterval) Contains(day period.Day) bool {
	return !day.Before(i.start) && !day.After(i.end)
}

// =============================================================================
// WEEK INTERVAL
// =============================================================================

// WeekInterval ranges over Weeks, start and end inclusive.
type WeekInterval struct {
	start period.Week
	end   period.Week
}

// NewWeekInterval validates start <= end.
func NewWeekInterval(start, end period.Week) (WeekInterval, error) {
	if err := validate(KindWeek, start, end); err != nil {
		return WeekInterval{}, err
	}
	return WeekInterval{start: start, end: end}, nil
}

// ParseWeekInterval parses two week labels with the process-wide Utility.
func ParseWeekInterval(startLabel, endLabel string) (WeekInterval, error) {
	return Default().WeekInterval(startLabel, endLabel)
}

func (i WeekInterval) Kind() Kind                       { return KindWeek }
func (i WeekInterval) Start() period.TimePeriod         { return i.start }
func (i WeekInterval) End() period.TimePeriod           { return i.end }
func (i WeekInterval) StartWeek() period.Week           { return i.start }
func (i WeekInterval) EndWeek() period.Week             { return i.end }
func (i WeekInterval) Len() int                         { return period.DaysBetween(i.start.FirstDay(), i.end.FirstDay())/7 + 1 }
func (i WeekInterval) Equal(other Interval) bool        { return equal(i, other) }
func (i WeekInterval) String() string                   { return render(KindWeek, i.start, i.end) }
func (i WeekInterval) Iterator() *Iterator[period.Week] { return newIterator(i.start, i.end) }
func (i WeekInterval) All() iter.Seq[period.Week]       { return all(i.start, i.end) }
func (WeekInterval) sealed()                            {}

func (i WeekInterval) Contains(day period.Day) bool {
	return !day.Before(i.start.FirstDay()) && !day.After(i.end.LastDay())
}

// =============================================================================
// MONTH INTERVAL
// =============================================================================

// MonthInterval ranges over Months, start and end inclusive.
type MonthInterval struct {
	start period.Month
	end   period.Month
}

// NewMonthInterval validates start <= end.
func NewMonthInterval(start, end period.Month) (MonthInterval, error) {
	if err := validate(KindMonth, start, end); err != nil {
		return MonthInterval{}, err
	}
	return MonthInterval{start: start, end: end}, nil
}

// ParseMonthInterval builds a MonthInterval from numeric tokens with
// zero-based months: ("2003", "6", "2004", "0") is Jul-2003 ~ Jan-2004.
func ParseMonthInterval(startYear, startMonth, endYear, endMonth string) (MonthInterval, error) {
	start, err := parseMonth(startYear, startMonth)
	if err != nil {
		return MonthInterval{}, err
	}
	end, err := parseMonth(endYear, endMonth)
	if err != nil {
		return MonthInterval{}, err
	}
	return NewMonthInterval(start, end)
}

// MonthIntervalOf builds a MonthInterval from the months containing two instants.
func MonthIntervalOf(start, end time.Time) (MonthInterval, error) {
	return NewMonthInterval(period.MonthOfTime(start), period.MonthOfTime(end))
}

func parseMonth(year, month string) (period.Month, error) {
	day, err := period.ParseYMD(year, month, "1")
	if err != nil {
		return period.Month{}, err
	}
	return period.MonthOf(day), nil
}

func (i MonthInterval) Kind() Kind                        { return KindMonth }
func (i MonthInterval) Start() period.TimePeriod          { return i.start }
func (i MonthInterval) End() period.TimePeriod            { return i.end }
func (i MonthInterval) StartMonth() period.Month          { return i.start }
func (i MonthInterval) EndMonth() period.Month            { return i.end }
func (i MonthInterval) Equal(other Interval) bool         { return equal(i, other) }
func (i MonthInterval) String() string                    { return render(KindMonth, i.start, i.end) }
func (i MonthInterval) Iterator() *Iterator[period.Month] { return newIterator(i.start, i.end) }
func (i MonthInterval) All() iter.Seq[period.Month]       { return all(i.start, i.end) }
func (MonthInterval) sealed()                             {}

func (i MonthInterval) Len() int {
	return (i.end.Year()-i.start.Year())*12 + i.end.Month() - i.start.Month() + 1
}

func (i MonthInterval) Contains(day period.Day) bool {
	return !day.Before(i.start.FirstDay()) && !day.After(i.end.LastDay())
}

var (
	_ Interval = DayInterval{}
	_ Interval = WeekInterval{}
	_ Interval = MonthInterval{}
)
