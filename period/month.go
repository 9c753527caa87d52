package period

import (
	"fmt"
	"time"
)

// =============================================================================
// MONTH - All Days of one calendar month
// =============================================================================

// Month is a calendar month. The month field is zero-based (0 = January).
type Month struct {
	year  int
	month int
}

// NewMonth returns the Month for year and zero-based month. Out of range
// months roll over into neighbouring years: NewMonth(2003, 12) is Jan-2004.
func NewMonth(year, month int) Month {
	t := time.Date(year, time.Month(month+1), 1, 12, 0, 0, 0, Zone)
	return Month{year: t.Year(), month: int(t.Month()) - 1}
}

// MonthOf returns the Month containing day.
func MonthOf(day Day) Month { return Month{year: day.Year(), month: day.MonthIndex()} }

// MonthOfTime returns the Month containing t, as seen in Zone.
func MonthOfTime(t time.Time) Month { return MonthOf(FromTime(t)) }

// ThisMonth returns the Month containing Today.
func ThisMonth() Month { return MonthOf(Today()) }

// Properties
func (m Month) Year() int  { return m.year }
func (m Month) Month() int { return m.month }

// NumDays returns 28 to 31, leap-year aware.
func (m Month) NumDays() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.year, time.Month(m.month+2), 0, 12, 0, 0, 0, Zone).Day()
}

func (m Month) FirstDay() Day { return FromYMD(m.year, m.month, 1) }
func (m Month) LastDay() Day  { return FromYMD(m.year, m.month, m.NumDays()) }

// FirstWeek and LastWeek may extend into the neighbouring months.
func (m Month) FirstWeek() Week { return WeekOf(m.FirstDay()) }
func (m Month) LastWeek() Week  { return WeekOf(m.LastDay()) }

// Days returns every Day of the Month in order. The slice is a fresh copy.
func (m Month) Days() []Day {
	n := m.NumDays()
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, FromYMD(m.year, m.month, d))
	}
	return days
}

// Contains returns true if day falls in the Month.
func (m Month) Contains(day Day) bool { return MonthOf(day) == m }

// Arithmetic

// Dec returns the previous Month, rolling January back to December of the
// previous year. Inc is symmetric.
func (m Month) Dec() Month {
	if m.month == 0 {
		return Month{year: m.year - 1, month: 11}
	}
	return Month{year: m.year, month: m.month - 1}
}

func (m Month) Inc() Month {
	if m.month == 11 {
		return Month{year: m.year + 1, month: 0}
	}
	return Month{year: m.year, month: m.month + 1}
}

func (m Month) Next() Month { return m.Inc() }
func (m Month) Prev() Month { return m.Dec() }

// Comparison
func (m Month) Compare(other Month) int {
	if m.year != other.year {
		return cmpInt(m.year, other.year)
	}
	return cmpInt(m.month, other.month)
}

func (m Month) Equal(other Month) bool { return m == other }
func (m Month) IsZero() bool           { return m == Month{} }

// String renders the Month as "Jan-2003".
func (m Month) String() string {
	return fmt.Sprintf("%s-%04d", time.Month(m.month+1).String()[:3], m.year)
}
