package period

// =============================================================================
// WEEK - Seven consecutive Days starting on WeekStart
// =============================================================================

// Week spans first..last inclusive, where first falls on WeekStart and last
// is first+6. Any Day inside the Week builds an equal Week.
type Week struct {
	first Day
	last  Day
}

// WeekOf returns the Week containing day.
func WeekOf(day Day) Week {
	offset := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	first := day.Inc(-offset)
	return Week{first: first, last: first.Inc(6)}
}

// ThisWeek returns the Week containing Today.
func ThisWeek() Week { return WeekOf(Today()) }

func (w Week) FirstDay() Day { return w.first }
func (w Week) LastDay() Day  { return w.last }

// Days returns the seven Days of the Week in order. The slice is a fresh copy.
func (w Week) Days() []Day {
	days := make([]Day, 0, 7)
	for d := w.first; !d.After(w.last); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Contains returns true if day is within [FirstDay, LastDay].
func (w Week) Contains(day Day) bool {
	return !day.Before(w.first) && !day.After(w.last)
}

// Dec returns the previous Week. Inc returns the following one. Both go
// through WeekOf so the result is re-anchored on WeekStart.
func (w Week) Dec() Week  { return WeekOf(w.first.Inc(-7)) }
func (w Week) Inc() Week  { return WeekOf(w.last.Inc(7)) }
func (w Week) Next() Week { return w.Inc() }
func (w Week) Prev() Week { return w.Dec() }

func (w Week) Compare(other Week) int { return w.first.Compare(other.first) }
func (w Week) Equal(other Week) bool  { return w.first == other.first }
func (w Week) IsZero() bool           { return w.first.IsZero() }

// Label renders the Week as "28-Dec-2003 to 03-Jan-2004".
func (w Week) Label() string { return w.first.String() + " to " + w.last.String() }

// String renders the last Day of the Week, e.g. "03-Jan-2004".
func (w Week) String() string { return w.last.String() }
