/*
utility.go - Period token parsing and the recent-week catalog

PURPOSE:
  Forms that pick a day, month, year or week offer fixed option lists and
  send back strings. Utility turns those strings back into periods and
  maintains the catalog of the last 52 weeks shown in week pickers.

CATALOG:
  - Labels look like "28-Dec-2003 to 03-Jan-2004"
  - Newest first
  - Rebuilt the first time it is read after today leaves the newest week

CONCURRENCY:
  Option lists are immutable after construction. The week catalog is guarded
  by an RWMutex; a stale catalog is rebuilt once under the write lock.

DIAGNOSTICS:
  Utility never logs. Malformed week labels are reported to the optional
  Diagnostics sink and returned as *IllegalArgumentError.
*/
package interval

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/warp/calendar-engine/period"
)

const (
	firstYearOption = 2000
	lastYearOption  = 2019
	catalogWeeks    = 52
	labelDayLen     = len("01-Jan-2004")
)

// Diagnostics receives warnings about bad input. *zap.SugaredLogger
// satisfies it.
type Diagnostics interface {
	Warnw(msg string, keysAndValues ...any)
}

// CatalogObserver is told each time the week catalog is (re)built.
type CatalogObserver interface {
	CatalogRebuilt(size int)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnw(string, ...any) {}

type nopCatalogObserver struct{}

func (nopCatalogObserver) CatalogRebuilt(int) {}

// Option configures a Utility.
type Option func(*Utility)

// WithClock replaces time.Now; the catalog is anchored on the clock's Day.
func WithClock(now func() time.Time) Option {
	return func(u *Utility) {
		if now != nil {
			u.now = now
		}
	}
}

// WithDiagnostics routes bad-input warnings to d.
func WithDiagnostics(d Diagnostics) Option {
	return func(u *Utility) {
		if d != nil {
			u.diag = d
		}
	}
}

// WithCatalogObserver reports catalog rebuilds to o.
func WithCatalogObserver(o CatalogObserver) Option {
	return func(u *Utility) {
		if o != nil {
			u.observer = o
		}
	}
}

// =============================================================================
// UTILITY
// =============================================================================

// Utility parses period tokens and owns the week catalog.
type Utility struct {
	now      func() time.Time
	diag     Diagnostics
	observer CatalogObserver

	years  []string
	days   []string
	months map[string]string

	mu     sync.RWMutex
	weeks  []string    // newest first
	newest period.Week // week of weeks[0]
}

// NewUtility builds a Utility and fills the week catalog.
func NewUtility(opts ...Option) *Utility {
	u := &Utility{
		now:      time.Now,
		diag:     nopDiagnostics{},
		observer: nopCatalogObserver{},
	}
	for _, opt := range opts {
		opt(u)
	}

	for y := firstYearOption; y <= lastYearOption; y++ {
		u.years = append(u.years, strconv.Itoa(y))
	}
	for d := 1; d <= 31; d++ {
		u.days = append(u.days, twoDigits(d))
	}
	u.months = make(map[string]string, 12)
	for m := time.January; m <= time.December; m++ {
		u.months[m.String()] = twoDigits(int(m) - 1)
	}

	u.mu.Lock()
	u.rebuildLocked()
	u.mu.Unlock()
	return u
}

var defaultUtility = sync.OnceValue(func() *Utility { return NewUtility() })

// Default returns the process-wide Utility, built on first use.
func Default() *Utility { return defaultUtility() }

// =============================================================================
// OPTION LISTS
// =============================================================================

// YearOptions returns "2000" through "2019".
func (u *Utility) YearOptions() []string { return slices.Clone(u.years) }

// DayOptions returns "01" through "31".
func (u *Utility) DayOptions() []string { return slices.Clone(u.days) }

// MonthOptions maps English month names to zero-based indexes: "January" -> "00".
func (u *Utility) MonthOptions() map[string]string {
	out := make(map[string]string, len(u.months))
	for k, v := range u.months {
		out[k] = v
	}
	return out
}

// WeekOptions returns the catalog labels, newest first, rebuilding the
// catalog when today is no longer in its newest week, in either direction.
func (u *Utility) WeekOptions() []string {
	today := u.today()

	u.mu.RLock()
	if !u.staleLocked(today) {
		weeks := slices.Clone(u.weeks)
		u.mu.RUnlock()
		return weeks
	}
	u.mu.RUnlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.staleLocked(today) {
		u.rebuildLocked()
	}
	return slices.Clone(u.weeks)
}

func (u *Utility) staleLocked(today period.Day) bool {
	return today.After(u.newest.LastDay()) || today.Before(u.newest.FirstDay())
}

func (u *Utility) rebuildLocked() {
	today := u.today()
	start := period.WeekOf(today.Inc(-catalogWeeks * 7))
	end := period.WeekOf(today)

	weeks := make([]string, 0, catalogWeeks+1)
	for w := end; w.Compare(start) >= 0; w = w.Dec() {
		weeks = append(weeks, w.Label())
	}
	u.weeks = weeks
	u.newest = end
	u.observer.CatalogRebuilt(len(weeks))
}

// =============================================================================
// PARSERS
// =============================================================================

// ParseWeek returns the Week whose label starts with a dd-Mon-yyyy day, as
// in "28-Dec-2003 to 03-Jan-2004". A bare day string is accepted too.
func (u *Utility) ParseWeek(label string) (period.Week, error) {
	if len(label) < labelDayLen {
		err := &period.ParseError{Input: label, Layout: period.DayLayout}
		u.diag.Warnw("cannot parse first day of week label", "label", label, "error", err)
		return period.Week{}, &IllegalArgumentError{Value: label, Err: err}
	}
	day, err := period.Parse(label[:labelDayLen])
	if err != nil {
		u.diag.Warnw("cannot parse first day of week label", "label", label, "error", err)
		return period.Week{}, &IllegalArgumentError{Value: label, Err: err}
	}
	return period.WeekOf(day), nil
}

// ParseDay reads numeric year, zero-based month and day tokens.
func (u *Utility) ParseDay(year, month, day string) (period.Day, error) {
	return period.ParseYMD(year, month, day)
}

// WeekInterval parses two week labels into a WeekInterval.
func (u *Utility) WeekInterval(startLabel, endLabel string) (WeekInterval, error) {
	start, err := u.ParseWeek(startLabel)
	if err != nil {
		return WeekInterval{}, err
	}
	end, err := u.ParseWeek(endLabel)
	if err != nil {
		return WeekInterval{}, err
	}
	return NewWeekInterval(start, end)
}

// DayInterval parses numeric tokens into a DayInterval.
func (u *Utility) DayInterval(startYear, startMonth, startDay, endYear, endMonth, endDay string) (DayInterval, error) {
	return ParseDayInterval(startYear, startMonth, startDay, endYear, endMonth, endDay)
}

// =============================================================================
// CURRENT VALUES
// =============================================================================

func (u *Utility) CurrentYear() string  { return u.today().YearString() }
func (u *Utility) CurrentMonth() string { return u.today().MonthString() }
func (u *Utility) CurrentDay() string   { return u.today().DayString() }

// CurrentWeek returns the newest catalog label, the week containing today.
func (u *Utility) CurrentWeek() string {
	return u.WeekOptions()[0]
}

func (u *Utility) today() period.Day { return period.FromTime(u.now()) }

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
