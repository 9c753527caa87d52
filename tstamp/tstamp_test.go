package tstamp_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/period"
	"github.com/warp/calendar-engine/tstamp"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := tstamp.Parse(s)
	require.NoError(t, err, s)
	return ts
}

// =============================================================================
// PARSING
// =============================================================================

func TestParse_AcceptedForms(t *testing.T) {
	cases := map[string]time.Time{
		"2007-08-01":                    time.Date(2007, time.August, 1, 0, 0, 0, 0, period.Zone),
		"2007-08-01T01:01:20":           time.Date(2007, time.August, 1, 1, 1, 20, 0, period.Zone),
		"2007-08-01T01:01:20.200":       time.Date(2007, time.August, 1, 1, 1, 20, int(200*time.Millisecond), period.Zone),
		"2007-08-01T05:01:20Z":          time.Date(2007, time.August, 1, 1, 1, 20, 0, period.Zone),
		"2007-08-01T01:01:20.200-04:00": time.Date(2007, time.August, 1, 1, 1, 20, int(200*time.Millisecond), period.Zone),
		"2007-08-01-04:00":              time.Date(2007, time.August, 1, 0, 0, 0, 0, period.Zone),
	}
	for in, want := range cases {
		got, err := tstamp.Parse(in)
		require.NoError(t, err, in)
		assert.True(t, tstamp.Equal(want, got), "%s: got %s", in, got)
		assert.True(t, tstamp.IsValid(in), in)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2007-13-01", "01-Aug-2007"} {
		_, err := tstamp.Parse(in)
		assert.ErrorIs(t, err, period.ErrParse, in)
		assert.False(t, tstamp.IsValid(in), in)
	}
}

func TestFormat_RoundTrips(t *testing.T) {
	ts := mustParse(t, "2007-08-01T01:01:20.200")
	assert.Equal(t, "2007-08-01T01:01:20.200-04:00", tstamp.Format(ts))
	assert.True(t, tstamp.Equal(ts, mustParse(t, tstamp.Format(ts))))
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func TestArithmetic(t *testing.T) {
	date1 := mustParse(t, "2007-08-01")
	date2 := mustParse(t, "2007-08-02")

	assert.True(t, tstamp.Equal(date1, date1))
	assert.True(t, tstamp.Equal(date2, tstamp.IncrementDays(date1, 1)))
	assert.True(t, tstamp.Equal(mustParse(t, "2007-08-01T01:00:00"), tstamp.IncrementHours(date1, 1)))
	assert.True(t, tstamp.Equal(mustParse(t, "2007-08-01T00:01:00"), tstamp.IncrementMinutes(date1, 1)))
	assert.True(t, tstamp.Equal(mustParse(t, "2007-08-01T00:00:01"), tstamp.IncrementSeconds(date1, 1)))
}

func TestIncrementDays_KeepsWallClockAcrossDST(t *testing.T) {
	before := time.Date(2024, time.March, 9, 9, 0, 0, 0, period.Zone)

	after := tstamp.IncrementDays(before, 1)

	assert.Equal(t, 9, after.Hour())
	assert.EqualValues(t, 23*time.Hour/time.Millisecond, tstamp.Diff(before, after))
	assert.Equal(t, 1, tstamp.DaysBetween(before, after))
}

func TestDiff(t *testing.T) {
	date1 := mustParse(t, "2007-08-01T01:00:00.000")
	date2 := mustParse(t, "2007-08-01T01:01:20.200")
	date3 := mustParse(t, "2007-08-01T01:01:20.400")

	assert.EqualValues(t, 80200, tstamp.Diff(date1, date2))
	assert.EqualValues(t, 200, tstamp.Diff(date2, date3))
	assert.EqualValues(t, -200, tstamp.Diff(date3, date2))
}

func TestDaysBetween_WholeYear(t *testing.T) {
	// GIVEN: Now, and every day for the next year
	today := tstamp.Now()

	// THEN: DaysBetween counts calendar days through both DST changes
	assert.Equal(t, 0, tstamp.DaysBetween(today, today))
	for i := 1; i <= 365; i++ {
		assert.Equal(t, i, tstamp.DaysBetween(today, tstamp.IncrementDays(today, i)), "day %d", i)
	}
}

// =============================================================================
// COMPARISON
// =============================================================================

func TestComparison(t *testing.T) {
	date1 := mustParse(t, "2007-08-01")
	date2 := mustParse(t, "2007-08-02")
	date3 := mustParse(t, "2007-08-03")

	assert.True(t, tstamp.GreaterThan(date2, date1))
	assert.False(t, tstamp.GreaterThan(date1, date2))
	assert.False(t, tstamp.GreaterThan(date1, date1))

	assert.True(t, tstamp.LessThan(date1, date2))
	assert.False(t, tstamp.LessThan(date2, date1))
	assert.False(t, tstamp.LessThan(date1, date1))

	assert.True(t, tstamp.InBetween(date1, date2, date3))
	assert.True(t, tstamp.InBetween(date1, date1, date2))
	assert.True(t, tstamp.InBetween(date1, date2, date2))
	assert.False(t, tstamp.InBetween(date1, date3, date2))

	assert.False(t, tstamp.IsBogusStartTime(date1))
	assert.True(t, tstamp.IsBogusStartTime(mustParse(t, "1999-12-31T23:59:59")))
	assert.True(t, tstamp.IsBogusStartTime(tstamp.DefaultProjectStartTime()))
}

func TestEqual_ComparesInstantsNotRepresentation(t *testing.T) {
	// GIVEN: The same instant in two zones, plus sub-millisecond noise
	local := time.Date(2007, time.August, 1, 1, 0, 0, 0, period.Zone)
	utc := local.UTC().Add(300 * time.Microsecond)

	// THEN: Equal holds while structural equality does not
	assert.True(t, tstamp.Equal(local, utc))
	assert.NotEqual(t, local, utc)
}

func TestOrLater(t *testing.T) {
	now := tstamp.Now()
	yesterday := tstamp.IncrementDays(now, -1)
	tomorrow := tstamp.IncrementDays(now, 1)
	lastWeek := tstamp.IncrementDays(now, -7)

	assert.True(t, tstamp.IsTodayOrLater(now))
	assert.True(t, tstamp.IsTodayOrLater(tomorrow))
	assert.False(t, tstamp.IsTodayOrLater(yesterday))

	assert.True(t, tstamp.IsYesterdayOrLater(now))
	assert.True(t, tstamp.IsYesterdayOrLater(tomorrow))
	assert.True(t, tstamp.IsYesterdayOrLater(yesterday))
	assert.False(t, tstamp.IsYesterdayOrLater(lastWeek))
}

func TestSort(t *testing.T) {
	base := mustParse(t, "2007-08-01T01:00:00")
	t1, t2, t3, t4 := base, base.Add(10*time.Millisecond), base.Add(20*time.Millisecond), base.Add(30*time.Millisecond)

	sorted := tstamp.Sort([]time.Time{t2, t1, t4, t3})

	assert.Equal(t, []time.Time{t1, t2, t3, t4}, sorted)
}

func TestProjectBounds(t *testing.T) {
	start := tstamp.DefaultProjectStartTime()
	end := tstamp.DefaultProjectEndTime()

	assert.Equal(t, "1000-01-01", tstamp.ToDay(start).SimpleString())
	assert.Equal(t, "3000-01-01", tstamp.ToDay(end).SimpleString())
	assert.Equal(t, 999, end.Nanosecond()/int(time.Millisecond))
	assert.True(t, tstamp.InBetween(start, tstamp.Now(), end))
}

func TestDayConversions(t *testing.T) {
	day := period.NewDay(2004, time.March, 25)

	ts := tstamp.FromDay(day)

	assert.Equal(t, day.FirstTick(), ts.UnixMilli())
	assert.Equal(t, day, tstamp.ToDay(ts))
	assert.Equal(t, day, tstamp.ToDay(tstamp.FromMillis(day.LastTick())))
}

// =============================================================================
// UNIQUE SET
// =============================================================================

func TestUniqueSet(t *testing.T) {
	set := tstamp.NewUniqueSet()
	var ms int64 = 1_186_000_000_000

	assert.Equal(t, ms, set.Unique(ms))
	assert.Equal(t, ms+1, set.Unique(ms))
	assert.Equal(t, ms+50, set.Unique(ms+50))
	assert.Equal(t, ms+51, set.Unique(ms+50))
	assert.Equal(t, ms+2, set.Unique(ms))
	assert.Equal(t, ms+3, set.Unique(ms))
	assert.Equal(t, 6, set.Len())
}

func TestUniqueSet_ZeroValue(t *testing.T) {
	var set tstamp.UniqueSet

	assert.Zero(t, set.Len())
	assert.Equal(t, int64(7), set.Unique(7))
	assert.Equal(t, int64(8), set.Unique(7))
	assert.Equal(t, 2, set.Len())
}

func TestUniqueSet_Concurrent(t *testing.T) {
	set := tstamp.NewUniqueSet()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got = map[int64]bool{}
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := set.Unique(42)
			mu.Lock()
			got[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, got, 50)
}
