package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/calendar-engine/period"
)

func TestWeek_SpansYearBoundary(t *testing.T) {
	week := period.WeekOf(period.FromYMD(2004, 0, 1))

	assert.Equal(t, period.FromYMD(2003, 11, 28), week.FirstDay())
	assert.Equal(t, period.FromYMD(2004, 0, 3), week.LastDay())
	assert.Equal(t, "28-Dec-2003 to 03-Jan-2004", week.Label())
	assert.Equal(t, "03-Jan-2004", week.String())
	assert.Equal(t, period.WeekStart, week.FirstDay().Weekday())
}

func TestWeek_Compare(t *testing.T) {
	week := period.WeekOf(period.FromYMD(2004, 0, 1))

	assert.Positive(t, week.Compare(period.WeekOf(period.FromYMD(2003, 11, 20))))
	assert.Zero(t, week.Compare(period.WeekOf(period.FromYMD(2003, 11, 30))))
	assert.Negative(t, week.Compare(period.WeekOf(period.FromYMD(2004, 0, 4))))
}

func TestWeek_DecAndInc(t *testing.T) {
	week := period.WeekOf(period.FromYMD(2003, 10, 10))

	assert.Equal(t, "09-Nov-2003 to 15-Nov-2003", week.Label())
	assert.Equal(t, "15-Nov-2003", week.String())
	assert.Equal(t, period.WeekOf(period.FromYMD(2003, 10, 3)), week.Dec())
	assert.Equal(t, period.WeekOf(period.FromYMD(2003, 10, 17)), week.Inc())
	assert.Equal(t, week, week.Inc().Dec())
}

func TestWeek_AnyContainedDayBuildsEqualWeek(t *testing.T) {
	// GIVEN: The week that contains the spring-forward transition
	// WHEN: Building a Week from each of its days
	// THEN: All Weeks are equal and contain exactly those seven days
	week := period.WeekOf(period.NewDay(2024, time.March, 12))
	days := week.Days()

	assert.Len(t, days, 7)
	assert.Equal(t, period.NewDay(2024, time.March, 10), days[0])
	for i, day := range days {
		assert.Equal(t, week, period.WeekOf(day))
		assert.True(t, week.Contains(day))
		if i > 0 {
			assert.Equal(t, days[i-1].Inc(1), day)
		}
	}
	assert.False(t, week.Contains(days[6].Inc(1)))
	assert.False(t, week.Contains(days[0].Inc(-1)))
}

func TestWeek_DaysIsACopy(t *testing.T) {
	week := period.WeekOf(period.FromYMD(2004, 0, 1))
	days := week.Days()
	days[0] = period.FromYMD(1999, 0, 1)

	assert.Equal(t, period.FromYMD(2003, 11, 28), week.Days()[0])
}
