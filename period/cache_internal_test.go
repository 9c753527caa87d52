package period

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayCache_SameDaySharesOneSlot(t *testing.T) {
	startup := time.Date(2024, time.July, 4, 9, 30, 0, 0, Zone)
	c := NewDayCache(startup)

	early := time.Date(2024, time.July, 5, 0, 10, 0, 0, Zone).UnixMilli()
	late := time.Date(2024, time.July, 5, 23, 15, 0, 0, Zone).UnixMilli()
	c.Get(early)
	c.Get(late)

	require.NotNil(t, c.shared(early))
	assert.Same(t, c.shared(early), c.shared(late))
}

func TestDayCache_DSTCorrection(t *testing.T) {
	// GIVEN: Startup during DST, lookups on a standard-time day
	// WHEN: Looking up just after midnight and late in the evening
	// THEN: Both land in the slot for that calendar day, not a neighbour
	c := NewDayCache(time.Date(2024, time.July, 4, 9, 30, 0, 0, Zone))
	day := NewDay(2024, time.January, 1)

	justAfterMidnight := time.Date(2024, time.January, 1, 0, 10, 0, 0, Zone).UnixMilli()
	lateNight := time.Date(2024, time.January, 1, 23, 15, 0, 0, Zone).UnixMilli()

	assert.Equal(t, day, c.Get(justAfterMidnight))
	assert.Equal(t, day, c.Get(lateNight))
	assert.Same(t, c.shared(justAfterMidnight), c.shared(lateNight))

	next := time.Date(2024, time.January, 2, 0, 10, 0, 0, Zone).UnixMilli()
	assert.Equal(t, day.Inc(1), c.Get(next))
	assert.NotSame(t, c.shared(lateNight), c.shared(next))

	// and the reverse: startup in winter, lookups in summer
	w := NewDayCache(time.Date(2024, time.January, 15, 23, 45, 0, 0, Zone))
	summer := time.Date(2024, time.July, 4, 0, 30, 0, 0, Zone).UnixMilli()
	assert.Equal(t, NewDay(2024, time.July, 4), w.Get(summer))
	assert.Equal(t, NewDay(2024, time.July, 3), w.Get(summer-int64(time.Hour/time.Millisecond)))
}

func TestDayCache_ConcurrentFill(t *testing.T) {
	c := NewDayCache(time.Date(2024, time.July, 4, 9, 30, 0, 0, Zone))
	ms := time.Date(2024, time.August, 1, 12, 0, 0, 0, Zone).UnixMilli()

	var wg sync.WaitGroup
	results := make([]Day, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(ms + int64(i))
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		assert.Equal(t, NewDay(2024, time.August, 1), d)
	}
	assert.Equal(t, 1, c.Filled())
}
