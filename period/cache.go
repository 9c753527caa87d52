package period

import (
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// DAY CACHE - Canonical Days for a fixed window around startup
// =============================================================================

const (
	cacheSlots  = 730
	cacheRadius = 364 // days on either side of startup; keeps every index inside cacheSlots
)

// CacheObserver is notified of every DayCache lookup.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
	CacheBypass()
}

type nopObserver struct{}

func (nopObserver) CacheHit()    {}
func (nopObserver) CacheMiss()   {}
func (nopObserver) CacheBypass() {}

// CacheOption configures a DayCache.
type CacheOption func(*DayCache)

// WithObserver reports lookups to o.
func WithObserver(o CacheObserver) CacheOption {
	return func(c *DayCache) {
		if o != nil {
			c.observer = o
		}
	}
}

// DayCache maps timestamps within ±364 days of its startup Day to a
// shared Day. Slots are filled lazily, at most once, and never evicted.
// The window does not slide. Safe for concurrent use.
type DayCache struct {
	startup     time.Time
	anchorOff   int // seconds east of UTC at midnight of the startup Day
	minBoundary int64
	maxBoundary int64
	slots       [cacheSlots]atomic.Pointer[Day]
	observer    CacheObserver
}

// NewDayCache builds a cache whose window is centred on midnight of the Day
// of startup, not on the startup instant itself, so a slot always covers one
// whole Day. The slot grid takes its UTC offset from that midnight.
func NewDayCache(startup time.Time, opts ...CacheOption) *DayCache {
	startup = startup.In(Zone)
	anchor := FromTime(startup).Time()
	midnight := anchor.UnixMilli()
	_, off := anchor.Zone()

	c := &DayCache{
		startup:     startup,
		anchorOff:   off,
		minBoundary: midnight - cacheRadius*millisPerDay,
		maxBoundary: midnight + cacheRadius*millisPerDay,
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCache = sync.OnceValue(func() *DayCache { return NewDayCache(time.Now()) })

// DefaultCache returns the process-wide cache, built on first use.
func DefaultCache() *DayCache { return defaultCache() }

// Get returns the Day containing the Unix millisecond timestamp ms.
// The result always equals FromTimestamp(ms).
func (c *DayCache) Get(ms int64) Day {
	if ms >= c.maxBoundary || ms <= c.minBoundary {
		c.observer.CacheBypass()
		return FromTimestamp(ms)
	}

	index, ok := c.index(ms)
	if !ok {
		c.observer.CacheBypass()
		return FromTimestamp(ms)
	}

	slot := &c.slots[index]
	if d := slot.Load(); d != nil {
		c.observer.CacheHit()
		return *d
	}

	d := FromTimestamp(ms)
	if !slot.CompareAndSwap(nil, &d) {
		// lost the race; the winner stored an equal Day
		c.observer.CacheHit()
		return *slot.Load()
	}
	c.observer.CacheMiss()
	return d
}

// GetTime is Get for a time.Time.
func (c *DayCache) GetTime(t time.Time) Day { return c.Get(t.UnixMilli()) }

// index returns the slot for ms. Slot arithmetic runs on fixed 24h days
// measured from the anchor midnight, so an instant whose UTC offset differs
// from the anchor's is first shifted by the difference.
func (c *DayCache) index(ms int64) (int, bool) {
	shifted := ms + c.dstOffset(ms)
	if shifted < c.minBoundary || shifted >= c.maxBoundary {
		return 0, false
	}
	i := int((shifted - c.minBoundary) / millisPerDay)
	return i, i >= 0 && i < cacheSlots
}

func (c *DayCache) dstOffset(ms int64) int64 {
	_, off := time.UnixMilli(ms).In(Zone).Zone()
	return int64(off-c.anchorOff) * 1000
}

// Bounds returns the exclusive window limits in Unix milliseconds, 364 days
// either side of the startup Day's midnight.
func (c *DayCache) Bounds() (minBoundary, maxBoundary int64) {
	return c.minBoundary, c.maxBoundary
}

// Startup returns the instant the cache was built for.
func (c *DayCache) Startup() time.Time { return c.startup }

// Filled returns how many slots hold a Day.
func (c *DayCache) Filled() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].Load() != nil {
			n++
		}
	}
	return n
}

// shared returns the stored pointer for ms, nil when ms is out of window or
// the slot is still empty.
func (c *DayCache) shared(ms int64) *Day {
	if ms >= c.maxBoundary || ms <= c.minBoundary {
		return nil
	}
	i, ok := c.index(ms)
	if !ok {
		return nil
	}
	return c.slots[i].Load()
}
