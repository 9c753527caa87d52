package period

import (
	"time"
	_ "time/tzdata" // Zone must resolve on hosts without a zoneinfo database
)

// =============================================================================
// CALENDAR CONVENTION - Fixed, not negotiated with the host
// =============================================================================

// ZoneName is the IANA zone every calendar computation is pinned to.
const ZoneName = "America/New_York"

// WeekStart is the first day of every Week.
const WeekStart = time.Sunday

// Zone is the location Days are normalised in. It observes daylight saving
// time, which is what DayCache corrects for.
var Zone = mustLoadZone(ZoneName)

const millisPerDay = int64(24 * time.Hour / time.Millisecond)

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("period: cannot load zone " + name + ": " + err.Error())
	}
	return loc
}
