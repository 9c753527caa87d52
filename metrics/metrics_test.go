package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/interval"
	"github.com/warp/calendar-engine/metrics"
	"github.com/warp/calendar-engine/period"
)

func TestMetrics_RecordsDayCacheLookups(t *testing.T) {
	// GIVEN: A cache reporting to fresh metrics
	m := metrics.New(prometheus.NewRegistry())
	startup := time.Date(2024, time.July, 4, 9, 30, 0, 0, period.Zone)
	cache := period.NewDayCache(startup, period.WithObserver(m))

	// WHEN: Two lookups on one day, one on another, one far outside the window
	cache.GetTime(startup)
	cache.GetTime(startup.Add(time.Hour))
	cache.GetTime(startup.AddDate(0, 0, 3))
	cache.GetTime(startup.AddDate(5, 0, 0))

	// THEN: Each result is counted under its label
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.ResultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.ResultHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.ResultBypass)))
}

func TestMetrics_RecordsCatalogRebuilds(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	now := time.Date(2024, time.July, 4, 12, 0, 0, 0, period.Zone)

	interval.NewUtility(interval.WithClock(func() time.Time { return now }), interval.WithCatalogObserver(m))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogRebuilds))
	assert.Equal(t, 53.0, testutil.ToFloat64(m.CatalogSize))
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.CatalogRebuilt(53)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "calendar_week_catalog_rebuilds_total 1")
	assert.Contains(t, out, "calendar_week_catalog_size 53")
}
