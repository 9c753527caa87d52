package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Lookup results recorded by CacheLookups.
const (
	ResultHit    = "hit"
	ResultMiss   = "miss"
	ResultBypass = "bypass"
)

// Metrics bundles calendar engine metrics. It satisfies
// period.CacheObserver and interval.CatalogObserver.
type Metrics struct {
	CacheLookups    *prometheus.CounterVec
	CatalogRebuilds prometheus.Counter
	CatalogSize     prometheus.Gauge
}

// New constructs metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calendar_day_cache_lookups_total",
				Help: "Total day cache lookups by result",
			},
			[]string{"result"},
		),
		CatalogRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_week_catalog_rebuilds_total",
			Help: "Total week catalog rebuilds",
		}),
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "calendar_week_catalog_size",
			Help: "Number of labels in the week catalog",
		}),
	}
	reg.MustRegister(
		m.CacheLookups,
		m.CatalogRebuilds,
		m.CatalogSize,
	)
	return m
}

func (m *Metrics) CacheHit()    { m.CacheLookups.WithLabelValues(ResultHit).Inc() }
func (m *Metrics) CacheMiss()   { m.CacheLookups.WithLabelValues(ResultMiss).Inc() }
func (m *Metrics) CacheBypass() { m.CacheLookups.WithLabelValues(ResultBypass).Inc() }

func (m *Metrics) CatalogRebuilt(size int) {
	m.CatalogRebuilds.Inc()
	m.CatalogSize.Set(float64(size))
}

// WriteText gathers g and writes every family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
