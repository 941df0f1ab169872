// Package promglyph exports [glyph.Cache] activity as Prometheus
// metrics. Pass the adapter in [glyph.Options].Metrics:
//
//	reg := prometheus.NewRegistry()
//	cache, err := glyph.New(glyph.Options{
//		Metrics: promglyph.New(reg, "tinygfx", "glyphs", nil),
//	})
package promglyph

import "github.com/prometheus/client_golang/prometheus"

import "github.com/darbyjohnston/tinygfx-sub002/glyph"

// Implements [glyph.Metrics] on top of Prometheus counters and gauges.
// Safe for concurrent use, as all Prometheus metric types are.
type Adapter struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	evictions     *prometheus.CounterVec
	allocFailures prometheus.Counter
	entries       prometheus.Gauge
	cost          prometheus.Gauge
}

// Creates the adapter and registers its collectors in the given
// registerer (nil means [prometheus.DefaultRegisterer]). Registering
// twice with the same namespace, subsystem and labels will panic.
func New(reg prometheus.Registerer, namespace, subsystem string, constLabels prometheus.Labels) *Adapter {
	if reg == nil { reg = prometheus.DefaultRegisterer }
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: name, Help: help, ConstLabels: constLabels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: name, Help: help, ConstLabels: constLabels,
		})
	}

	adapter := &Adapter{
		hits: counter("hits_total", "Glyph requests served from the cache."),
		misses: counter("misses_total", "Glyph requests that had to be rasterized."),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "evictions_total", Help: "Glyphs dropped from the cache, by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		allocFailures: counter("atlas_alloc_failures_total", "Glyphs that didn't fit in the atlas even after making room."),
		entries: gauge("size_entries", "Number of cached glyphs."),
		cost: gauge("size_cost", "Total cost of the cached glyphs."),
	}
	reg.MustRegister(
		adapter.hits, adapter.misses, adapter.evictions,
		adapter.allocFailures, adapter.entries, adapter.cost,
	)
	return adapter
}

func (self *Adapter) Hit() { self.hits.Inc() }
func (self *Adapter) Miss() { self.misses.Inc() }
func (self *Adapter) AllocFailure() { self.allocFailures.Inc() }

func (self *Adapter) Evict(reason glyph.EvictReason) {
	self.evictions.WithLabelValues(reason.String()).Inc()
}

func (self *Adapter) Size(entries int, cost int64) {
	self.entries.Set(float64(entries))
	self.cost.Set(float64(cost))
}

var _ glyph.Metrics = (*Adapter)(nil)
