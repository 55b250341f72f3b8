// Package metrics exports allocator activity to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wilhasse/govec/mem"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "govec"

// Collector records buffer reservations reported by a mem.Tracker.
type Collector struct {
	reservations prometheus.Counter
	releases     prometheus.Counter
	refusals     prometheus.Counter
	bytesInUse   prometheus.Gauge
	reserveSize  prometheus.Histogram
}

var _ mem.Observer = (*Collector)(nil)

// NewCollector registers the allocator metrics with reg. A nil reg uses the
// default Prometheus registry.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)
	return &Collector{
		reservations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_reservations_total",
			Help:      "Total number of granted buffer reservations",
		}),
		releases: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_releases_total",
			Help:      "Total number of released buffers",
		}),
		refusals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_refusals_total",
			Help:      "Total number of refused buffer reservations",
		}),
		bytesInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "buffer_bytes_in_use",
			Help:      "Bytes currently reserved for vector buffers",
		}),
		reserveSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "buffer_reservation_bytes",
			Help:      "Size of granted buffer reservations in bytes",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
}

// Reserved implements mem.Observer.
func (c *Collector) Reserved(size int) {
	c.reservations.Inc()
	c.bytesInUse.Add(float64(size))
	c.reserveSize.Observe(float64(size))
}

// Released implements mem.Observer.
func (c *Collector) Released(size int) {
	c.releases.Inc()
	c.bytesInUse.Sub(float64(size))
}

// Refused implements mem.Observer.
func (c *Collector) Refused(int) {
	c.refusals.Inc()
}

// Track returns a tracker over next that reports to c.
func (c *Collector) Track(next mem.Allocator) *mem.Tracker {
	return mem.NewTracker(next, c)
}
