package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts spectrum requests and their latency.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	points   prometheus.Histogram
	handler  http.Handler
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fiveline",
			Name:      "spectrum_requests_total",
			Help:      "Spectrum computations served over HTTP, by outcome.",
		}, []string{"status"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fiveline",
			Name:      "spectrum_duration_seconds",
			Help:      "Time to fetch and build one spectrum.",
			Buckets:   prometheus.DefBuckets,
		}),
		points: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fiveline",
			Name:      "spectrum_points",
			Help:      "Number of points on the category axis per response.",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 8),
		}),
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
}

func (m *Metrics) observe(status string, seconds float64, points int) {
	m.requests.WithLabelValues(status).Inc()
	m.duration.Observe(seconds)
	if points > 0 {
		m.points.Observe(float64(points))
	}
}
