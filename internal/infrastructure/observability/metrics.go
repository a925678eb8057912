package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	ProviderRequests *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	VehicleCache     *prometheus.CounterVec
	ActiveStreams    prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pixgate",
			Name:      "provider_requests_total",
			Help:      "Calls to upstream PIX providers by outcome.",
		}, []string{"provider", "operation", "outcome"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pixgate",
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of upstream PIX provider calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		VehicleCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pixgate",
			Name:      "vehicle_cache_lookups_total",
			Help:      "Vehicle cache lookups by result.",
		}, []string{"result"}),
		ActiveStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pixgate",
			Name:      "payment_streams_active",
			Help:      "Open payment status streams.",
		}),
	}
	reg.MustRegister(
		m.ProviderRequests,
		m.ProviderLatency,
		m.VehicleCache,
		m.ActiveStreams,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveProviderCall is nil-safe so clients built without metrics keep working.
func (m *Metrics) ObserveProviderCall(provider, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequests.WithLabelValues(provider, operation, outcome).Inc()
	m.ProviderLatency.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveVehicleCache(result string) {
	if m == nil {
		return
	}
	m.VehicleCache.WithLabelValues(result).Inc()
}

func (m *Metrics) StreamOpened() {
	if m == nil {
		return
	}
	m.ActiveStreams.Inc()
}

func (m *Metrics) StreamClosed() {
	if m == nil {
		return
	}
	m.ActiveStreams.Dec()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
