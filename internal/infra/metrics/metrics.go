// Package metrics owns the prometheus registry and the collectors shared across layers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const namespace = "workgroup"

// Send results.
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// Metrics groups every collector of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RealtimeConnections       prometheus.Gauge
	RealtimeBroadcastsTotal   prometheus.Counter
	RealtimeSendsTotal        *prometheus.CounterVec
	RealtimeBroadcastDuration prometheus.Histogram

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDuration        *prometheus.HistogramVec
	RateLimitRejectionsTotal   *prometheus.CounterVec
	NotificationsIngestedTotal prometheus.Counter
	DeliveriesRegisteredTotal  *prometheus.CounterVec
	EventPublishFailuresTotal  prometheus.Counter
}

// New registers the collectors plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RealtimeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "connections",
			Help:      "Live streaming connections across all tenants",
		}),
		RealtimeBroadcastsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "broadcasts_total",
			Help:      "Broadcasts started",
		}),
		RealtimeSendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "sends_total",
			Help:      "Per-connection sends by result",
		}, []string{"result"}),
		RealtimeBroadcastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "broadcast_duration_seconds",
			Help:      "Wall time of one fan-out, including the slowest send",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests received",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RateLimitRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Requests refused by a rate limiter",
		}, []string{"limiter"}),
		NotificationsIngestedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_ingested_total",
			Help:      "Notifications persisted",
		}),
		DeliveriesRegisteredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_registered_total",
			Help:      "Delivery registration attempts by outcome",
		}, []string{"outcome"}),
		EventPublishFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Notification events that could not be mirrored to pubsub",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RealtimeConnections,
		m.RealtimeBroadcastsTotal,
		m.RealtimeSendsTotal,
		m.RealtimeBroadcastDuration,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RateLimitRejectionsTotal,
		m.NotificationsIngestedTotal,
		m.DeliveriesRegisteredTotal,
		m.EventPublishFailuresTotal,
	)

	return m
}

// Registry exposes the registry for tests and custom gatherers.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return m.registry.Register(collectors.NewDBStatsCollector(sqlDB, namespace))
}
