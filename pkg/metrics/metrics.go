// Package metrics defines the Prometheus collectors used by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBConnectionsOpen prometheus.Gauge
	DBConnectionsIdle prometheus.Gauge

	HoldConflictsTotal *prometheus.CounterVec
}

// New registers and returns the service collectors.
// serviceName is attached as a constant label to every metric.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections.",
			ConstLabels: constLabels,
		}),

		DBConnectionsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections.",
			ConstLabels: constLabels,
		}),

		HoldConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_hold_conflicts_total",
			Help:        "Total number of rejected hold acquisitions by conflict kind.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}
}

// RegisterActiveHoldsGauge exposes the current size of the in-memory hold
// table through a GaugeFunc, so the table itself stays metrics-agnostic.
func RegisterActiveHoldsGauge(serviceName string, lenFn func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "slot_holds_active",
		Help:        "Number of holds currently present in the in-memory table.",
		ConstLabels: prometheus.Labels{"service": serviceName},
	}, func() float64 {
		return float64(lenFn())
	})
}
