// Package metrics holds the service's prometheus collectors: HTTP request
// counters and latencies fed by the metrics middleware, plus domain counters
// for created bookings and slot rejections.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service collectors.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal prometheus.Counter
	slotRejectionsTotal  *prometheus.CounterVec
}

// New registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, path and status code",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and path",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total bookings committed to the schedule",
			ConstLabels: labels,
		}),

		slotRejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_rejections_total",
			Help:        "Total slot rejections by reason",
			ConstLabels: labels,
		}, []string{"reason"}),
	}
}

// ObserveHTTPRequest records one finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// BookingCreated counts one committed booking.
func (m *Metrics) BookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// SlotRejected counts one rejection by reason code.
func (m *Metrics) SlotRejected(reason string) {
	m.slotRejectionsTotal.WithLabelValues(reason).Inc()
}
