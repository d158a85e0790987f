package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsCreated prometheus.Counter
	OrdersCreated        prometheus.Counter
	OrderFormatChanges   prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "filmgate_registrations_created_total",
			Help: "Total number of customer registrations created",
		}),
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "filmgate_orders_created_total",
			Help: "Total number of film orders placed",
		}),
		OrderFormatChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "filmgate_order_format_changes_total",
			Help: "Total number of order format changes",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "filmgate_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementRegistrationsCreated increments the registrations counter by 1.
// Safe on a nil receiver so services can run without metrics in tests.
func (m *Metrics) IncrementRegistrationsCreated() {
	if m == nil {
		return
	}
	m.RegistrationsCreated.Inc()
}

// IncrementOrdersCreated increments the orders counter by 1.
func (m *Metrics) IncrementOrdersCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

// IncrementOrderFormatChanges increments the format change counter by 1.
func (m *Metrics) IncrementOrderFormatChanges() {
	if m == nil {
		return
	}
	m.OrderFormatChanges.Inc()
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
