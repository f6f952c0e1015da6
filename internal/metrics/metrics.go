package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "indukitchen"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route", "method"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

func (m *ServerMetrics) Observe(route, method string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(route, method).Observe(float64(elapsed.Microseconds()) / 1000)
}

// CheckoutMetrics counts saga outcomes and post-commit notification results.
type CheckoutMetrics struct {
	Checkouts     *prometheus.CounterVec
	DurationMS    *prometheus.HistogramVec
	Notifications *prometheus.CounterVec
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "total",
		Help:      "Checkouts by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "duration_ms",
		Help:      "Checkout persistence latency in milliseconds.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"outcome"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "notifications_total",
		Help:      "Invoice emails after checkout by result.",
	}, []string{"result"})

	reg.MustRegister(checkouts, duration, notifications)
	return &CheckoutMetrics{Checkouts: checkouts, DurationMS: duration, Notifications: notifications}
}

func (m *CheckoutMetrics) ObserveCheckout(outcome string, elapsed time.Duration) {
	m.Checkouts.WithLabelValues(outcome).Inc()
	m.DurationMS.WithLabelValues(outcome).Observe(float64(elapsed.Microseconds()) / 1000)
}

func (m *CheckoutMetrics) IncNotification(result string) {
	m.Notifications.WithLabelValues(result).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
