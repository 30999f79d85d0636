package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	quoteRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout_sandbox",
			Subsystem: "http",
			Name:      "quote_request_duration_seconds",
			Help:      "Histogram of shipping quote request durations by endpoint",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_sandbox",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order creation requests by outcome",
		},
		[]string{"outcome"},
	)

	paymentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_sandbox",
			Subsystem: "http",
			Name:      "payment_requests_total",
			Help:      "Total number of payment requests by action and outcome",
		},
		[]string{"action", "outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		quoteRequestDuration,
		ordersCreated,
		paymentRequests,
	)
}

func observeQuote(endpoint string, start time.Time) {
	quoteRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
