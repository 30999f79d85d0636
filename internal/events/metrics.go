package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_sandbox",
		Subsystem: "kafka_publisher",
		Name:      "events_published_total",
		Help:      "Total number of order events written to Kafka.",
	}, []string{"type"})

	eventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_sandbox",
		Subsystem: "kafka_publisher",
		Name:      "events_failed_total",
		Help:      "Total number of order events that could not be written.",
	}, []string{"type"})
)
