package checkout

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quoteEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "orchestrator",
		Name:      "quote_events_total",
		Help:      "Total number of quote events received, by kind and whether they were stale.",
	}, []string{"kind", "stale"})

	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "orchestrator",
		Name:      "submissions_total",
		Help:      "Total number of order submissions by outcome.",
	}, []string{"outcome"})

	shippingMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "orchestrator",
		Name:      "shipping_mismatches_total",
		Help:      "Total number of submissions rejected because shipping changed.",
	})

	stateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "orchestrator",
		Name:      "state_transitions_total",
		Help:      "Total number of transitions into each checkout state.",
	}, []string{"state"})
)

func observeQuoteEvent(kind string, stale bool) {
	quoteEvents.WithLabelValues(kind, strconv.FormatBool(stale)).Inc()
}
