package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quoteResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "checkout",
	Subsystem: "quote_resolver",
	Name:      "resolutions_total",
	Help:      "Total number of finished quote resolutions by event kind, status and source.",
}, []string{"kind", "status", "source"})

func observeEvent(ev Event) {
	source := ev.Quote.Source()
	if source == "" {
		source = "none"
	}
	quoteResolutions.With(prometheus.Labels{
		"kind":   ev.Kind.String(),
		"status": ev.Quote.Status.String(),
		"source": source,
	}).Inc()
}
