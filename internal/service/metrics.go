package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transform outcomes used as the "outcome" label.
const (
	outcomeOK       = "ok"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

// Metrics holds the service counters exported on /metrics.
type Metrics struct {
	transforms          *prometheus.CounterVec
	transformedMessages prometheus.Counter
	versionConflicts    prometheus.Counter
	messagesSent        prometheus.Counter
	aiRequests          *prometheus.CounterVec
}

// NewMetrics registers the service metrics with registerer. A nil
// registerer yields metrics that are counted but never exported.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		transforms: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat",
			Name:      "bulk_transforms_total",
			Help:      "Bulk transforms by direction and outcome.",
		}, []string{"direction", "outcome"}),
		transformedMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "chat",
			Name:      "transformed_messages_total",
			Help:      "Messages rewritten by bulk transforms.",
		}),
		versionConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "chat",
			Name:      "version_conflicts_total",
			Help:      "Bulk transform rounds lost to a concurrent write.",
		}),
		messagesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "chat",
			Name:      "messages_sent_total",
			Help:      "Messages appended to conversations.",
		}),
		aiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat",
			Name:      "ai_requests_total",
			Help:      "Questions sent to the AI responder by outcome.",
		}, []string{"outcome"}),
	}
}
