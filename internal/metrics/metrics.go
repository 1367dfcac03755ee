package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "porchman_webhook_events_total",
			Help: "Total number of LINE webhook events handled, by dispatch action",
		},
		[]string{"action"},
	)

	Replies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "porchman_replies_total",
			Help: "Total number of LINE replies sent, by result",
		},
		[]string{"result"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "porchman_tracking_registrations_total",
			Help: "Total number of tracking number registrations, by source",
		},
		[]string{"source"},
	)

	StorageOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "porchman_storage_operations_total",
			Help: "Total number of storage operations, by operation and result",
		},
		[]string{"operation", "result"},
	)
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
