package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VerificationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showroom_verification_transitions_total",
			Help: "Customer verification state changes by target status",
		},
		[]string{"status"},
	)

	QuotationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "showroom_quotations_created_total",
			Help: "Total number of quotations created",
		},
	)

	ReceiptsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showroom_receipts_created_total",
			Help: "Total number of receipts created by payment method",
		},
		[]string{"payment_method"},
	)

	GenerativeCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showroom_generative_calls_total",
			Help: "Generative content requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "showroom_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Generative call outcomes
const (
	OutcomeOK     = "ok"
	OutcomeNoKey  = "no_key"
	OutcomeFailed = "failed"
	OutcomeEmpty  = "empty"
)
