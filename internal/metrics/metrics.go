// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route, and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goodtricount_http_requests_total",
		Help: "HTTP requests processed, labeled by method, route, and status code.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "goodtricount_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// LedgerComputations counts balance/settlement evaluations.
	LedgerComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goodtricount_ledger_computations_total",
		Help: "Balance and settlement computations performed.",
	})

	// SettlementEdges observes the plan size per computation.
	SettlementEdges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goodtricount_settlement_edges",
		Help:    "Settlement edges produced per ledger computation.",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	// PaymentsRecorded counts pending payments appended to a log.
	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goodtricount_payments_recorded_total",
		Help: "Pending payments recorded.",
	})

	// PaymentsConfirmed counts successful confirmations.
	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goodtricount_payments_confirmed_total",
		Help: "Payments confirmed by their creditor.",
	})
)
