package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetrics covers the exchange-request lifecycle.
type RequestMetrics struct {
	RequestsCreatedTotal   prometheus.CounterVec
	RequestsConfirmedTotal prometheus.CounterVec
	RequestsBookedTotal    prometheus.CounterVec
	RequestsCompletedTotal prometheus.CounterVec
	RequestsCancelledTotal prometheus.CounterVec
	RequestsExpiredTotal   prometheus.CounterVec

	// Время от подтверждения до брони
	OfferReactionDuration prometheus.HistogramVec

	SweepDuration  prometheus.Histogram
	SweepBatchSize prometheus.Histogram

	NotifyErrorsTotal prometheus.CounterVec
}

func NewRequestMetrics() *RequestMetrics {
	return &RequestMetrics{
		RequestsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_created_total",
				Help: "Total number of created exchange requests",
			},
			[]string{"operation", "currency"},
		),

		RequestsConfirmedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_confirmed_total",
				Help: "Total number of requests quoted by an operator",
			},
			[]string{"operation", "currency"},
		),

		RequestsBookedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_booked_total",
				Help: "Total number of requests booked by users",
			},
			[]string{"operation", "currency"},
		),

		RequestsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_completed_total",
				Help: "Total number of completed requests",
			},
			[]string{"operation", "currency"},
		),

		RequestsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_cancelled_total",
				Help: "Total number of operator-cancelled requests",
			},
			[]string{"operation", "currency"},
		),

		RequestsExpiredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_requests_expired_total",
				Help: "Total number of expired requests",
			},
			[]string{"path"},
		),

		OfferReactionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_offer_reaction_duration_seconds",
				Help:    "Time between operator confirmation and user booking",
				Buckets: prometheus.ExponentialBuckets(5, 2, 8),
			},
			[]string{"operation"},
		),

		SweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_sweep_duration_seconds",
				Help:    "Duration of one expiration sweep tick",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
		),

		SweepBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_sweep_batch_size",
				Help:    "Number of requests expired per sweep tick",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),

		NotifyErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_notify_errors_total",
				Help: "Failed notification deliveries by target",
			},
			[]string{"target"},
		),
	}
}
