package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chama"

// Исходы инициации STK пуша.
const (
	OutcomeAccepted      = "accepted"
	OutcomeRejected      = "rejected"
	OutcomeProviderError = "provider_error"
	OutcomePersistError  = "persist_error"
)

var (
	STKPushTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stk_push_total",
			Help:      "STK push initiations by outcome",
		},
		[]string{"outcome"},
	)
	PaymentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_transitions_total",
			Help:      "Payment transitions out of pending by resulting status",
		},
		[]string{"status"},
	)
	ReconcileChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_checks_total",
			Help:      "Status checks made by the reconciler by result",
		},
		[]string{"result"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RateLimitBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limiter_blocked_total",
			Help:      "Requests blocked by the rate limiter",
		},
		[]string{"route"},
	)
	WSSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_subscribers",
			Help:      "Open payment status websocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		STKPushTotal,
		PaymentTransitions,
		ReconcileChecks,
		HTTPRequests,
		HTTPDuration,
		RateLimitBlocked,
		WSSubscribers,
	)
}
