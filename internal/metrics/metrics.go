package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Gameplay Metrics
var (
	ResponsesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResponsesRecorded,
			Help: HelpTextResponsesRecorded,
		},
	)

	GuessesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGuessesSubmitted,
			Help: HelpTextGuessesSubmitted,
		},
		[]string{LabelOutcome},
	)

	GamesWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesWon,
			Help: HelpTextGamesWon,
		},
	)

	GamesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesCompleted,
			Help: HelpTextGamesCompleted,
		},
	)
)
