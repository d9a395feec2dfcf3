package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Gameplay metric names
const (
	MetricNameResponsesRecorded = "survey_responses_recorded_total"
	MetricNameGuessesSubmitted  = "guesses_submitted_total"
	MetricNameGamesWon          = "games_won_total"
	MetricNameGamesCompleted    = "games_completed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Gameplay metric help text
const (
	HelpTextResponsesRecorded = "Total number of survey responses recorded"
	HelpTextGuessesSubmitted  = "Total number of guess submissions by outcome"
	HelpTextGamesWon          = "Total number of games reaching the win threshold"
	HelpTextGamesCompleted    = "Total number of games reaching a terminal state"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
