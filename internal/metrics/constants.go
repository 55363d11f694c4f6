package metrics

// Metric Names
const (
	MetricNameJobRunsTotal     = "roulette_job_runs_total"
	MetricNameJobDuration      = "roulette_job_duration_seconds"
	MetricNameDuelsSeeded      = "roulette_duels_seeded_total"
	MetricNamePenaltiesApplied = "roulette_penalties_applied_total"
	MetricNameSweepFailures    = "roulette_sweep_failures_total"
	MetricNameEventsPublished  = "roulette_events_published_total"

	MetricNameHTTPRequestsTotal    = "roulette_http_requests_total"
	MetricNameHTTPRequestDuration  = "roulette_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "roulette_http_requests_in_flight"
)

// Help Texts
const (
	HelpTextJobRunsTotal     = "Total number of roulette job invocations by result"
	HelpTextJobDuration      = "Duration of one roulette job invocation in seconds"
	HelpTextDuelsSeeded      = "Total number of duels created by the weekly draw"
	HelpTextPenaltiesApplied = "Total number of duels penalized by the sweep"
	HelpTextSweepFailures    = "Total number of per-duel penalty failures left for retry"
	HelpTextEventsPublished  = "Total number of events published on the bus"

	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests by method, path and status"
	HelpTextHTTPRequestDuration  = "Duration of HTTP requests in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
)

// Labels
const (
	LabelResult = "result"
	LabelType   = "type"
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// Label Values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// JobDurationBuckets covers sub-second no-op runs up to slow full sweeps
var JobDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}
