package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job Metrics
var (
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRunsTotal,
			Help: HelpTextJobRunsTotal,
		},
		[]string{LabelResult},
	)

	JobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameJobDuration,
			Help:    HelpTextJobDuration,
			Buckets: JobDurationBuckets,
		},
	)
)

// Business Metrics
var (
	DuelsSeeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsSeeded,
			Help: HelpTextDuelsSeeded,
		},
	)

	PenaltiesApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePenaltiesApplied,
			Help: HelpTextPenaltiesApplied,
		},
	)

	SweepFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepFailures,
			Help: HelpTextSweepFailures,
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
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
			Buckets: prometheus.DefBuckets,
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
